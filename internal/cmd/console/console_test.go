package console

import (
	"flag"
	"testing"
)

func TestParseConfigDefaultsHTTPAddr(t *testing.T) {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.HTTPAddr != defaultHTTPAddr {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, defaultHTTPAddr)
	}
	if cfg.RegistryPath != "" {
		t.Fatalf("RegistryPath = %q, want empty", cfg.RegistryPath)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("FEATSTORE_HTTP_ADDR", "localhost:9000")
	t.Setenv("FEATSTORE_ENABLE_STATISTICS", "true")

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:9001", "-registry-path", "registry.db"})
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.HTTPAddr != "localhost:9001" {
		t.Fatalf("HTTPAddr = %q, want flag override", cfg.HTTPAddr)
	}
	if cfg.RegistryPath != "registry.db" {
		t.Fatalf("RegistryPath = %q", cfg.RegistryPath)
	}
	if !cfg.EnableStatistics {
		t.Fatal("EnableStatistics should carry over from env")
	}
}

func TestParseConfigRejectsUnknownFlags(t *testing.T) {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-no-such-flag"}); err == nil {
		t.Fatal("ParseConfig() with unknown flag should fail")
	}
}
