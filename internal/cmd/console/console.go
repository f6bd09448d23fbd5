// Package console wires configuration and telemetry for the console
// command.
package console

import (
	"context"
	"flag"
	"fmt"
	"log"

	featstore "github.com/featstore/console"
	internalconsole "github.com/featstore/console/internal/console"
	"github.com/featstore/console/internal/platform/config"
	"github.com/featstore/console/internal/platform/otel"
)

const defaultHTTPAddr = "localhost:8080"

// Config holds the console command configuration.
type Config struct {
	HTTPAddr         string `env:"FEATSTORE_HTTP_ADDR"`
	RegistryPath     string `env:"FEATSTORE_REGISTRY_PATH"`
	EnableStatistics bool   `env:"FEATSTORE_ENABLE_STATISTICS"`
}

// ParseConfig loads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.RegistryPath, "registry-path", cfg.RegistryPath, "SQLite registry snapshot path; empty serves the demo registry")
	fs.BoolVar(&cfg.EnableStatistics, "enable-statistics", cfg.EnableStatistics, "enable the built-in Statistics tab")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the console server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, internalconsole.ServiceName)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := featstore.New(featstore.Config{
		Addr:                    cfg.HTTPAddr,
		RegistryPath:            cfg.RegistryPath,
		EnableFeatureStatistics: cfg.EnableStatistics,
	})
	if err != nil {
		return fmt.Errorf("init console server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve console: %w", err)
	}
	return nil
}
