// Package console embeds the feature-store console in host applications.
//
// Hosts construct a console with New, contributing extra detail-page tabs
// and routes through extension.Config, and run it with ListenAndServe.
// Registry data comes from a published SQLite snapshot, or a bundled demo
// registry when no snapshot path is configured.
package console

import (
	"fmt"
	"io"
	"log"
	"net/http"

	internalconsole "github.com/featstore/console/internal/console"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/metadata/memory"
	"github.com/featstore/console/internal/console/metadata/sqlitestore"
	"github.com/featstore/console/pkg/extension"
)

// Config defines the embedding surface for host applications.
type Config struct {
	// Addr is the listen address, ":8080" when empty.
	Addr string
	// RegistryPath points at a published SQLite registry snapshot. When
	// empty the console serves a bundled demo registry.
	RegistryPath string
	// Extensions contributes host tabs and routes to detail pages, keyed
	// by page kind. Supplied once here; immutable afterwards.
	Extensions extension.Config
	// EnableFeatureStatistics turns on the built-in Statistics tab.
	EnableFeatureStatistics bool
	// Logger receives request logs, log.Default() when nil.
	Logger *log.Logger
}

// Server is a runnable console instance.
type Server = internalconsole.Server

// New validates the host configuration and builds a console server.
// Extension collisions with built-in tabs or routes are reported here,
// at startup, not at request time. Close the server when done with it to
// release the registry snapshot store.
func New(cfg Config) (*Server, error) {
	gateway, err := openGateway(cfg.RegistryPath)
	if err != nil {
		return nil, err
	}
	server, err := internalconsole.NewServer(internalconsole.Config{
		Addr:                    cfg.Addr,
		Gateway:                 gateway,
		Extensions:              cfg.Extensions,
		EnableFeatureStatistics: cfg.EnableFeatureStatistics,
		Logger:                  cfg.Logger,
	})
	if err != nil {
		closeGateway(gateway)
		return nil, err
	}
	return server, nil
}

// NewHandler builds the console HTTP handler without the server wrapper,
// for hosts that mount the console inside their own server. The returned
// close function releases the registry snapshot store; call it when the
// handler is retired.
func NewHandler(cfg Config) (http.Handler, func(), error) {
	gateway, err := openGateway(cfg.RegistryPath)
	if err != nil {
		return nil, nil, err
	}
	handler, err := internalconsole.NewHandler(internalconsole.Config{
		Gateway:                 gateway,
		Extensions:              cfg.Extensions,
		EnableFeatureStatistics: cfg.EnableFeatureStatistics,
		Logger:                  cfg.Logger,
	})
	if err != nil {
		closeGateway(gateway)
		return nil, nil, err
	}
	return handler, func() { closeGateway(gateway) }, nil
}

func openGateway(registryPath string) (metadata.Gateway, error) {
	if registryPath == "" {
		return memory.Demo(), nil
	}
	store, err := sqlitestore.Open(registryPath)
	if err != nil {
		return nil, fmt.Errorf("open registry snapshot %q: %w", registryPath, err)
	}
	return store, nil
}

func closeGateway(gateway metadata.Gateway) {
	closer, ok := gateway.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		log.Printf("close registry gateway: %v", err)
	}
}
