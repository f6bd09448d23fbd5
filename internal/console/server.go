// Package console assembles the feature-store console HTTP service.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/featstore/console/internal/console/app"
	"github.com/featstore/console/internal/console/compose"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/module"
	"github.com/featstore/console/internal/console/pages/datasets"
	"github.com/featstore/console/internal/console/pages/datasources"
	"github.com/featstore/console/internal/console/pages/entities"
	"github.com/featstore/console/internal/console/pages/featureservices"
	"github.com/featstore/console/internal/console/pages/featureviews"
	"github.com/featstore/console/internal/console/pages/home"
	"github.com/featstore/console/internal/console/platform/observability"
	"github.com/featstore/console/internal/console/routepath"
	"github.com/featstore/console/internal/console/static"
	"github.com/featstore/console/internal/platform/timeouts"
	"github.com/featstore/console/pkg/extension"
)

// ServiceName identifies the console in traces.
const ServiceName = "featstore-console"

// Config defines the inputs for the console HTTP service.
type Config struct {
	Addr       string
	Gateway    metadata.Gateway
	Extensions extension.Config
	// EnableFeatureStatistics turns on the built-in Statistics tab.
	EnableFeatureStatistics bool
	Logger                  *log.Logger
}

// NewHandler assembles the console HTTP handler: page modules composed
// onto a root mux, static assets, the health route, and the logging and
// tracing middleware.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Gateway == nil {
		return nil, errors.New("registry gateway is required")
	}

	registry, err := extension.New(cfg.Extensions)
	if err != nil {
		return nil, fmt.Errorf("register extensions: %w", err)
	}
	composer := compose.New(registry, compose.Flags{FeatureStatistics: cfg.EnableFeatureStatistics})

	modules := []module.Module{
		featureviews.New(cfg.Gateway, composer),
		featureservices.New(cfg.Gateway, composer),
		entities.New(cfg.Gateway, composer),
		datasets.New(cfg.Gateway, composer),
		datasources.New(cfg.Gateway, composer),
		home.New(cfg.Gateway),
	}
	pagesHandler, err := app.Compose(modules)
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.HandleFunc(routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle(routepath.Root, pagesHandler)

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	handler := observability.Tracer(ServiceName)(mux)
	handler = observability.RequestLogger(logger)(handler)
	return handler, nil
}

// Server hosts the console HTTP server.
type Server struct {
	addr       string
	httpServer *http.Server
	gateway    io.Closer
}

// NewServer builds a console server from the config.
func NewServer(cfg Config) (*Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	gateway, _ := cfg.Gateway.(io.Closer)
	return &Server{
		addr: addr,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		gateway: gateway,
	}, nil
}

// Close releases resources held by the server, including the registry
// gateway's database handle when the gateway owns one. Call it after
// ListenAndServe returns.
func (s *Server) Close() {
	if s == nil || s.gateway == nil {
		return
	}
	if err := s.gateway.Close(); err != nil {
		log.Printf("close registry gateway: %v", err)
	}
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("console server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("console listening on %s", s.addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
