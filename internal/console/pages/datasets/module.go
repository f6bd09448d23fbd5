// Package datasets serves the saved dataset list and detail pages.
package datasets

import (
	"net/http"

	"github.com/featstore/console/internal/console/compose"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/module"
	"github.com/featstore/console/internal/console/platform/modulehandler"
	"github.com/featstore/console/internal/console/routepath"
)

// Module provides saved dataset routes.
type Module struct {
	gateway  metadata.Gateway
	composer compose.Composer
}

// New returns a datasets module backed by the registry gateway.
func New(gateway metadata.Gateway, composer compose.Composer) Module {
	return Module{gateway: gateway, composer: composer}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "datasets" }

// Mount wires saved dataset route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(modulehandler.NewBase(m.gateway, m.composer))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.DatasetsPrefix, Handler: mux}, nil
}
