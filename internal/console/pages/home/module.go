// Package home serves the project overview page and the root not-found
// fallback.
package home

import (
	"net/http"

	"github.com/featstore/console/internal/console/compose"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/module"
	"github.com/featstore/console/internal/console/platform/modulehandler"
	"github.com/featstore/console/internal/console/routepath"
)

// Module provides the project overview routes.
type Module struct {
	gateway metadata.Gateway
}

// New returns a home module backed by the registry gateway.
func New(gateway metadata.Gateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the overview handler and the root fallback.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	// Home composes no tabs, so a zero composer is enough.
	h := newHandlers(modulehandler.NewBase(m.gateway, compose.Composer{}))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
