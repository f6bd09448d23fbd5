// Package entities serves the entity list and detail pages.
package entities

import (
	"net/http"

	"github.com/featstore/console/internal/console/compose"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/module"
	"github.com/featstore/console/internal/console/platform/modulehandler"
	"github.com/featstore/console/internal/console/routepath"
)

// Module provides entity routes.
type Module struct {
	gateway  metadata.Gateway
	composer compose.Composer
}

// New returns an entities module backed by the registry gateway.
func New(gateway metadata.Gateway, composer compose.Composer) Module {
	return Module{gateway: gateway, composer: composer}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "entities" }

// Mount wires entity route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(modulehandler.NewBase(m.gateway, m.composer))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.EntitiesPrefix, Handler: mux}, nil
}
