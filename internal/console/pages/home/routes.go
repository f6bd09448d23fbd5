package home

import (
	"net/http"

	"github.com/featstore/console/internal/console/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	// Everything the root mux could not hand to another module lands here.
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
