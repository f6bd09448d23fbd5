package entities

import (
	"net/http"

	"github.com/featstore/console/internal/console/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Entities, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.EntitiesPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.EntityPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.EntityRestPattern, h.handleDetail)
}
