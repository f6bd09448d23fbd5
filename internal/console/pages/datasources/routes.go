package datasources

import (
	"net/http"

	"github.com/featstore/console/internal/console/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.DataSources, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.DataSourcesPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.DataSourcePattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.DataSourceRestPattern, h.handleDetail)
}
