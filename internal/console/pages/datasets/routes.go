package datasets

import (
	"net/http"

	"github.com/featstore/console/internal/console/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Datasets, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.DatasetsPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.DatasetPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.DatasetRestPattern, h.handleDetail)
}
