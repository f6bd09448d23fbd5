package featureservices

import (
	"net/http"

	"github.com/featstore/console/internal/console/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.FeatureServices, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.FeatureServicesPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.FeatureServicePattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.FeatureServiceRestPattern, h.handleDetail)
}
