package featureviews

import (
	"net/http"

	"github.com/featstore/console/internal/console/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.FeatureViews, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.FeatureViewsPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.FeatureViewPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.FeatureViewRestPattern, h.handleDetail)
}
