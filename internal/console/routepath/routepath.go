// Package routepath stores canonical HTTP paths for console page modules.
package routepath

import (
	"net/url"
	"strings"

	"github.com/featstore/console/pkg/page"
)

const (
	Root         = "/"
	Health       = "/up"
	StaticPrefix = "/static/"

	FeatureViews           = "/feature-views"
	FeatureViewsPrefix     = "/feature-views/"
	FeatureViewPattern     = FeatureViewsPrefix + "{name}"
	FeatureViewRestPattern = FeatureViewsPrefix + "{name}/{rest...}"

	FeatureServices           = "/feature-services"
	FeatureServicesPrefix     = "/feature-services/"
	FeatureServicePattern     = FeatureServicesPrefix + "{name}"
	FeatureServiceRestPattern = FeatureServicesPrefix + "{name}/{rest...}"

	Entities          = "/entities"
	EntitiesPrefix    = "/entities/"
	EntityPattern     = EntitiesPrefix + "{name}"
	EntityRestPattern = EntitiesPrefix + "{name}/{rest...}"

	Datasets           = "/datasets"
	DatasetsPrefix     = "/datasets/"
	DatasetPattern     = DatasetsPrefix + "{name}"
	DatasetRestPattern = DatasetsPrefix + "{name}/{rest...}"

	DataSources           = "/data-sources"
	DataSourcesPrefix     = "/data-sources/"
	DataSourcePattern     = DataSourcesPrefix + "{name}"
	DataSourceRestPattern = DataSourcesPrefix + "{name}/{rest...}"
)

// SectionPrefix returns the mount prefix owning a page kind.
func SectionPrefix(kind page.Kind) string {
	switch kind {
	case page.KindFeatureView:
		return FeatureViewsPrefix
	case page.KindFeatureService:
		return FeatureServicesPrefix
	case page.KindEntity:
		return EntitiesPrefix
	case page.KindDataset:
		return DatasetsPrefix
	case page.KindDataSource:
		return DataSourcesPrefix
	default:
		return Root
	}
}

// SectionList returns the list route for a page kind.
func SectionList(kind page.Kind) string {
	return strings.TrimSuffix(SectionPrefix(kind), "/")
}

// Detail returns the detail route for one named object of a page kind.
func Detail(kind page.Kind, name string) string {
	return SectionPrefix(kind) + escapeSegment(name)
}

// DetailSubpath returns the route for a tab subpath under one object.
func DetailSubpath(kind page.Kind, name string, subpath string) string {
	subpath = page.NormalizeSubpath(subpath)
	if subpath == "" {
		return Detail(kind, name)
	}
	return Detail(kind, name) + "/" + subpath
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
