// Package compose merges built-in page tabs and routes with
// host-contributed extensions.
package compose

import (
	"github.com/featstore/console/pkg/extension"
	"github.com/featstore/console/pkg/page"
)

// Flags holds the feature toggles consulted during composition. Flags are
// explicit inputs rather than ambient settings so composition stays pure.
type Flags struct {
	// FeatureStatistics enables the built-in Statistics tab on pages
	// that declare one.
	FeatureStatistics bool
}

// Builtin declares one built-in tab/route pair for a page kind. Gate, when
// set, decides inclusion from the composer flags.
type Builtin struct {
	Label  string
	Target string
	Match  page.Match
	Route  page.Route
	Gate   func(Flags) bool
}

// Composer produces the merged tab bar and route table for a page kind.
// It reads the registry and flags it was constructed with and keeps no
// state of its own, so identical inputs always compose identical output.
type Composer struct {
	registry *extension.Registry
	flags    Flags
}

// New builds a composer over an immutable extension registry.
func New(registry *extension.Registry, flags Flags) Composer {
	return Composer{registry: registry, flags: flags}
}

// Tabs merges built-in tabs with registered extension tabs. Presentation
// order is declaration order followed by registration order; there is no
// re-sorting.
func (c Composer) Tabs(kind page.Kind, nav page.Navigator, builtins []Builtin) []page.Tab {
	tabs := make([]page.Tab, 0, len(builtins))
	for _, builtin := range builtins {
		if !c.included(builtin) {
			continue
		}
		tabs = append(tabs, page.NewTab(builtin.Label, builtin.Target, builtin.Match, nav))
	}
	for _, ext := range c.registry.Get(kind) {
		tabs = append(tabs, ext.Tab(nav))
	}
	return tabs
}

// Routes merges built-in routes with registered extension routes.
// Built-ins come first, so resolution can never hand a built-in subpath
// to an extension.
func (c Composer) Routes(kind page.Kind, builtins []Builtin) []page.Route {
	routes := make([]page.Route, 0, len(builtins))
	for _, builtin := range builtins {
		if !c.included(builtin) {
			continue
		}
		routes = append(routes, builtin.Route)
	}
	for _, ext := range c.registry.Get(kind) {
		routes = append(routes, ext.Route)
	}
	return routes
}

func (c Composer) included(builtin Builtin) bool {
	return builtin.Gate == nil || builtin.Gate(c.flags)
}

// Resolve walks the merged route table and returns the first route whose
// pattern matches the subpath. A miss is not an error; callers fall
// through to the shared not-found rendering.
func Resolve(routes []page.Route, subpath string) (page.Route, bool) {
	for _, route := range routes {
		if route.Matches(subpath) {
			return route, true
		}
	}
	return page.Route{}, false
}
