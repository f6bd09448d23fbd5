// Package extension lets host applications contribute tabs and routes to
// console detail pages. Registration happens once at startup; the
// resulting registry is immutable for the life of the process.
package extension

import (
	"fmt"

	"github.com/featstore/console/pkg/page"
)

// TabFactory builds a contributed tab for the current navigation state.
type TabFactory func(nav page.Navigator) page.Tab

// Extension pairs a contributed tab with the route that renders it.
type Extension struct {
	Tab   TabFactory
	Route page.Route
}

// Config is the host registration surface: per page kind, an ordered
// sequence of contributed extensions.
type Config map[page.Kind][]Extension

// Registry is the immutable table of host-contributed extensions.
// A nil registry is valid and holds nothing.
type Registry struct {
	byKind map[page.Kind][]Extension
}

// New validates a host configuration and builds a registry. Collisions
// with built-in route patterns or tab labels, and duplicates within one
// kind, are configuration errors surfaced to the host integrator.
func New(cfg Config) (*Registry, error) {
	byKind := make(map[page.Kind][]Extension, len(cfg))
	for kind, exts := range cfg {
		seenPatterns := reservedSet(page.ReservedPatterns(kind))
		seenLabels := reservedSet(page.ReservedLabels(kind))
		ordered := make([]Extension, 0, len(exts))
		for i, ext := range exts {
			if ext.Tab == nil {
				return nil, fmt.Errorf("extension %d for %s: tab factory is required", i, kind)
			}
			if ext.Route.Render == nil {
				return nil, fmt.Errorf("extension %d for %s: route render is required", i, kind)
			}
			pattern := page.NormalizeSubpath(ext.Route.Pattern)
			if pattern == "" {
				return nil, fmt.Errorf("extension %d for %s: route pattern is required", i, kind)
			}
			if owner, taken := seenPatterns[pattern]; taken {
				return nil, fmt.Errorf("extension %d for %s: route pattern %q collides with %s", i, kind, pattern, owner)
			}
			seenPatterns[pattern] = fmt.Sprintf("extension %d", i)

			label := ext.Tab(page.Navigator{}).Label
			if label == "" {
				return nil, fmt.Errorf("extension %d for %s: tab label is required", i, kind)
			}
			if owner, taken := seenLabels[label]; taken {
				return nil, fmt.Errorf("extension %d for %s: tab label %q collides with %s", i, kind, label, owner)
			}
			seenLabels[label] = fmt.Sprintf("extension %d", i)

			ordered = append(ordered, ext)
		}
		if len(ordered) > 0 {
			byKind[kind] = ordered
		}
	}
	return &Registry{byKind: byKind}, nil
}

// Get returns the extensions registered for a kind in registration order.
// Unknown kinds yield an empty sequence, never an error.
func (r *Registry) Get(kind page.Kind) []Extension {
	if r == nil || len(r.byKind[kind]) == 0 {
		return nil
	}
	out := make([]Extension, len(r.byKind[kind]))
	copy(out, r.byKind[kind])
	return out
}

func reservedSet(values []string) map[string]string {
	set := make(map[string]string, len(values))
	for _, value := range values {
		set[value] = "a built-in"
	}
	return set
}
