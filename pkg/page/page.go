// Package page defines the contracts shared by console pages and host
// extensions: page kinds, tab descriptors, and route descriptors.
package page

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// Kind identifies an extensible list/detail page category.
type Kind int

const (
	KindFeatureView Kind = iota
	KindFeatureService
	KindEntity
	KindDataset
	KindDataSource
)

// Kinds returns every page kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindFeatureView, KindFeatureService, KindEntity, KindDataset, KindDataSource}
}

// String returns the stable identifier used in logs and configuration errors.
func (k Kind) String() string {
	switch k {
	case KindFeatureView:
		return "feature-view"
	case KindFeatureService:
		return "feature-service"
	case KindEntity:
		return "entity"
	case KindDataset:
		return "dataset"
	case KindDataSource:
		return "data-source"
	default:
		return "unknown"
	}
}

// Match selects the tab-selection semantics for a target subpath.
type Match int

const (
	// MatchExact marks a tab selected only when the current subpath equals
	// its target. Index tabs (target "") use this.
	MatchExact Match = iota
	// MatchPrefix marks a tab selected whenever the current subpath starts
	// with its target, so nested pages keep their parent tab highlighted.
	MatchPrefix
)

// Navigator carries the two capabilities supplied by the surrounding
// router: the current subpath relative to the page, and href construction
// for a target subpath.
type Navigator struct {
	CurrentSubpath string
	HrefFor        func(subpath string) string
}

// Tab is one navigational tab on a detail page. Selected and Href are
// derived from the Navigator at construction; nothing is stored between
// renders.
type Tab struct {
	Label    string
	Target   string
	Match    Match
	Selected bool
	Href     string
}

// NewTab builds a tab whose selection state is computed against the
// navigator's current subpath.
func NewTab(label string, target string, match Match, nav Navigator) Tab {
	tab := Tab{Label: label, Target: target, Match: match}
	current := NormalizeSubpath(nav.CurrentSubpath)
	target = NormalizeSubpath(target)
	switch match {
	case MatchPrefix:
		tab.Selected = strings.HasPrefix(current, target)
	default:
		tab.Selected = current == target
	}
	if nav.HrefFor != nil {
		tab.Href = nav.HrefFor(target)
	}
	return tab
}

// RenderFunc produces the renderable unit for a resolved route. The
// composition layer never inspects the component it returns.
type RenderFunc func(r *http.Request) (templ.Component, error)

// Route pairs a subpath pattern with its renderable unit.
type Route struct {
	Pattern string
	Render  RenderFunc
}

// Matches reports whether the route pattern matches a normalized subpath.
func (rt Route) Matches(subpath string) bool {
	return NormalizeSubpath(rt.Pattern) == NormalizeSubpath(subpath)
}

// NormalizeSubpath trims surrounding whitespace and slashes so "",
// "/" and " / " all address the index route.
func NormalizeSubpath(subpath string) string {
	return strings.Trim(strings.TrimSpace(subpath), "/")
}

// Built-in tab targets shared by every page kind. Host extensions may not
// register routes on these patterns.
const (
	TargetOverview   = ""
	TargetStatistics = "statistics"
	TargetDefinition = "definition"
)

// Built-in tab labels. Duplicate extension labels are rejected at
// registration time.
const (
	LabelOverview   = "Overview"
	LabelStatistics = "Statistics"
	LabelDefinition = "Definition"
)

// ReservedPatterns returns the subpath patterns owned by built-in routes
// for a kind. The set is static: flag-gated built-ins stay reserved even
// when the flag is off, so toggling a flag can never change whether a
// host configuration is valid.
func ReservedPatterns(Kind) []string {
	return []string{TargetOverview, TargetStatistics, TargetDefinition}
}

// ReservedLabels returns the tab labels owned by built-in tabs for a kind.
func ReservedLabels(Kind) []string {
	return []string{LabelOverview, LabelStatistics, LabelDefinition}
}
