package extension

import (
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/featstore/console/pkg/page"
)

func lineageExtension() Extension {
	return Extension{
		Tab: func(nav page.Navigator) page.Tab {
			return page.NewTab("Lineage", "lineage", page.MatchPrefix, nav)
		},
		Route: page.Route{
			Pattern: "lineage",
			Render: func(*http.Request) (templ.Component, error) {
				return templ.Raw("<p>lineage</p>"), nil
			},
		},
	}
}

func TestNewKeepsRegistrationOrder(t *testing.T) {
	t.Parallel()

	second := lineageExtension()
	second.Tab = func(nav page.Navigator) page.Tab {
		return page.NewTab("Alerts", "alerts", page.MatchExact, nav)
	}
	second.Route.Pattern = "alerts"

	reg, err := New(Config{page.KindFeatureView: {lineageExtension(), second}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got := reg.Get(page.KindFeatureView)
	if len(got) != 2 {
		t.Fatalf("Get() length = %d, want 2", len(got))
	}
	if got[0].Route.Pattern != "lineage" || got[1].Route.Pattern != "alerts" {
		t.Fatalf("Get() order = [%q, %q]", got[0].Route.Pattern, got[1].Route.Pattern)
	}
}

func TestGetUnknownKindYieldsEmpty(t *testing.T) {
	t.Parallel()

	reg, err := New(Config{page.KindFeatureView: {lineageExtension()}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := reg.Get(page.KindEntity); len(got) != 0 {
		t.Fatalf("Get(entity) length = %d, want 0", len(got))
	}

	var nilReg *Registry
	if got := nilReg.Get(page.KindFeatureView); got != nil {
		t.Fatalf("nil registry Get() = %v, want nil", got)
	}
}

func TestNewRejectsBuiltinPatternCollision(t *testing.T) {
	t.Parallel()

	ext := lineageExtension()
	ext.Route.Pattern = "statistics"
	_, err := New(Config{page.KindFeatureView: {ext}})
	if err == nil {
		t.Fatalf("New() error = nil, want collision error")
	}
	if !strings.Contains(err.Error(), "statistics") || !strings.Contains(err.Error(), "built-in") {
		t.Fatalf("New() error = %v", err)
	}
}

func TestNewRejectsDuplicatePatternAndLabelBetweenExtensions(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{page.KindDataset: {lineageExtension(), lineageExtension()}}); err == nil {
		t.Fatalf("New() error = nil, want duplicate pattern error")
	}

	renamed := lineageExtension()
	renamed.Route.Pattern = "graph"
	if _, err := New(Config{page.KindDataset: {lineageExtension(), renamed}}); err == nil {
		t.Fatalf("New() error = nil, want duplicate label error")
	}
}

func TestNewRejectsDuplicateBuiltinLabel(t *testing.T) {
	t.Parallel()

	ext := lineageExtension()
	ext.Tab = func(nav page.Navigator) page.Tab {
		return page.NewTab(page.LabelOverview, "lineage", page.MatchPrefix, nav)
	}
	if _, err := New(Config{page.KindEntity: {ext}}); err == nil {
		t.Fatalf("New() error = nil, want label collision error")
	}
}

func TestNewRejectsIndexPatternAndMissingParts(t *testing.T) {
	t.Parallel()

	empty := lineageExtension()
	empty.Route.Pattern = "/"
	if _, err := New(Config{page.KindDataSource: {empty}}); err == nil {
		t.Fatalf("New() error = nil, want empty pattern rejection")
	}

	noTab := lineageExtension()
	noTab.Tab = nil
	if _, err := New(Config{page.KindDataSource: {noTab}}); err == nil {
		t.Fatalf("New() error = nil, want missing tab factory rejection")
	}

	noRender := lineageExtension()
	noRender.Route.Render = nil
	if _, err := New(Config{page.KindDataSource: {noRender}}); err == nil {
		t.Fatalf("New() error = nil, want missing render rejection")
	}
}

func TestGetReturnsDefensiveCopy(t *testing.T) {
	t.Parallel()

	reg, err := New(Config{page.KindFeatureView: {lineageExtension()}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	first := reg.Get(page.KindFeatureView)
	first[0].Route.Pattern = "mutated"
	if got := reg.Get(page.KindFeatureView); got[0].Route.Pattern != "lineage" {
		t.Fatalf("registry mutated through Get() result: %q", got[0].Route.Pattern)
	}
}
