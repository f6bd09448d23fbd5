package page

import "testing"

func TestNewTabExactMatchSelectsIndexOnly(t *testing.T) {
	t.Parallel()

	nav := Navigator{CurrentSubpath: "", HrefFor: func(subpath string) string {
		if subpath == "" {
			return "/feature-views/driver_stats"
		}
		return "/feature-views/driver_stats/" + subpath
	}}
	tab := NewTab(LabelOverview, TargetOverview, MatchExact, nav)
	if !tab.Selected {
		t.Fatalf("Selected = false, want true for empty subpath")
	}
	if tab.Href != "/feature-views/driver_stats" {
		t.Fatalf("Href = %q", tab.Href)
	}

	nav.CurrentSubpath = "statistics"
	if NewTab(LabelOverview, TargetOverview, MatchExact, nav).Selected {
		t.Fatalf("index tab selected for subpath %q", nav.CurrentSubpath)
	}
}

func TestNewTabPrefixMatchCoversNestedSubpaths(t *testing.T) {
	t.Parallel()

	for _, current := range []string{"statistics", "statistics/histograms", "/statistics/"} {
		tab := NewTab(LabelStatistics, TargetStatistics, MatchPrefix, Navigator{CurrentSubpath: current})
		if !tab.Selected {
			t.Fatalf("Selected = false for subpath %q", current)
		}
	}
	if NewTab(LabelStatistics, TargetStatistics, MatchPrefix, Navigator{CurrentSubpath: "stats"}).Selected {
		t.Fatalf("prefix tab selected for unrelated subpath")
	}
}

func TestRouteMatchesNormalizesSlashes(t *testing.T) {
	t.Parallel()

	rt := Route{Pattern: "statistics"}
	for _, subpath := range []string{"statistics", "/statistics", "statistics/"} {
		if !rt.Matches(subpath) {
			t.Fatalf("Matches(%q) = false", subpath)
		}
	}
	if rt.Matches("statistics/histograms") {
		t.Fatalf("exact route matched nested subpath")
	}
	index := Route{Pattern: ""}
	if !index.Matches("/") {
		t.Fatalf("index route did not match %q", "/")
	}
}

func TestKindStringsAreStable(t *testing.T) {
	t.Parallel()

	want := map[Kind]string{
		KindFeatureView:    "feature-view",
		KindFeatureService: "feature-service",
		KindEntity:         "entity",
		KindDataset:        "dataset",
		KindDataSource:     "data-source",
	}
	if len(Kinds()) != len(want) {
		t.Fatalf("Kinds() length = %d, want %d", len(Kinds()), len(want))
	}
	for kind, name := range want {
		if kind.String() != name {
			t.Fatalf("Kind(%d).String() = %q, want %q", kind, kind.String(), name)
		}
	}
	if Kind(99).String() != "unknown" {
		t.Fatalf("out-of-range kind String() = %q", Kind(99).String())
	}
}
