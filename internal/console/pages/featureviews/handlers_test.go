package featureviews

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/featstore/console/internal/console/compose"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/metadata/memory"
	"github.com/featstore/console/pkg/extension"
	"github.com/featstore/console/pkg/page"
)

func testGateway() metadata.Gateway {
	return memory.NewStore(metadata.Snapshot{
		Project: metadata.Project{Name: "rides"},
		FeatureViews: []metadata.FeatureView{
			{
				Name:     "driver_hourly_stats",
				Entities: []string{"driver_id"},
				Features: []metadata.Feature{
					{Name: "avg_rating", ValueType: metadata.ValueTypeDouble},
					{Name: "trips_today", ValueType: metadata.ValueTypeInt64},
				},
				TTL:    2 * time.Hour,
				Online: true,
				Source: "driver_stats_source",
			},
		},
	})
}

func testComposer(t *testing.T, cfg extension.Config, flags compose.Flags) compose.Composer {
	t.Helper()
	registry, err := extension.New(cfg)
	if err != nil {
		t.Fatalf("extension.New() = %v", err)
	}
	return compose.New(registry, flags)
}

func mountedHandler(t *testing.T, composer compose.Composer) http.Handler {
	t.Helper()
	mount, err := New(testGateway(), composer).Mount()
	if err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	return mount.Handler
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestHandleListRendersViewLinks(t *testing.T) {
	t.Parallel()

	handler := mountedHandler(t, testComposer(t, nil, compose.Flags{}))
	rr := get(t, handler, "/feature-views/")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<a href="/feature-views/driver_hourly_stats">driver_hourly_stats</a>`) {
		t.Fatalf("expected detail link in list, got %q", body)
	}
	if !strings.Contains(body, "<td>driver_id</td>") {
		t.Fatalf("expected entity column, got %q", body)
	}
}

func TestHandleDetailRendersOverviewTabs(t *testing.T) {
	t.Parallel()

	handler := mountedHandler(t, testComposer(t, nil, compose.Flags{}))
	rr := get(t, handler, "/feature-views/driver_hourly_stats")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<h1>driver_hourly_stats</h1>") {
		t.Fatalf("expected detail heading, got %q", body)
	}
	if !strings.Contains(body, `aria-current="page">Overview<`) {
		t.Fatalf("expected selected overview tab, got %q", body)
	}
	if !strings.Contains(body, "<td>avg_rating</td>") {
		t.Fatalf("expected feature table, got %q", body)
	}
	if strings.Contains(body, ">Statistics<") {
		t.Fatalf("statistics tab must stay hidden when flag is off, got %q", body)
	}
}

func TestHandleDetailShowsStatisticsWhenEnabled(t *testing.T) {
	t.Parallel()

	handler := mountedHandler(t, testComposer(t, nil, compose.Flags{FeatureStatistics: true}))
	rr := get(t, handler, "/feature-views/driver_hourly_stats/statistics")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `aria-current="page">Statistics<`) {
		t.Fatalf("expected selected statistics tab, got %q", body)
	}
}

func TestHandleDetailRendersDefinitionYAML(t *testing.T) {
	t.Parallel()

	handler := mountedHandler(t, testComposer(t, nil, compose.Flags{}))
	rr := get(t, handler, "/feature-views/driver_hourly_stats/definition")

	body := rr.Body.String()
	if !strings.Contains(body, "name: driver_hourly_stats") {
		t.Fatalf("expected YAML definition, got %q", body)
	}
}

func TestHandleDetailUnknownViewIsNotFound(t *testing.T) {
	t.Parallel()

	handler := mountedHandler(t, testComposer(t, nil, compose.Flags{}))
	rr := get(t, handler, "/feature-views/ghost")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestHandleDetailServesExtensionRoute(t *testing.T) {
	t.Parallel()

	cfg := extension.Config{
		page.KindFeatureView: {
			{
				Tab: func(nav page.Navigator) page.Tab {
					return page.NewTab("Lineage", "lineage", page.MatchExact, nav)
				},
				Route: page.Route{
					Pattern: "lineage",
					Render: func(*http.Request) (templ.Component, error) {
						return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
							_, err := io.WriteString(w, "<p id=\"lineage\">upstream graph</p>")
							return err
						}), nil
					},
				},
			},
		},
	}
	handler := mountedHandler(t, testComposer(t, cfg, compose.Flags{}))
	rr := get(t, handler, "/feature-views/driver_hourly_stats/lineage")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<p id="lineage">upstream graph</p>`) {
		t.Fatalf("expected extension tab body, got %q", body)
	}
	if !strings.Contains(body, `aria-current="page">Lineage<`) {
		t.Fatalf("expected selected lineage tab, got %q", body)
	}
}
