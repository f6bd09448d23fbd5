package featureservices

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/featstore/console/internal/console/compose"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/metadata/memory"
	"github.com/featstore/console/pkg/extension"
)

func mountedHandler(t *testing.T) http.Handler {
	t.Helper()
	gateway := memory.NewStore(metadata.Snapshot{
		Project: metadata.Project{Name: "rides"},
		FeatureServices: []metadata.FeatureService{
			{
				Name: "driver_ranking",
				Projections: []metadata.Projection{
					{FeatureView: "driver_hourly_stats", Features: []string{"avg_rating"}},
				},
			},
		},
	})
	registry, err := extension.New(nil)
	if err != nil {
		t.Fatalf("extension.New(nil) = %v", err)
	}
	mount, err := New(gateway, compose.New(registry, compose.Flags{})).Mount()
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

func TestHandleListCountsProjections(t *testing.T) {
	t.Parallel()

	rr := get(t, mountedHandler(t), "/feature-services/")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<a href="/feature-services/driver_ranking">driver_ranking</a>`) {
		t.Fatalf("expected detail link, got %q", body)
	}
	if !strings.Contains(body, "<td>1</td>") {
		t.Fatalf("expected projection count, got %q", body)
	}
}

func TestHandleDetailLinksProjectedFeatureViews(t *testing.T) {
	t.Parallel()

	rr := get(t, mountedHandler(t), "/feature-services/driver_ranking")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<a href="/feature-views/driver_hourly_stats">driver_hourly_stats</a>`) {
		t.Fatalf("expected projected view link, got %q", body)
	}
	if !strings.Contains(body, "<td>avg_rating</td>") {
		t.Fatalf("expected projected feature list, got %q", body)
	}
}

func TestHandleDetailDefinitionListsProjections(t *testing.T) {
	t.Parallel()

	rr := get(t, mountedHandler(t), "/feature-services/driver_ranking/definition")

	body := rr.Body.String()
	if !strings.Contains(body, "featureView: driver_hourly_stats") {
		t.Fatalf("expected projection in YAML, got %q", body)
	}
}

func TestHandleDetailUnknownServiceIsNotFound(t *testing.T) {
	t.Parallel()

	rr := get(t, mountedHandler(t), "/feature-services/ghost")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
