package modulehandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/featstore/console/internal/console/compose"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/metadata/memory"
	"github.com/featstore/console/pkg/extension"
	"github.com/featstore/console/pkg/page"
)

func textComponent(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

func testGateway() metadata.Gateway {
	return memory.NewStore(metadata.Snapshot{
		Project: metadata.Project{Name: "rides"},
		Entities: []metadata.Entity{
			{Name: "driver_id", ValueType: metadata.ValueTypeInt64},
		},
	})
}

func emptyRegistry(t *testing.T) *extension.Registry {
	t.Helper()
	registry, err := extension.New(nil)
	if err != nil {
		t.Fatalf("extension.New(nil) = %v", err)
	}
	return registry
}

func detailRequest(subpath string) *http.Request {
	target := "/entities/driver_id"
	if subpath != "" {
		target += "/" + subpath
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.SetPathValue("name", "driver_id")
	req.SetPathValue("rest", subpath)
	return req
}

func entityBuiltins() []compose.Builtin {
	return []compose.Builtin{
		OverviewBuiltin(func(*http.Request) (templ.Component, error) {
			return textComponent("<p id=\"overview\">overview body</p>"), nil
		}),
		StatisticsBuiltin(),
		DefinitionBuiltin(metadata.Entity{Name: "driver_id", ValueType: metadata.ValueTypeInt64}),
	}
}

func TestWriteDetailPageRendersOverviewWithTabBar(t *testing.T) {
	t.Parallel()

	base := NewBase(testGateway(), compose.New(emptyRegistry(t), compose.Flags{}))
	rr := httptest.NewRecorder()
	base.WriteDetailPage(rr, detailRequest(""), DetailPage{
		Kind:     page.KindEntity,
		Name:     "driver_id",
		Builtins: entityBuiltins(),
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<p id="overview">overview body</p>`) {
		t.Fatalf("expected overview body, got %q", body)
	}
	if !strings.Contains(body, `class="tab selected" href="/entities/driver_id" aria-current="page">Overview`) {
		t.Fatalf("expected selected overview tab, got %q", body)
	}
	if !strings.Contains(body, `href="/entities/driver_id/definition"`) {
		t.Fatalf("expected definition tab link, got %q", body)
	}
	if strings.Contains(body, ">Statistics<") {
		t.Fatalf("statistics tab must stay hidden when flag is off, got %q", body)
	}
}

func TestWriteDetailPageGatesStatisticsOnFlag(t *testing.T) {
	t.Parallel()

	base := NewBase(testGateway(), compose.New(emptyRegistry(t), compose.Flags{FeatureStatistics: true}))
	rr := httptest.NewRecorder()
	base.WriteDetailPage(rr, detailRequest("statistics"), DetailPage{
		Kind:     page.KindEntity,
		Name:     "driver_id",
		Builtins: entityBuiltins(),
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "No statistics have been computed") {
		t.Fatalf("expected statistics placeholder, got %q", body)
	}
	if !strings.Contains(body, `aria-current="page">Statistics`) {
		t.Fatalf("expected selected statistics tab, got %q", body)
	}
}

func TestWriteDetailPageHidesGatedRouteWhenFlagOff(t *testing.T) {
	t.Parallel()

	base := NewBase(testGateway(), compose.New(emptyRegistry(t), compose.Flags{}))
	rr := httptest.NewRecorder()
	base.WriteDetailPage(rr, detailRequest("statistics"), DetailPage{
		Kind:     page.KindEntity,
		Name:     "driver_id",
		Builtins: entityBuiltins(),
	})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestWriteDetailPageRendersDefinitionYAML(t *testing.T) {
	t.Parallel()

	base := NewBase(testGateway(), compose.New(emptyRegistry(t), compose.Flags{}))
	rr := httptest.NewRecorder()
	base.WriteDetailPage(rr, detailRequest("definition"), DetailPage{
		Kind:     page.KindEntity,
		Name:     "driver_id",
		Builtins: entityBuiltins(),
	})

	body := rr.Body.String()
	if !strings.Contains(body, "name: driver_id") {
		t.Fatalf("expected YAML definition, got %q", body)
	}
	if !strings.Contains(body, "valueType: INT64") {
		t.Fatalf("expected YAML value type, got %q", body)
	}
}

func TestWriteDetailPageFallsThroughToNotFound(t *testing.T) {
	t.Parallel()

	base := NewBase(testGateway(), compose.New(emptyRegistry(t), compose.Flags{}))
	rr := httptest.NewRecorder()
	base.WriteDetailPage(rr, detailRequest("no-such-tab"), DetailPage{
		Kind:     page.KindEntity,
		Name:     "driver_id",
		Builtins: entityBuiltins(),
	})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestWriteDetailPageAppendsExtensionTabsAfterBuiltins(t *testing.T) {
	t.Parallel()

	registry, err := extension.New(extension.Config{
		page.KindEntity: {
			{
				Tab: func(nav page.Navigator) page.Tab {
					return page.NewTab("Lineage", "lineage", page.MatchExact, nav)
				},
				Route: page.Route{
					Pattern: "lineage",
					Render: func(*http.Request) (templ.Component, error) {
						return textComponent("<p id=\"lineage\">graph</p>"), nil
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("extension.New() = %v", err)
	}
	base := NewBase(testGateway(), compose.New(registry, compose.Flags{}))

	rr := httptest.NewRecorder()
	base.WriteDetailPage(rr, detailRequest("lineage"), DetailPage{
		Kind:     page.KindEntity,
		Name:     "driver_id",
		Builtins: entityBuiltins(),
	})

	body := rr.Body.String()
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(body, `<p id="lineage">graph</p>`) {
		t.Fatalf("expected extension body, got %q", body)
	}
	overviewIndex := strings.Index(body, ">Overview<")
	lineageIndex := strings.Index(body, ">Lineage<")
	if overviewIndex < 0 || lineageIndex < 0 || overviewIndex > lineageIndex {
		t.Fatalf("expected built-in tabs before extension tabs, got %q", body)
	}
}

func TestProjectNameIsEmptyOnGatewayError(t *testing.T) {
	t.Parallel()

	base := NewBase(nil, compose.New(emptyRegistry(t), compose.Flags{}))
	if got := base.ProjectName(context.Background()); got != "" {
		t.Fatalf("ProjectName() = %q, want empty", got)
	}
}
