package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/featstore/console/internal/platform/branding"
)

func TestWriteConsolePageRendersFragmentInsideShell(t *testing.T) {
	t.Parallel()

	fragment := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p id=\"fragment\">body</p>")
		return err
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/entities", nil)
	err := WriteConsolePage(rr, req, ConsolePage{Title: "Entities", ProjectName: "rides", Fragment: fragment})
	if err != nil {
		t.Fatalf("WriteConsolePage() = %v", err)
	}

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<p id="fragment">body</p>`) {
		t.Fatalf("expected fragment in page, got %q", body)
	}
	if !strings.Contains(body, branding.AppName) {
		t.Fatalf("expected app shell around fragment, got %q", body)
	}
}

func TestWriteConsolePageDefaultsStatusAndFragment(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := WriteConsolePage(rr, req, ConsolePage{Title: "Home"}); err != nil {
		t.Fatalf("WriteConsolePage() = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestWriteConsolePagePropagatesStatusCode(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := WriteConsolePage(rr, req, ConsolePage{Title: "Missing", StatusCode: http.StatusNotFound}); err != nil {
		t.Fatalf("WriteConsolePage() = %v", err)
	}
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestWriteConsolePageUsesRequestedLanguage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	if err := WriteConsolePage(rr, req, ConsolePage{Title: "Home"}); err != nil {
		t.Fatalf("WriteConsolePage() = %v", err)
	}
	if !strings.Contains(rr.Body.String(), `lang="pt-BR"`) {
		t.Fatalf("expected pt-BR document language, got %q", rr.Body.String())
	}
}
