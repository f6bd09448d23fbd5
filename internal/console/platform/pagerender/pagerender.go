// Package pagerender centralizes console page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"

	consolei18n "github.com/featstore/console/internal/console/i18n"
	"github.com/featstore/console/internal/console/templates"
)

// ConsolePage describes one console page response.
type ConsolePage struct {
	Title       string
	StatusCode  int
	ProjectName string
	Fragment    templ.Component
}

// WriteConsolePage renders the fragment inside the app shell and writes
// the response. Rendering happens into a buffer so a template failure
// never produces a half-written page.
func WriteConsolePage(w http.ResponseWriter, r *http.Request, page ConsolePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	loc, lang := consolei18n.ResolveLocalizer(w, r)
	layout := templates.AppLayout(templates.Page{
		Title:       page.Title,
		Lang:        lang,
		ProjectName: page.ProjectName,
		Loc:         loc,
	})

	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(requestContext(r), fragment), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
