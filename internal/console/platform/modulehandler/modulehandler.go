// Package modulehandler provides a composable base for console page
// module handlers.
//
// Page modules share handler infrastructure for localization, page
// rendering, error handling, and detail-page tab dispatch. This package
// extracts that shared scaffold so modules embed it rather than
// duplicating it.
package modulehandler

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/featstore/console/internal/console/compose"
	consolei18n "github.com/featstore/console/internal/console/i18n"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/platform/pagerender"
	"github.com/featstore/console/internal/console/platform/weberror"
	"github.com/featstore/console/internal/console/routepath"
	"github.com/featstore/console/internal/console/templates"
	"github.com/featstore/console/pkg/page"
)

// Base carries the shared collaborators used by page module handlers.
// Embed this in module handler structs to get standard localization,
// page rendering, and detail dispatch without duplicating boilerplate.
type Base struct {
	gateway  metadata.Gateway
	composer compose.Composer
}

// NewBase builds a handler base from the registry gateway and the tab
// composer.
func NewBase(gateway metadata.Gateway, composer compose.Composer) Base {
	return Base{gateway: gateway, composer: composer}
}

// Gateway returns the registry gateway.
func (b Base) Gateway() metadata.Gateway {
	return b.gateway
}

// ProjectName resolves the project name for page chrome. Chrome stays
// usable without it, so lookup failures yield an empty name.
func (b Base) ProjectName(ctx context.Context) string {
	if b.gateway == nil {
		return ""
	}
	project, err := b.gateway.Project(ctx)
	if err != nil {
		return ""
	}
	return project.Name
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (templates.Localizer, string) {
	loc, lang := consolei18n.ResolveLocalizer(w, r)
	return loc, lang
}

// RequestLocalizer resolves a localizer without persisting language
// state, for render funcs that only see the request.
func RequestLocalizer(r *http.Request) templates.Localizer {
	tag, _ := consolei18n.ResolveTag(r)
	return consolei18n.Printer(tag)
}

// WritePage renders a full console page with the given title and fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, fragment templ.Component) {
	if err := pagerender.WriteConsolePage(w, r, pagerender.ConsolePage{
		Title:       title,
		ProjectName: b.ProjectName(requestContext(r)),
		Fragment:    fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized error page for err.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteHandlerError(w, r, err)
}

// WriteNotFound renders the shared not-found page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r)
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// DetailPage describes one object detail request: the page kind, the
// object name from the path, and the built-in tab/route pairs the module
// declares for its kind.
type DetailPage struct {
	Kind     page.Kind
	Name     string
	Builtins []compose.Builtin
}

// WriteDetailPage composes the tab bar and route table for the detail
// page, resolves the request subpath against the merged routes, and
// renders the matched tab body inside the detail chrome. An unmatched
// subpath falls through to the shared not-found page.
func (b Base) WriteDetailPage(w http.ResponseWriter, r *http.Request, detail DetailPage) {
	nav := page.Navigator{
		CurrentSubpath: r.PathValue("rest"),
		HrefFor: func(subpath string) string {
			return routepath.DetailSubpath(detail.Kind, detail.Name, subpath)
		},
	}

	tabs := b.composer.Tabs(detail.Kind, nav, detail.Builtins)
	routes := b.composer.Routes(detail.Kind, detail.Builtins)
	route, ok := compose.Resolve(routes, nav.CurrentSubpath)
	if !ok {
		b.WriteNotFound(w, r)
		return
	}

	body, err := route.Render(r)
	if err != nil {
		b.WriteError(w, r, err)
		return
	}

	loc := RequestLocalizer(r)
	fragment := templates.Group(
		templates.DetailHeading(templates.SectionTitle(detail.Kind, loc), detail.Name),
		templates.TabBar(tabs),
		body,
	)
	b.WritePage(w, r, detail.Name, fragment)
}
