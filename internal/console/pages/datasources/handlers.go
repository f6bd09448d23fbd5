package datasources

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/featstore/console/internal/console/compose"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/platform/modulehandler"
	"github.com/featstore/console/internal/console/routepath"
	"github.com/featstore/console/internal/console/templates"
	"github.com/featstore/console/pkg/page"
)

type handlers struct {
	base modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{base: base}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	sources, err := h.base.Gateway().ListDataSources(r.Context())
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}

	loc, _ := h.base.PageLocalizer(w, r)
	title := templates.SectionTitle(page.KindDataSource, loc)
	headers := []string{
		templates.T(loc, "field.name"),
		templates.T(loc, "field.type"),
		templates.T(loc, "field.path"),
	}
	rows := make([][]templates.Cell, 0, len(sources))
	for _, source := range sources {
		rows = append(rows, []templates.Cell{
			templates.LinkCell(source.Name, routepath.Detail(page.KindDataSource, source.Name)),
			templates.TextCell(string(source.Type)),
			templates.TextCell(templates.OrDash(source.Path)),
		})
	}

	h.base.WritePage(w, r, title, templates.Group(
		templates.PageHeading(title, ""),
		templates.Table(headers, rows),
	))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	source, err := h.base.Gateway().GetDataSource(r.Context(), r.PathValue("name"))
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}
	h.base.WriteDetailPage(w, r, modulehandler.DetailPage{
		Kind:     page.KindDataSource,
		Name:     source.Name,
		Builtins: builtins(source),
	})
}

func builtins(source metadata.DataSource) []compose.Builtin {
	return []compose.Builtin{
		modulehandler.OverviewBuiltin(overviewRender(source)),
		modulehandler.DefinitionBuiltin(source),
	}
}

func overviewRender(source metadata.DataSource) page.RenderFunc {
	return func(r *http.Request) (templ.Component, error) {
		loc := modulehandler.RequestLocalizer(r)
		props := []templates.Property{
			{Label: templates.T(loc, "field.type"), Value: string(source.Type)},
			{Label: templates.T(loc, "field.path"), Value: templates.OrDash(source.Path)},
			{Label: templates.T(loc, "field.event_timestamp_column"), Value: templates.OrDash(source.EventTimestampColumn)},
			{Label: templates.T(loc, "field.description"), Value: templates.OrDash(source.Description)},
			{Label: templates.T(loc, "field.owner"), Value: templates.OrDash(source.Owner)},
		}
		return templates.Properties(props), nil
	}
}
