package datasets

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
	datasets, err := h.base.Gateway().ListSavedDatasets(r.Context())
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}

	loc, _ := h.base.PageLocalizer(w, r)
	title := templates.SectionTitle(page.KindDataset, loc)
	headers := []string{
		templates.T(loc, "field.name"),
		templates.T(loc, "field.source"),
		templates.T(loc, "field.storage_path"),
	}
	rows := make([][]templates.Cell, 0, len(datasets))
	for _, dataset := range datasets {
		rows = append(rows, []templates.Cell{
			templates.LinkCell(dataset.Name, routepath.Detail(page.KindDataset, dataset.Name)),
			templates.TextCell(templates.OrDash(dataset.Source)),
			templates.TextCell(templates.OrDash(dataset.StoragePath)),
		})
	}

	h.base.WritePage(w, r, title, templates.Group(
		templates.PageHeading(title, ""),
		templates.Table(headers, rows),
	))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	dataset, err := h.base.Gateway().GetSavedDataset(r.Context(), r.PathValue("name"))
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}
	h.base.WriteDetailPage(w, r, modulehandler.DetailPage{
		Kind:     page.KindDataset,
		Name:     dataset.Name,
		Builtins: builtins(dataset),
	})
}

func builtins(dataset metadata.SavedDataset) []compose.Builtin {
	return []compose.Builtin{
		modulehandler.OverviewBuiltin(overviewRender(dataset)),
		modulehandler.DefinitionBuiltin(dataset),
	}
}

func overviewRender(dataset metadata.SavedDataset) page.RenderFunc {
	return func(r *http.Request) (templ.Component, error) {
		loc := modulehandler.RequestLocalizer(r)
		props := []templates.Property{
			{Label: templates.T(loc, "field.features"), Value: templates.FormatList(dataset.Features)},
			{Label: templates.T(loc, "field.join_keys"), Value: templates.FormatList(dataset.JoinKeys)},
			{Label: templates.T(loc, "field.source"), Value: templates.OrDash(dataset.Source)},
			{Label: templates.T(loc, "field.storage_path"), Value: templates.OrDash(dataset.StoragePath)},
			{Label: templates.T(loc, "field.created"), Value: templates.FormatTime(dataset.CreatedTimestamp)},
			{Label: templates.T(loc, "field.updated"), Value: templates.FormatTime(dataset.LastUpdatedTimestamp)},
		}
		return templates.Group(
			templates.Properties(props),
			templates.Labels(dataset.Labels),
		), nil
	}
}
