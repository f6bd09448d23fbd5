package featureviews

import (
	"net/http"
	"strconv"

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
	views, err := h.base.Gateway().ListFeatureViews(r.Context())
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}

	loc, _ := h.base.PageLocalizer(w, r)
	title := templates.SectionTitle(page.KindFeatureView, loc)
	headers := []string{
		templates.T(loc, "field.name"),
		templates.T(loc, "field.entities"),
		templates.T(loc, "field.features"),
		templates.T(loc, "field.online"),
	}
	rows := make([][]templates.Cell, 0, len(views))
	for _, view := range views {
		rows = append(rows, []templates.Cell{
			templates.LinkCell(view.Name, routepath.Detail(page.KindFeatureView, view.Name)),
			templates.TextCell(templates.FormatList(view.Entities)),
			templates.TextCell(strconv.Itoa(len(view.Features))),
			templates.TextCell(templates.FormatBool(view.Online)),
		})
	}

	h.base.WritePage(w, r, title, templates.Group(
		templates.PageHeading(title, ""),
		templates.Table(headers, rows),
	))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	view, err := h.base.Gateway().GetFeatureView(r.Context(), r.PathValue("name"))
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}
	h.base.WriteDetailPage(w, r, modulehandler.DetailPage{
		Kind:     page.KindFeatureView,
		Name:     view.Name,
		Builtins: builtins(view),
	})
}

func builtins(view metadata.FeatureView) []compose.Builtin {
	return []compose.Builtin{
		modulehandler.OverviewBuiltin(overviewRender(view)),
		modulehandler.StatisticsBuiltin(),
		modulehandler.DefinitionBuiltin(view),
	}
}

func overviewRender(view metadata.FeatureView) page.RenderFunc {
	return func(r *http.Request) (templ.Component, error) {
		loc := modulehandler.RequestLocalizer(r)
		props := []templates.Property{
			{Label: templates.T(loc, "field.entities"), Value: templates.FormatList(view.Entities)},
			{Label: templates.T(loc, "field.ttl"), Value: templates.FormatTTL(view.TTL)},
			{Label: templates.T(loc, "field.online"), Value: templates.FormatBool(view.Online)},
			{Label: templates.T(loc, "field.source"), Value: templates.OrDash(view.Source)},
			{Label: templates.T(loc, "field.owner"), Value: templates.OrDash(view.Owner)},
			{Label: templates.T(loc, "field.created"), Value: templates.FormatTime(view.CreatedTimestamp)},
			{Label: templates.T(loc, "field.updated"), Value: templates.FormatTime(view.LastUpdatedTimestamp)},
		}

		featureRows := make([][]templates.Cell, 0, len(view.Features))
		for _, feature := range view.Features {
			featureRows = append(featureRows, []templates.Cell{
				templates.TextCell(feature.Name),
				templates.TextCell(feature.ValueType.String()),
			})
		}

		return templates.Group(
			templates.Properties(props),
			templates.Labels(view.Labels),
			templates.Table([]string{
				templates.T(loc, "field.name"),
				templates.T(loc, "field.value_type"),
			}, featureRows),
		), nil
	}
}
