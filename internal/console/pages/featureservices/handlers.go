package featureservices

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
	services, err := h.base.Gateway().ListFeatureServices(r.Context())
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}

	loc, _ := h.base.PageLocalizer(w, r)
	title := templates.SectionTitle(page.KindFeatureService, loc)
	headers := []string{
		templates.T(loc, "field.name"),
		templates.T(loc, "field.projections"),
		templates.T(loc, "field.owner"),
	}
	rows := make([][]templates.Cell, 0, len(services))
	for _, service := range services {
		rows = append(rows, []templates.Cell{
			templates.LinkCell(service.Name, routepath.Detail(page.KindFeatureService, service.Name)),
			templates.TextCell(strconv.Itoa(len(service.Projections))),
			templates.TextCell(templates.OrDash(service.Owner)),
		})
	}

	h.base.WritePage(w, r, title, templates.Group(
		templates.PageHeading(title, ""),
		templates.Table(headers, rows),
	))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	service, err := h.base.Gateway().GetFeatureService(r.Context(), r.PathValue("name"))
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}
	h.base.WriteDetailPage(w, r, modulehandler.DetailPage{
		Kind:     page.KindFeatureService,
		Name:     service.Name,
		Builtins: builtins(service),
	})
}

func builtins(service metadata.FeatureService) []compose.Builtin {
	return []compose.Builtin{
		modulehandler.OverviewBuiltin(overviewRender(service)),
		modulehandler.DefinitionBuiltin(service),
	}
}

func overviewRender(service metadata.FeatureService) page.RenderFunc {
	return func(r *http.Request) (templ.Component, error) {
		loc := modulehandler.RequestLocalizer(r)
		props := []templates.Property{
			{Label: templates.T(loc, "field.description"), Value: templates.OrDash(service.Description)},
			{Label: templates.T(loc, "field.owner"), Value: templates.OrDash(service.Owner)},
			{Label: templates.T(loc, "field.created"), Value: templates.FormatTime(service.CreatedTimestamp)},
			{Label: templates.T(loc, "field.updated"), Value: templates.FormatTime(service.LastUpdatedTimestamp)},
		}

		projectionRows := make([][]templates.Cell, 0, len(service.Projections))
		for _, projection := range service.Projections {
			projectionRows = append(projectionRows, []templates.Cell{
				templates.LinkCell(projection.FeatureView, routepath.Detail(page.KindFeatureView, projection.FeatureView)),
				templates.TextCell(templates.FormatList(projection.Features)),
			})
		}

		return templates.Group(
			templates.Properties(props),
			templates.Labels(service.Labels),
			templates.Table([]string{
				templates.T(loc, "field.feature_view"),
				templates.T(loc, "field.features"),
			}, projectionRows),
		), nil
	}
}
