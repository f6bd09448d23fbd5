package entities

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
	entities, err := h.base.Gateway().ListEntities(r.Context())
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}

	loc, _ := h.base.PageLocalizer(w, r)
	title := templates.SectionTitle(page.KindEntity, loc)
	headers := []string{
		templates.T(loc, "field.name"),
		templates.T(loc, "field.value_type"),
		templates.T(loc, "field.join_key"),
	}
	rows := make([][]templates.Cell, 0, len(entities))
	for _, entity := range entities {
		rows = append(rows, []templates.Cell{
			templates.LinkCell(entity.Name, routepath.Detail(page.KindEntity, entity.Name)),
			templates.TextCell(entity.ValueType.String()),
			templates.TextCell(entity.EffectiveJoinKey()),
		})
	}

	h.base.WritePage(w, r, title, templates.Group(
		templates.PageHeading(title, ""),
		templates.Table(headers, rows),
	))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	entity, err := h.base.Gateway().GetEntity(r.Context(), r.PathValue("name"))
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}
	h.base.WriteDetailPage(w, r, modulehandler.DetailPage{
		Kind:     page.KindEntity,
		Name:     entity.Name,
		Builtins: builtins(entity),
	})
}

func builtins(entity metadata.Entity) []compose.Builtin {
	return []compose.Builtin{
		modulehandler.OverviewBuiltin(overviewRender(entity)),
		modulehandler.DefinitionBuiltin(entity),
	}
}

func overviewRender(entity metadata.Entity) page.RenderFunc {
	return func(r *http.Request) (templ.Component, error) {
		loc := modulehandler.RequestLocalizer(r)
		props := []templates.Property{
			{Label: templates.T(loc, "field.value_type"), Value: entity.ValueType.String()},
			{Label: templates.T(loc, "field.join_key"), Value: entity.EffectiveJoinKey()},
			{Label: templates.T(loc, "field.description"), Value: templates.OrDash(entity.Description)},
			{Label: templates.T(loc, "field.owner"), Value: templates.OrDash(entity.Owner)},
			{Label: templates.T(loc, "field.created"), Value: templates.FormatTime(entity.CreatedTimestamp)},
			{Label: templates.T(loc, "field.updated"), Value: templates.FormatTime(entity.LastUpdatedTimestamp)},
		}
		return templates.Group(
			templates.Properties(props),
			templates.Labels(entity.Labels),
		), nil
	}
}
