package home

import (
	"context"
	"net/http"

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

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	counts, err := objectCounts(r.Context(), h.base.Gateway())
	if err != nil {
		h.base.WriteError(w, r, err)
		return
	}

	loc, _ := h.base.PageLocalizer(w, r)
	title := templates.T(loc, "home.title")
	cards := make([]templates.SectionCard, 0, len(page.Kinds()))
	for _, kind := range page.Kinds() {
		cards = append(cards, templates.SectionCard{
			Title: templates.SectionTitle(kind, loc),
			Href:  routepath.SectionPrefix(kind),
			Count: counts[kind],
		})
	}

	h.base.WritePage(w, r, title, templates.Group(
		templates.PageHeading(title, templates.T(loc, "home.objects")),
		templates.SectionCards(cards),
	))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.base.WriteNotFound(w, r)
}

func objectCounts(ctx context.Context, gateway metadata.Gateway) (map[page.Kind]int, error) {
	views, err := gateway.ListFeatureViews(ctx)
	if err != nil {
		return nil, err
	}
	services, err := gateway.ListFeatureServices(ctx)
	if err != nil {
		return nil, err
	}
	entities, err := gateway.ListEntities(ctx)
	if err != nil {
		return nil, err
	}
	datasets, err := gateway.ListSavedDatasets(ctx)
	if err != nil {
		return nil, err
	}
	sources, err := gateway.ListDataSources(ctx)
	if err != nil {
		return nil, err
	}
	return map[page.Kind]int{
		page.KindFeatureView:    len(views),
		page.KindFeatureService: len(services),
		page.KindEntity:         len(entities),
		page.KindDataset:        len(datasets),
		page.KindDataSource:     len(sources),
	}, nil
}
