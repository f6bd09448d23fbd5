package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/featstore/console/internal/console/compose"
	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/templates"
	"github.com/featstore/console/pkg/page"
)

// OverviewBuiltin declares the index tab every detail page carries.
func OverviewBuiltin(render page.RenderFunc) compose.Builtin {
	return compose.Builtin{
		Label:  page.LabelOverview,
		Target: page.TargetOverview,
		Match:  page.MatchExact,
		Route:  page.Route{Pattern: page.TargetOverview, Render: render},
	}
}

// StatisticsBuiltin declares the flag-gated statistics tab. Statistics
// computation lives outside the console, so the tab renders a placeholder
// until the registry publishes stats.
func StatisticsBuiltin() compose.Builtin {
	return compose.Builtin{
		Label:  page.LabelStatistics,
		Target: page.TargetStatistics,
		Match:  page.MatchPrefix,
		Gate:   func(flags compose.Flags) bool { return flags.FeatureStatistics },
		Route: page.Route{
			Pattern: page.TargetStatistics,
			Render: func(r *http.Request) (templ.Component, error) {
				loc := RequestLocalizer(r)
				return templates.EmptyState(templates.T(loc, "detail.statistics_empty")), nil
			},
		},
	}
}

// DefinitionBuiltin declares the tab exporting the object's registry
// definition as YAML.
func DefinitionBuiltin(object any) compose.Builtin {
	return compose.Builtin{
		Label:  page.LabelDefinition,
		Target: page.TargetDefinition,
		Match:  page.MatchExact,
		Route: page.Route{
			Pattern: page.TargetDefinition,
			Render: func(r *http.Request) (templ.Component, error) {
				body, err := metadata.ToYAML(object)
				if err != nil {
					return nil, err
				}
				loc := RequestLocalizer(r)
				return templates.Definition(templates.T(loc, "detail.definition_hint"), body), nil
			},
		},
	}
}
