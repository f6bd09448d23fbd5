package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/featstore/console/internal/console/routepath"
	"github.com/featstore/console/internal/platform/branding"
	"github.com/featstore/console/pkg/page"
)

// Page carries chrome-level data shared by every console page.
type Page struct {
	Title       string
	Lang        string
	ProjectName string
	Loc         Localizer
}

var sectionKeys = map[page.Kind]string{
	page.KindFeatureView:    "section.feature-views",
	page.KindFeatureService: "section.feature-services",
	page.KindEntity:         "section.entities",
	page.KindDataset:        "section.datasets",
	page.KindDataSource:     "section.data-sources",
}

// SectionTitle returns the localized section name for a page kind.
func SectionTitle(kind page.Kind, loc Localizer) string {
	return T(loc, sectionKeys[kind])
}

// AppLayout renders the console shell around the children component.
func AppLayout(p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if children == nil {
			children = templ.NopComponent
		}

		lang := p.Lang
		if lang == "" {
			lang = "en-US"
		}
		title := branding.AppName
		if p.Title != "" {
			title = p.Title + " - " + branding.AppName
		}

		if _, err := io.WriteString(w, "<!doctype html>\n<html lang=\""+templ.EscapeString(lang)+"\">\n<head>\n"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<title>"+templ.EscapeString(title)+"</title>\n"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<link rel=\"stylesheet\" href=\""+routepath.StaticPrefix+"console.css\">\n</head>\n<body>\n"); err != nil {
			return err
		}
		if err := header(p).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<main class=\"content\">\n"); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</main>\n</body>\n</html>\n"); err != nil {
			return err
		}
		return nil
	})
}

func header(p Page) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<header class=\"topbar\">\n<a class=\"brand\" href=\""+routepath.Root+"\">"+templ.EscapeString(branding.AppName)+"</a>\n"); err != nil {
			return err
		}
		if p.ProjectName != "" {
			if _, err := io.WriteString(w, "<span class=\"project\">"+templ.EscapeString(T(p.Loc, "chrome.project"))+": "+templ.EscapeString(p.ProjectName)+"</span>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "<nav class=\"sections\">\n"); err != nil {
			return err
		}
		for _, kind := range page.Kinds() {
			label := SectionTitle(kind, p.Loc)
			href := routepath.SectionPrefix(kind)
			if _, err := io.WriteString(w, "<a href=\""+templ.EscapeString(href)+"\">"+templ.EscapeString(label)+"</a>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</nav>\n</header>\n"); err != nil {
			return err
		}
		return nil
	})
}
