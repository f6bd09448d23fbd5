package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/featstore/console/pkg/page"
)

// TabBar renders a composed tab strip for an object detail page.
func TabBar(tabs []page.Tab) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(tabs) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, "<nav class=\"tabs\">\n"); err != nil {
			return err
		}
		for _, tab := range tabs {
			class := "tab"
			current := ""
			if tab.Selected {
				class = "tab selected"
				current = " aria-current=\"page\""
			}
			line := "<a class=\"" + class + "\" href=\"" + templ.EscapeString(tab.Href) + "\"" + current + ">" + templ.EscapeString(tab.Label) + "</a>\n"
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</nav>\n"); err != nil {
			return err
		}
		return nil
	})
}

// DetailHeading renders the object name above the tab strip.
func DetailHeading(kindLabel, name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<header class=\"detail-heading\">\n<p class=\"kind\">"+templ.EscapeString(kindLabel)+"</p>\n<h1>"+templ.EscapeString(name)+"</h1>\n</header>\n"); err != nil {
			return err
		}
		return nil
	})
}
