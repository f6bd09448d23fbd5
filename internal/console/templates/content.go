package templates

import (
	"context"
	"io"
	"sort"
	"strconv"

	"github.com/a-h/templ"
)

// Cell is one table cell, rendered as a link when Href is set.
type Cell struct {
	Text string
	Href string
}

// LinkCell returns a cell that renders as an anchor.
func LinkCell(text, href string) Cell {
	return Cell{Text: text, Href: href}
}

// TextCell returns a plain text cell.
func TextCell(text string) Cell {
	return Cell{Text: text}
}

// Table renders an object listing table.
func Table(headers []string, rows [][]Cell) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<table class=\"objects\">\n<thead>\n<tr>\n"); err != nil {
			return err
		}
		for _, h := range headers {
			if _, err := io.WriteString(w, "<th>"+templ.EscapeString(h)+"</th>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tr>\n</thead>\n<tbody>\n"); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := io.WriteString(w, "<tr>\n"); err != nil {
				return err
			}
			for _, cell := range row {
				var td string
				if cell.Href != "" {
					td = "<td><a href=\"" + templ.EscapeString(cell.Href) + "\">" + templ.EscapeString(cell.Text) + "</a></td>\n"
				} else {
					td = "<td>" + templ.EscapeString(cell.Text) + "</td>\n"
				}
				if _, err := io.WriteString(w, td); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tbody>\n</table>\n"); err != nil {
			return err
		}
		return nil
	})
}

// Property is one label/value pair on an overview panel.
type Property struct {
	Label string
	Value string
}

// Properties renders a definition list of object properties.
func Properties(props []Property) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<dl class=\"properties\">\n"); err != nil {
			return err
		}
		for _, p := range props {
			if _, err := io.WriteString(w, "<dt>"+templ.EscapeString(p.Label)+"</dt>\n<dd>"+templ.EscapeString(p.Value)+"</dd>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</dl>\n"); err != nil {
			return err
		}
		return nil
	})
}

// Labels renders object labels as sorted badges.
func Labels(labels map[string]string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(labels) == 0 {
			return nil
		}
		keys := make([]string, 0, len(labels))
		for k := range labels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if _, err := io.WriteString(w, "<ul class=\"labels\">\n"); err != nil {
			return err
		}
		for _, k := range keys {
			if _, err := io.WriteString(w, "<li>"+templ.EscapeString(k)+"="+templ.EscapeString(labels[k])+"</li>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>\n"); err != nil {
			return err
		}
		return nil
	})
}

// Definition renders a serialized object definition in a code block.
func Definition(hint, body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if hint != "" {
			if _, err := io.WriteString(w, "<p class=\"hint\">"+templ.EscapeString(hint)+"</p>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "<pre class=\"definition\"><code>"+templ.EscapeString(body)+"</code></pre>\n"); err != nil {
			return err
		}
		return nil
	})
}

// EmptyState renders a placeholder message for tabs with no content.
func EmptyState(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p class=\"empty\">"+templ.EscapeString(text)+"</p>\n")
		return err
	})
}

// SectionCard summarizes one object section on the home page.
type SectionCard struct {
	Title string
	Href  string
	Count int
}

// SectionCards renders the per-section summary grid.
func SectionCards(cards []SectionCard) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<ul class=\"sections-grid\">\n"); err != nil {
			return err
		}
		for _, card := range cards {
			if _, err := io.WriteString(w, "<li>\n<a href=\""+templ.EscapeString(card.Href)+"\">"+templ.EscapeString(card.Title)+"</a>\n<span class=\"count\">"+strconv.Itoa(card.Count)+"</span>\n</li>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>\n"); err != nil {
			return err
		}
		return nil
	})
}

// PageHeading renders a top-level page title with optional description.
func PageHeading(title, description string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>"+templ.EscapeString(title)+"</h1>\n"); err != nil {
			return err
		}
		if description != "" {
			if _, err := io.WriteString(w, "<p class=\"description\">"+templ.EscapeString(description)+"</p>\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

// Group stacks components in order, for assembling tab bodies.
func Group(parts ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, part := range parts {
			if part == nil {
				continue
			}
			if err := part.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
