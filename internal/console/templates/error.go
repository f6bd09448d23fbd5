package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorTitle returns the localized title for an error page.
func ErrorTitle(status int, loc Localizer) string {
	switch status {
	case http.StatusNotFound:
		return T(loc, "error.title_not_found")
	default:
		return T(loc, "error.title_server_error")
	}
}

// ErrorState renders the body of an error page.
func ErrorState(status int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var body string
		switch status {
		case http.StatusNotFound:
			body = T(loc, "error.message_not_found")
		default:
			body = T(loc, "error.message_server_error")
		}
		if _, err := io.WriteString(w, "<section class=\"error-state\">\n<h1>"+templ.EscapeString(ErrorTitle(status, loc))+"</h1>\n<p>"+templ.EscapeString(body)+"</p>\n<p><a href=\"/\">"+templ.EscapeString(T(loc, "error.back_home"))+"</a></p>\n</section>\n"); err != nil {
			return err
		}
		return nil
	})
}
