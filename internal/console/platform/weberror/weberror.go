// Package weberror renders shared app-shell error responses for console
// modules.
package weberror

import (
	"errors"
	"net/http"

	"github.com/featstore/console/internal/console/metadata"
	"github.com/featstore/console/internal/console/platform/pagerender"
	"github.com/featstore/console/internal/console/templates"

	consolei18n "github.com/featstore/console/internal/console/i18n"
)

// HTTPStatus maps a handler error to a response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, metadata.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders the localized error page for the status code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if statusCode != http.StatusNotFound && statusCode < http.StatusInternalServerError {
		statusCode = http.StatusInternalServerError
	}

	loc, _ := consolei18n.ResolveLocalizer(w, r)
	page := pagerender.ConsolePage{
		Title:      templates.ErrorTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, loc),
	}
	if err := pagerender.WriteConsolePage(w, r, page); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteNotFound renders the localized not-found page.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusNotFound)
}

// WriteHandlerError maps err to a status and renders the error page.
func WriteHandlerError(w http.ResponseWriter, r *http.Request, err error) {
	WriteError(w, r, HTTPStatus(err))
}
