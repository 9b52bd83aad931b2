// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	apperrors "github.com/yuvrajprajapati/gymshim/internal/web/platform/errors"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/pagerender"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

// Base provides shared error handling and page rendering for site modules.
// Embed this in handler structs to get WritePage, WriteNotFound, and
// WriteError for free.
type Base struct{}

// NewBase builds a handler base.
func NewBase() Base {
	return Base{}
}

// WritePage renders a full site page using the shared layout.
func (Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	if err := pagerender.WritePage(w, r, title, statusCode, body); err != nil {
		log.Printf("render page %q: %v", title, err)
	}
}

// WriteNotFound renders a localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	b.WritePage(w, r, webi18n.T(loc, "title.not_found"), http.StatusNotFound, webtemplates.ErrorFragment(webtemplates.ErrorView{
		StatusCode: http.StatusNotFound,
		Heading:    webi18n.T(loc, "title.not_found"),
		Message:    webi18n.T(loc, "error.not_found"),
	}))
}

// WriteError renders a user-safe error page for not-found and server errors,
// plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	switch statusCode {
	case http.StatusNotFound:
		b.WriteNotFound(w, r)
	case http.StatusInternalServerError, http.StatusServiceUnavailable:
		log.Printf("request failed path=%s err=%v", requestPath(r), err)
		loc, _ := webi18n.ResolveLocalizer(w, r)
		b.WritePage(w, r, webi18n.T(loc, "error.internal"), statusCode, webtemplates.ErrorFragment(webtemplates.ErrorView{
			StatusCode: statusCode,
			Heading:    http.StatusText(statusCode),
			Message:    webi18n.T(loc, "error.internal"),
		}))
	default:
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
