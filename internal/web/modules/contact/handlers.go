package contact

import (
	"net/http"
	"net/mail"
	"strings"

	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/flash"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/httpx"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/publichandler"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

type handlers struct {
	publichandler.Base
}

func newHandlers() handlers {
	return handlers{Base: publichandler.NewBase()}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.WritePage(w, r, webi18n.T(loc, "title.contact"), http.StatusOK, webtemplates.ContactFragment(webtemplates.ContactView{
		Heading: webi18n.T(loc, "title.contact"),
	}))
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	view := webtemplates.ContactView{
		Heading: webi18n.T(loc, "title.contact"),
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Message: strings.TrimSpace(r.FormValue("message")),
		Errors:  map[string]string{},
	}

	if view.Name == "" {
		view.Errors["name"] = "Name is required."
	}
	if _, err := mail.ParseAddress(view.Email); err != nil || view.Email == "" {
		view.Errors["email"] = "Enter a valid email address."
	}
	if view.Message == "" {
		view.Errors["message"] = "Message is required."
	}
	if len(view.Errors) > 0 {
		h.WritePage(w, r, view.Heading, http.StatusBadRequest, webtemplates.ContactFragment(view))
		return
	}

	flash.Write(w, r, flash.NoticeSuccess("flash.contact_received"))
	httpx.WriteRedirect(w, r, routepath.Contact)
}
