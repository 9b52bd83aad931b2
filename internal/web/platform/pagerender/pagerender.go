// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	flashnotice "github.com/yuvrajprajapati/gymshim/internal/web/platform/flash"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/httpx"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders a full site page: layout chrome, one-time flash toast,
// and the page fragment as layout children.
func WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if body == nil {
		body = emptyComponent{}
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	toast := resolveFlashToast(w, r, loc)
	layout := webtemplates.Layout(title, lang, layoutCopy(loc), toast)

	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	var buf bytes.Buffer
	if err := layout.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func layoutCopy(loc *message.Printer) webtemplates.LayoutCopy {
	return webtemplates.LayoutCopy{
		SiteName:        webi18n.T(loc, "layout.site_name"),
		MetaDescription: webi18n.T(loc, "layout.meta_description"),
		NavHome:         webi18n.T(loc, "layout.nav_home"),
		NavAbout:        webi18n.T(loc, "layout.nav_about"),
		NavPlans:        webi18n.T(loc, "layout.nav_plans"),
		NavTrainers:     webi18n.T(loc, "layout.nav_trainers"),
		NavGallery:      webi18n.T(loc, "layout.nav_gallery"),
		NavContact:      webi18n.T(loc, "layout.nav_contact"),
		NavBMI:          webi18n.T(loc, "layout.nav_bmi"),
		NavJoin:         webi18n.T(loc, "layout.nav_join"),
	}
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc *message.Printer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	msg := strings.TrimSpace(webi18n.T(loc, notice.Key))
	if msg == "" {
		return nil
	}
	return &webtemplates.Toast{Kind: string(notice.Kind), Message: msg}
}
