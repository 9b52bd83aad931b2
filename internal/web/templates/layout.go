// Package templates renders site pages as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// Toast carries one flash notice for layout rendering.
type Toast struct {
	Kind    string
	Message string
}

// LayoutCopy holds the chrome strings resolved per request language.
type LayoutCopy struct {
	SiteName        string
	MetaDescription string
	NavHome         string
	NavAbout        string
	NavPlans        string
	NavTrainers     string
	NavGallery      string
	NavContact      string
	NavBMI          string
	NavJoin         string
}

type navLink struct {
	href  string
	label string
}

// Layout wraps a page fragment in the site chrome. The fragment is supplied
// through templ child rendering.
func Layout(title string, lang string, copy LayoutCopy, toast *Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageTitle := templ.EscapeString(title)
		if copy.SiteName != "" {
			pageTitle = templ.EscapeString(title + " | " + copy.SiteName)
		}
		if lang == "" {
			lang = "en"
		}
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang=%q><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<meta name="description" content=%q>`+
				`<title>%s</title>`+
				`<link rel="stylesheet" href="%s">`+
				`</head><body>`,
			templ.EscapeString(lang),
			templ.EscapeString(copy.MetaDescription),
			pageTitle,
			routepath.StaticPrefix+"site.css",
		); err != nil {
			return err
		}
		if err := writeNav(w, copy); err != nil {
			return err
		}
		if toast != nil && toast.Message != "" {
			kind := toast.Kind
			if kind == "" {
				kind = "info"
			}
			if _, err := fmt.Fprintf(w,
				`<div class="toast toast-%s" role="status">%s</div>`,
				templ.EscapeString(kind),
				templ.EscapeString(toast.Message),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main class="page">`); err != nil {
			return err
		}
		if children := templ.GetChildren(ctx); children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`</main><footer class="site-footer"><p>%s</p></footer></body></html>`,
			templ.EscapeString(copy.SiteName),
		)
		return err
	})
}

func writeNav(w io.Writer, copy LayoutCopy) error {
	links := []navLink{
		{routepath.Root, copy.NavHome},
		{routepath.About, copy.NavAbout},
		{routepath.Plans, copy.NavPlans},
		{routepath.Trainers, copy.NavTrainers},
		{routepath.Gallery, copy.NavGallery},
		{routepath.BMIBMR, copy.NavBMI},
		{routepath.Contact, copy.NavContact},
	}
	if _, err := fmt.Fprintf(w,
		`<header class="site-header"><a class="brand" href="%s">%s</a><nav>`,
		routepath.Root,
		templ.EscapeString(copy.SiteName),
	); err != nil {
		return err
	}
	for _, link := range links {
		if link.label == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>`, link.href, templ.EscapeString(link.label)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		`<a class="cta" href="%s">%s</a></nav></header>`,
		routepath.Admission,
		templ.EscapeString(copy.NavJoin),
	)
	return err
}
