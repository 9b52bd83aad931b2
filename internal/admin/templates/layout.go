// Package templates renders the admin back-office HTML.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
)

type navItem struct {
	label string
	path  string
}

var navItems = []navItem{
	{label: "Dashboard", path: routepath.Root},
	{label: "Plans", path: routepath.Plans},
	{label: "Trainers", path: routepath.Trainers},
	{label: "Admissions", path: routepath.Admissions},
	{label: "Payments", path: routepath.Payments},
	{label: "Gallery", path: routepath.Gallery},
}

// Layout wraps body in the admin shell with navigation.
func Layout(title, active string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s - GYM-SHIM Admin</title>`+
				`<link rel="stylesheet" href="%sadmin.css"></head><body>`+
				`<header class="admin-header"><span class="brand">GYM-SHIM Admin</span><nav>`,
			templ.EscapeString(title),
			routepath.StaticPrefix,
		); err != nil {
			return err
		}
		for _, item := range navItems {
			class := ""
			if item.path == active {
				class = ` class="active"`
			}
			if _, err := fmt.Fprintf(w, `<a href="%s"%s>%s</a>`, item.path, class, item.label); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`</nav><form method="post" action="%s"><button type="submit" class="logout">Log out</button></form></header><main class="admin-page">`,
			routepath.Logout,
		); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// writeMessage renders a one-line status banner when msg is not empty.
func writeMessage(w io.Writer, msg string) error {
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="message">%s</p>`, templ.EscapeString(msg))
	return err
}
