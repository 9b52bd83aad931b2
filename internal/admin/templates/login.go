package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
)

// LoginPage renders the standalone operator login form.
func LoginPage(errMsg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<title>Sign in - GYM-SHIM Admin</title>`+
				`<link rel="stylesheet" href="%sadmin.css"></head>`+
				`<body class="login-body"><main class="login-card"><h1>GYM-SHIM Admin</h1>`,
			routepath.StaticPrefix,
		); err != nil {
			return err
		}
		if errMsg != "" {
			if _, err := fmt.Fprintf(w, `<p class="error" id="login-error">%s</p>`, templ.EscapeString(errMsg)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="%s">`+
				`<label for="password">Password</label>`+
				`<input id="password" name="password" type="password" autofocus>`+
				`<button type="submit">Sign in</button></form></main></body></html>`,
			routepath.Login,
		)
		return err
	})
}
