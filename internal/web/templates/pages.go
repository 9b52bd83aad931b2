package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// StaticPageView models a copy-only page.
type StaticPageView struct {
	Heading    string
	Paragraphs []string
}

// StaticPageFragment renders a heading and copy paragraphs.
func StaticPageFragment(view StaticPageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(view.Heading)); err != nil {
			return err
		}
		for _, paragraph := range view.Paragraphs {
			if _, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(paragraph)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ErrorView models an error page.
type ErrorView struct {
	StatusCode int
	Heading    string
	Message    string
}

// ErrorFragment renders a status error page body.
func ErrorFragment(view ErrorView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="error-state" id="error-%d"><h1>%s</h1><p>%s</p></section>`,
			view.StatusCode,
			templ.EscapeString(view.Heading),
			templ.EscapeString(view.Message),
		)
		return err
	})
}

// ContactView models the contact form page.
type ContactView struct {
	Heading string
	Name    string
	Email   string
	Message string
	Errors  map[string]string
}

// ContactFragment renders the contact form with any field errors.
func ContactFragment(view ContactView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>%s</h1><form class="contact-form" id="contact" method="post" action="/contact">`,
			templ.EscapeString(view.Heading),
		); err != nil {
			return err
		}
		if err := writeTextField(w, "name", "Name", view.Name, view.Errors["name"]); err != nil {
			return err
		}
		if err := writeTextField(w, "email", "Email", view.Email, view.Errors["email"]); err != nil {
			return err
		}
		if err := writeTextArea(w, "message", "Message", view.Message, view.Errors["message"]); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<button type="submit">Send</button></form>`)
		return err
	})
}

func writeTextField(w io.Writer, name, label, value, fieldError string) error {
	if _, err := fmt.Fprintf(w,
		`<label for=%q>%s</label><input id=%q name=%q value=%q>`,
		name,
		templ.EscapeString(label),
		name,
		name,
		templ.EscapeString(value),
	); err != nil {
		return err
	}
	return writeFieldError(w, name, fieldError)
}

func writeTextArea(w io.Writer, name, label, value, fieldError string) error {
	if _, err := fmt.Fprintf(w,
		`<label for=%q>%s</label><textarea id=%q name=%q>%s</textarea>`,
		name,
		templ.EscapeString(label),
		name,
		name,
		templ.EscapeString(value),
	); err != nil {
		return err
	}
	return writeFieldError(w, name, fieldError)
}

func writeFieldError(w io.Writer, name, fieldError string) error {
	if fieldError == "" {
		return nil
	}
	_, err := fmt.Fprintf(w,
		`<p class="field-error" data-field=%q>%s</p>`,
		name,
		templ.EscapeString(fieldError),
	)
	return err
}
