package templates

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}

func writeFormInput(w io.Writer, name, label, value string) error {
	_, err := fmt.Fprintf(w,
		`<label for=%q>%s</label><input id=%q name=%q value=%q>`,
		name,
		templ.EscapeString(label),
		name,
		name,
		templ.EscapeString(value),
	)
	return err
}

func writeFormTextArea(w io.Writer, name, label, value string) error {
	_, err := fmt.Fprintf(w,
		`<label for=%q>%s</label><textarea id=%q name=%q rows="4">%s</textarea>`,
		name,
		templ.EscapeString(label),
		name,
		name,
		templ.EscapeString(value),
	)
	return err
}
