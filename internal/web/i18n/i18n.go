// Package i18n provides locale resolution and message printing for the web site.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "gs_lang"
)

var supported = []language.Tag{language.English}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return supported
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request. The bool
// reports whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if param := strings.TrimSpace(r.URL.Query().Get(LangParam)); param != "" {
		if tag, err := language.Parse(param); err == nil {
			matched, _, _ := matcher.Match(tag)
			return matched, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil && cookie != nil {
		if tag, err := language.Parse(cookie.Value); err == nil {
			matched, _, _ := matcher.Match(tag)
			return matched, false
		}
	}
	accepted, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err == nil && len(accepted) > 0 {
		matched, _, _ := matcher.Match(accepted...)
		return matched, false
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request printer and language, persisting an
// explicit lang selection as a cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// T prints a localized message, falling back to the key itself when no
// translation is registered.
func T(loc *message.Printer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	value := strings.TrimSpace(loc.Sprintf(key, args...))
	if value == "" {
		return key
	}
	return value
}
