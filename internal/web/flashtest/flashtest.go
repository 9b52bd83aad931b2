// Package flashtest provides test assertions for flash notice cookies.
package flashtest

import (
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/yuvrajprajapati/gymshim/internal/web/platform/flash"
)

// RequireNotice fails the test unless the recorded response carries a flash
// notice cookie with the given kind and localization key.
func RequireNotice(t *testing.T, rr *httptest.ResponseRecorder, kind, key string) {
	t.Helper()

	notice, ok := readNotice(t, rr)
	if !ok {
		t.Fatalf("response carries no flash notice, want %s/%s", kind, key)
	}
	if string(notice.Kind) != kind || notice.Key != key {
		t.Fatalf("flash notice = %s/%s, want %s/%s", notice.Kind, notice.Key, kind, key)
	}
}

// RequireNoNotice fails the test if the recorded response sets a flash notice.
func RequireNoNotice(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()

	if notice, ok := readNotice(t, rr); ok {
		t.Fatalf("unexpected flash notice %s/%s", notice.Kind, notice.Key)
	}
}

func readNotice(t *testing.T, rr *httptest.ResponseRecorder) (flash.Notice, bool) {
	t.Helper()

	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name != flash.CookieName || cookie.MaxAge < 0 || cookie.Value == "" {
			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
		if err != nil {
			t.Fatalf("decode flash cookie: %v", err)
		}
		var notice flash.Notice
		if err := json.Unmarshal(decoded, &notice); err != nil {
			t.Fatalf("unmarshal flash notice: %v", err)
		}
		return notice, true
	}
	return flash.Notice{}, false
}
