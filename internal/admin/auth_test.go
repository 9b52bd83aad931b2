package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig(t *testing.T) AuthConfig {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return AuthConfig{
		PasswordHash: string(hash),
		JWTSecret:    []byte("test-secret"),
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	auth := testAuthConfig(t)
	if !auth.checkPassword("open-sesame") {
		t.Fatal("correct password rejected")
	}
	if auth.checkPassword("wrong") {
		t.Fatal("wrong password accepted")
	}
	if (AuthConfig{}).checkPassword("anything") {
		t.Fatal("empty hash accepted a password")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	auth := testAuthConfig(t)
	token, err := auth.issueSession(time.Now())
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	if err := auth.verifySession(token); err != nil {
		t.Fatalf("verify session: %v", err)
	}

	other := auth
	other.JWTSecret = []byte("different-secret")
	if err := other.verifySession(token); err == nil {
		t.Fatal("token verified with wrong secret")
	}
	if err := auth.verifySession(token + "x"); err == nil {
		t.Fatal("tampered token verified")
	}
	if err := auth.verifySession(""); err == nil {
		t.Fatal("empty token verified")
	}
}

func TestSessionExpires(t *testing.T) {
	t.Parallel()

	auth := testAuthConfig(t)
	auth.SessionTTL = time.Minute
	token, err := auth.issueSession(time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	if err := auth.verifySession(token); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	t.Parallel()

	auth := testAuthConfig(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := requireAuth(next, auth)

	rr := httptest.NewRecorder()
	guarded.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/plans", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirect = %q, want /login", loc)
	}

	for _, exempt := range []string{"/login", "/static/admin.css"} {
		rr := httptest.NewRecorder()
		guarded.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, exempt, nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("GET %s = %d, want passthrough 204", exempt, rr.Code)
		}
	}

	token, err := auth.issueSession(time.Now())
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	authed := httptest.NewRecorder()
	guarded.ServeHTTP(authed, req)
	if authed.Code != http.StatusNoContent {
		t.Fatalf("authenticated status = %d, want 204", authed.Code)
	}
}
