package admin

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
)

// sessionCookieName is the operator session cookie set after login.
const sessionCookieName = "gs_admin"

// defaultSessionTTL bounds how long an operator session stays valid.
const defaultSessionTTL = 12 * time.Hour

// sessionSubject identifies the single back-office operator account.
const sessionSubject = "admin"

var errInvalidSession = errors.New("invalid admin session")

// AuthConfig holds credentials for the single-operator login.
//
// The back office has no user table: one bcrypt hash from configuration
// guards the whole plane, and sessions are stateless HS256 tokens.
type AuthConfig struct {
	PasswordHash string
	JWTSecret    []byte
	SessionTTL   time.Duration
}

func (c AuthConfig) sessionTTL() time.Duration {
	if c.SessionTTL <= 0 {
		return defaultSessionTTL
	}
	return c.SessionTTL
}

// checkPassword compares the submitted password to the configured hash.
func (c AuthConfig) checkPassword(password string) bool {
	if strings.TrimSpace(c.PasswordHash) == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

// issueSession creates a signed session token expiring after the TTL.
func (c AuthConfig) issueSession(now time.Time) (string, error) {
	if len(c.JWTSecret) == 0 {
		return "", errors.New("jwt secret is required")
	}
	claims := jwt.RegisteredClaims{
		Subject:   sessionSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.sessionTTL())),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.JWTSecret)
}

// verifySession validates a session token's signature and expiry.
func (c AuthConfig) verifySession(token string) error {
	if strings.TrimSpace(token) == "" {
		return errInvalidSession
	}
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidSession
		}
		return c.JWTSecret, nil
	})
	if err != nil || !parsed.Valid {
		return errInvalidSession
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != sessionSubject {
		return errInvalidSession
	}
	return nil
}

// requireAuth wraps next with session-cookie authentication.
//
// Only static assets and the login handoff bypass the check.
func requireAuth(next http.Handler, auth AuthConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || auth.verifySession(cookie.Value) != nil {
			http.Redirect(w, r, routepath.Login, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path string) bool {
	return path == routepath.Login || strings.HasPrefix(path, routepath.StaticPrefix)
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r != nil && r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl / time.Second),
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r != nil && r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
