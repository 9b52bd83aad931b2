package admin

import (
	"flag"
	"strings"
	"testing"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("GYMSHIM_ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("GYMSHIM_ADMIN_JWT_SECRET", "super-secret")
}

func TestParseConfigDefaults(t *testing.T) {
	setCredentials(t)

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8081")
	}
	if cfg.DBPath != "data/gym.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/gym.db")
	}
	if cfg.PasswordHash != "$2a$10$abcdefghijklmnopqrstuv" {
		t.Fatalf("PasswordHash = %q", cfg.PasswordHash)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Fatalf("JWTSecret = %q", cfg.JWTSecret)
	}
}

func TestParseConfigRequiresCredentials(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{name: "password hash", missing: "GYMSHIM_ADMIN_PASSWORD_HASH"},
		{name: "jwt secret", missing: "GYMSHIM_ADMIN_JWT_SECRET"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setCredentials(t)
			t.Setenv(tc.missing, "")

			fs := flag.NewFlagSet("admin", flag.ContinueOnError)
			_, err := ParseConfig(fs, nil)
			if err == nil {
				t.Fatal("ParseConfig() error = nil, want missing-credential error")
			}
			if !strings.Contains(err.Error(), tc.missing) {
				t.Fatalf("error %q does not name %q", err, tc.missing)
			}
		})
	}
}

func TestParseConfigOverrideHTTPAddr(t *testing.T) {
	setCredentials(t)

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9003"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9003" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9003")
	}
}
