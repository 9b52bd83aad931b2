package admin

import (
	"path/filepath"
	"testing"

	"github.com/yuvrajprajapati/gymshim/internal/storage/media"
	"github.com/yuvrajprajapati/gymshim/internal/storage/sqlite"
)

func TestNewServerValidatesConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := sqlite.Open(filepath.Join(dir, "gym.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	mediaStore, err := media.NewStore(filepath.Join(dir, "media"))
	if err != nil {
		t.Fatalf("open media store: %v", err)
	}

	valid := Config{
		HTTPAddr: "127.0.0.1:0",
		Store:    store,
		Media:    mediaStore,
		Auth:     testAuthConfig(t),
	}
	if _, err := NewServer(valid); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing addr", mutate: func(c *Config) { c.HTTPAddr = " " }},
		{name: "missing store", mutate: func(c *Config) { c.Store = nil }},
		{name: "missing media", mutate: func(c *Config) { c.Media = nil }},
		{name: "missing password hash", mutate: func(c *Config) { c.Auth.PasswordHash = "" }},
		{name: "missing jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = nil }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tc.mutate(&cfg)
			if _, err := NewServer(cfg); err == nil {
				t.Fatal("expected config error")
			}
		})
	}
}
