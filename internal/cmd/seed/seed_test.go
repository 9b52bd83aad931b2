package seed

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuvrajprajapati/gymshim/internal/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.DBPath != "data/gym.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/gym.db")
	}
	if cfg.WithTrainers {
		t.Fatalf("WithTrainers = %t, want false", cfg.WithTrainers)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("GYMSHIM_DB_PATH", "/tmp/other.db")

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-with-trainers"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "/tmp/other.db")
	}
	if !cfg.WithTrainers {
		t.Fatalf("WithTrainers = %t, want true", cfg.WithTrainers)
	}
}

func TestRunSeedsAndReports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := Config{
		DBPath:       filepath.Join(t.TempDir(), "gym.db"),
		WithTrainers: true,
	}

	var out bytes.Buffer
	if err := Run(ctx, cfg, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "plans created: 3") {
		t.Fatalf("output %q missing plan count", out.String())
	}
	if !strings.Contains(out.String(), "trainers created:") {
		t.Fatalf("output %q missing trainer count", out.String())
	}

	out.Reset()
	if err := Run(ctx, cfg, &out); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "plans created: 0") {
		t.Fatalf("second run output %q, want no new plans", out.String())
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	plans, err := store.ListPlans(ctx)
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("len(plans) = %d, want 3", len(plans))
	}
}
