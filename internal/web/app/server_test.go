package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage/media"
	"github.com/yuvrajprajapati/gymshim/internal/storage/sqlite"
	"github.com/yuvrajprajapati/gymshim/internal/upi"
)

func testConfig(t *testing.T) Config {
	t.Helper()

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

	return Config{
		HTTPAddr: "127.0.0.1:0",
		Store:    store,
		Media:    mediaStore,
		Payee:    upi.Payee{Address: "gymshim@okhdfcbank", Name: "GYM-SHIM"},
	}
}

func TestBuildRootHandlerServesSite(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	if _, err := cfg.Store.CreatePlan(context.Background(), gym.Plan{
		Name:        "Basic",
		Slug:        "basic",
		PriceMonth:  decimal.NewFromInt(999),
		PriceAnnual: decimal.NewFromInt(9590),
	}); err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	handler, err := BuildRootHandler(cfg)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	tests := []struct {
		target string
		status int
		marker string
	}{
		{target: "/", status: http.StatusOK, marker: "GYM-SHIM"},
		{target: "/plans", status: http.StatusOK, marker: "Basic"},
		{target: "/bmi_bmr", status: http.StatusOK, marker: "form"},
		{target: "/admission", status: http.StatusOK, marker: "admission"},
		{target: "/contact", status: http.StatusOK, marker: "contact"},
		{target: "/static/site.css", status: http.StatusOK, marker: "toast"},
		{target: "/no-such-page", status: http.StatusNotFound, marker: "error-404"},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.target, nil))
		if rr.Code != tc.status {
			t.Fatalf("GET %s = %d, want %d", tc.target, rr.Code, tc.status)
		}
		if !strings.Contains(rr.Body.String(), tc.marker) {
			t.Fatalf("GET %s missing %q", tc.target, tc.marker)
		}
	}
}

func TestBuildRootHandlerRequiresStore(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Store = nil
	if _, err := BuildRootHandler(cfg); err == nil {
		t.Fatal("expected store error")
	}
}

func TestNewServerRequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.HTTPAddr = " "
	if _, err := NewServer(cfg); err == nil {
		t.Fatal("expected address error")
	}
}
