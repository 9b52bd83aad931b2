package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yuvrajprajapati/gymshim/internal/web/module"
)

type stubModule struct {
	id     string
	prefix string
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount() (module.Mount, error) {
	return module.Mount{
		Prefix: m.prefix,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	}, nil
}

func TestComposeMountsExactAndSubtreePrefixes(t *testing.T) {
	t.Parallel()

	handler, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "exact", prefix: "/plans"},
		stubModule{id: "subtree", prefix: "/payment/"},
	}})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	for _, target := range []string{"/plans", "/payment/41", "/payment/2/confirm"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("GET %s = %d, want 204", target, rr.Code)
		}
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/plans/extra", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("exact prefix matched subtree path, status = %d", rr.Code)
	}
}

func TestComposeRejectsDuplicatePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "first", prefix: "/plans"},
		stubModule{id: "second", prefix: "/plans"},
	}})
	if err == nil {
		t.Fatal("expected duplicate prefix error")
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatal("expected nil module error")
	}
}

func TestComposeRejectsRelativePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "bad", prefix: "plans"},
	}})
	if err == nil {
		t.Fatal("expected invalid prefix error")
	}
}
