package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
)

type fakeCatalog struct {
	plans    []gym.Plan
	trainers []gym.Trainer
	images   []gym.GalleryImage
}

func (f fakeCatalog) ListPlans(context.Context) ([]gym.Plan, error) {
	return f.plans, nil
}

func (f fakeCatalog) ListTrainers(context.Context, bool) ([]gym.Trainer, error) {
	return f.trainers, nil
}

func (f fakeCatalog) ListGalleryImages(context.Context, int) ([]gym.GalleryImage, error) {
	return f.images, nil
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(nil))
}

func TestHomeRendersCatalogHighlights(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(fakeCatalog{
		plans: []gym.Plan{
			{Name: "Premium", PriceMonth: decimal.NewFromInt(1999), Slug: "premium", IsPopular: true},
		},
		trainers: []gym.Trainer{{Name: "Meera", Specialization: "Yoga"}},
		images:   []gym.GalleryImage{{Title: "Weights floor", ImagePath: "gallery/weights.jpg"}},
	}))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	for _, marker := range []string{"Premium", "Meera", "Weights floor", `id="home"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestAboutAndProfilePages(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(nil))

	for _, path := range []string{"/about", "/profile"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want 200", path, rr.Code)
		}
	}
}

func TestUnknownPathRenders404Page(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(nil))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "error-404") {
		t.Fatalf("body missing error marker: %q", rr.Body.String())
	}
}
