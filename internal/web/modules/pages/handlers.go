package pages

import (
	"context"
	"log"
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/httpx"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/publichandler"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

const (
	homePlanCount    = 3
	homeTrainerCount = 4
	homeGalleryCount = 6
)

// Catalog reads the site content highlighted on the landing page.
type Catalog interface {
	ListPlans(ctx context.Context) ([]gym.Plan, error)
	ListTrainers(ctx context.Context, activeOnly bool) ([]gym.Trainer, error)
	ListGalleryImages(ctx context.Context, limit int) ([]gym.GalleryImage, error)
}

type handlers struct {
	publichandler.Base
	catalog Catalog
}

func newHandlers(catalog Catalog) handlers {
	return handlers{Base: publichandler.NewBase(), catalog: catalog}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	view := webtemplates.HomeView{
		Heading:      "Train harder. Recover smarter.",
		Tagline:      "Strength, cardio, and coaching under one roof.",
		JoinCTA:      webi18n.T(loc, "layout.nav_join"),
		PlansHeading: webi18n.T(loc, "title.plans"),
	}
	if h.catalog != nil {
		ctx := httpx.RequestContext(r)
		if plans, err := h.catalog.ListPlans(ctx); err != nil {
			log.Printf("home plans: %v", err)
		} else if len(plans) > homePlanCount {
			view.Plans = plans[:homePlanCount]
		} else {
			view.Plans = plans
		}
		if trainers, err := h.catalog.ListTrainers(ctx, true); err != nil {
			log.Printf("home trainers: %v", err)
		} else if len(trainers) > homeTrainerCount {
			view.Trainers = trainers[:homeTrainerCount]
		} else {
			view.Trainers = trainers
		}
		if images, err := h.catalog.ListGalleryImages(ctx, homeGalleryCount); err != nil {
			log.Printf("home gallery: %v", err)
		} else {
			view.Images = images
		}
	}
	h.WritePage(w, r, webi18n.T(loc, "title.home"), http.StatusOK, webtemplates.HomeFragment(view))
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.WritePage(w, r, webi18n.T(loc, "title.about"), http.StatusOK, webtemplates.StaticPageFragment(webtemplates.StaticPageView{
		Heading: webi18n.T(loc, "title.about"),
		Paragraphs: []string{
			"GYM-SHIM opened its doors with one goal: make serious training accessible to everyone.",
			"Our floor covers free weights, machines, functional training zones, and dedicated cardio space, backed by certified coaches.",
			"Members train on flexible monthly plans with no lock-in beyond the term they pick.",
		},
	}))
}

func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.WritePage(w, r, webi18n.T(loc, "title.profile"), http.StatusOK, webtemplates.StaticPageFragment(webtemplates.StaticPageView{
		Heading: webi18n.T(loc, "title.profile"),
		Paragraphs: []string{
			"Member profiles are managed at the front desk for now.",
			"Bring your admission receipt or payment reference and our staff will pull up your membership.",
		},
	}))
}
