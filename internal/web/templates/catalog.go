package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// PlansView models the membership plan catalog.
type PlansView struct {
	Heading string
	JoinCTA string
	Plans   []gym.Plan
}

// PlansFragment renders the plan catalog grid.
func PlansFragment(view PlansView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><div class="plan-grid" id="plans">`, templ.EscapeString(view.Heading)); err != nil {
			return err
		}
		for _, plan := range view.Plans {
			if err := writePlanCard(w, plan, view.JoinCTA); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func writePlanCard(w io.Writer, plan gym.Plan, joinCTA string) error {
	card := `<article class="plan-card" data-slug=%q>`
	if plan.IsPopular {
		card = `<article class="plan-card plan-popular" data-slug=%q>`
	}
	if _, err := fmt.Fprintf(w, card, templ.EscapeString(plan.Slug)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		`<h2>%s</h2><p class="price">&#8377;%s<span>/month</span></p><p class="price-annual">&#8377;%s/year</p><p class="perks">%s</p>`,
		templ.EscapeString(plan.Name),
		templ.EscapeString(plan.PriceMonth.StringFixed(2)),
		templ.EscapeString(plan.PriceAnnual.StringFixed(2)),
		templ.EscapeString(plan.Perks),
	); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w,
		`<a class="cta" href="%s?plan=%s">%s</a></article>`,
		routepath.Admission,
		templ.EscapeString(plan.Slug),
		templ.EscapeString(joinCTA),
	)
	return err
}

// TrainersView models the trainer roster page.
type TrainersView struct {
	Heading  string
	Trainers []gym.Trainer
}

// TrainersFragment renders the trainer roster.
func TrainersFragment(view TrainersView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><div class="trainer-grid" id="trainers">`, templ.EscapeString(view.Heading)); err != nil {
			return err
		}
		for _, trainer := range view.Trainers {
			if _, err := fmt.Fprintf(w, `<article class="trainer-card">`); err != nil {
				return err
			}
			if trainer.ImageURL != "" {
				if _, err := fmt.Fprintf(w, `<img src=%q alt=%q>`,
					templ.EscapeString(trainer.ImageURL),
					templ.EscapeString(trainer.Name),
				); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`<h2>%s</h2><p class="specialization">%s</p><p>%s</p></article>`,
				templ.EscapeString(trainer.Name),
				templ.EscapeString(trainer.Specialization),
				templ.EscapeString(trainer.BioShort),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// GalleryView models the photo gallery page.
type GalleryView struct {
	Heading string
	Images  []gym.GalleryImage
}

// GalleryFragment renders the photo gallery.
func GalleryFragment(view GalleryView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><div class="gallery-grid" id="gallery">`, templ.EscapeString(view.Heading)); err != nil {
			return err
		}
		for _, image := range view.Images {
			if _, err := fmt.Fprintf(w,
				`<figure><img src=%q alt=%q loading="lazy"><figcaption>%s</figcaption></figure>`,
				routepath.MediaPrefix+templ.EscapeString(image.ImagePath),
				templ.EscapeString(image.DisplayTitle()),
				templ.EscapeString(image.Title),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// HomeView models the landing page.
type HomeView struct {
	Heading      string
	Tagline      string
	JoinCTA      string
	PlansHeading string
	Plans        []gym.Plan
	Trainers     []gym.Trainer
	Images       []gym.GalleryImage
}

// HomeFragment renders the landing page hero and highlight sections.
func HomeFragment(view HomeView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="hero" id="home"><h1>%s</h1><p>%s</p><a class="cta" href="%s">%s</a></section>`,
			templ.EscapeString(view.Heading),
			templ.EscapeString(view.Tagline),
			routepath.Admission,
			templ.EscapeString(view.JoinCTA),
		); err != nil {
			return err
		}
		if len(view.Plans) > 0 {
			plans := PlansFragment(PlansView{Heading: view.PlansHeading, JoinCTA: view.JoinCTA, Plans: view.Plans})
			if err := plans.Render(ctx, w); err != nil {
				return err
			}
		}
		if len(view.Trainers) > 0 {
			trainers := TrainersFragment(TrainersView{Heading: "Trainers", Trainers: view.Trainers})
			if err := trainers.Render(ctx, w); err != nil {
				return err
			}
		}
		if len(view.Images) > 0 {
			gallery := GalleryFragment(GalleryView{Heading: "Gallery", Images: view.Images})
			if err := gallery.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
