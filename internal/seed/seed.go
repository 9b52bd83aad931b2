// Package seed creates the default catalog records a fresh install needs.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
)

// DefaultPlans returns the stock membership tiers.
func DefaultPlans() []gym.Plan {
	return []gym.Plan{
		{
			Name:         "Basic",
			Slug:         "basic",
			PriceMonth:   decimal.NewFromInt(999),
			PriceAnnual:  decimal.NewFromInt(9590),
			DurationDays: 30,
			Perks:        "Gym floor access\nLocker room\nOne fitness assessment",
		},
		{
			Name:         "Premium",
			Slug:         "premium",
			PriceMonth:   decimal.NewFromInt(1999),
			PriceAnnual:  decimal.NewFromInt(19180),
			DurationDays: 30,
			Perks:        "Everything in Basic\nGroup classes\nQuarterly trainer check-in",
			IsPopular:    true,
		},
		{
			Name:         "Elite",
			Slug:         "elite",
			PriceMonth:   decimal.NewFromInt(2999),
			PriceAnnual:  decimal.NewFromInt(28770),
			DurationDays: 30,
			Perks:        "Everything in Premium\nPersonal training sessions\nDiet consultation",
		},
	}
}

// DemoTrainers returns sample coaches for demo installs.
func DemoTrainers() []gym.Trainer {
	return []gym.Trainer{
		{
			Name:           "Meera Shah",
			Specialization: "Strength & conditioning",
			BioShort:       "Powerlifting coach with a decade on the platform.",
			DisplayOrder:   1,
			IsActive:       true,
		},
		{
			Name:           "Vikram Nair",
			Specialization: "Functional fitness",
			BioShort:       "Keeps beginners moving safely and regulars progressing.",
			DisplayOrder:   2,
			IsActive:       true,
		},
	}
}

// Plans creates any default plan that does not exist yet, keyed by slug.
// It returns how many plans were created.
func Plans(ctx context.Context, store storage.PlanStore) (int, error) {
	created := 0
	for _, plan := range DefaultPlans() {
		_, err := store.GetPlanBySlug(ctx, plan.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return created, fmt.Errorf("look up plan %q: %w", plan.Slug, err)
		}
		if _, err := store.CreatePlan(ctx, plan); err != nil {
			// Lost a race with a concurrent seeder.
			if errors.Is(err, storage.ErrAlreadyExists) {
				continue
			}
			return created, fmt.Errorf("create plan %q: %w", plan.Slug, err)
		}
		created++
	}
	return created, nil
}

// Trainers creates the demo coaches when the roster is empty. It returns
// how many trainers were created.
func Trainers(ctx context.Context, store storage.TrainerStore) (int, error) {
	existing, err := store.ListTrainers(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("list trainers: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	created := 0
	for _, trainer := range DemoTrainers() {
		if _, err := store.CreateTrainer(ctx, trainer); err != nil {
			return created, fmt.Errorf("create trainer %q: %w", trainer.Name, err)
		}
		created++
	}
	return created, nil
}
