package gym

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// maxSlugBase caps the slugified name before a collision counter is appended.
const maxSlugBase = 70

// ErrEmptyPlanName indicates a missing plan name.
var ErrEmptyPlanName = errors.New("plan name is required")

// Plan is a purchasable membership tier.
type Plan struct {
	ID           int64
	Name         string
	PriceMonth   decimal.Decimal
	PriceAnnual  decimal.Decimal
	DurationDays int
	Perks        string
	Slug         string
	IsPopular    bool
}

// NormalizePlan trims and validates plan metadata ahead of persistence.
func NormalizePlan(plan Plan) (Plan, error) {
	plan.Name = strings.TrimSpace(plan.Name)
	if plan.Name == "" {
		return Plan{}, ErrEmptyPlanName
	}
	plan.Perks = strings.TrimSpace(plan.Perks)
	plan.Slug = strings.TrimSpace(plan.Slug)
	if plan.DurationDays <= 0 {
		plan.DurationDays = 30
	}
	return plan, nil
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9\s-]`)
var slugSpacePattern = regexp.MustCompile(`[\s-]+`)

// Slugify converts a plan name into a URL slug base.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = slugSpacePattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugBase {
		slug = strings.Trim(slug[:maxSlugBase], "-")
	}
	return slug
}

// ResolveSlug picks a unique slug for name, appending -N counters until taken
// reports the candidate free.
func ResolveSlug(name string, taken func(slug string) bool) string {
	base := Slugify(name)
	if base == "" {
		base = "plan"
	}
	if taken == nil || !taken(base) {
		return base
	}
	for counter := 1; ; counter++ {
		candidate := base + "-" + strconv.Itoa(counter)
		if !taken(candidate) {
			return candidate
		}
	}
}

// SortPlans orders plans for catalog display: popular first, then monthly
// price ascending, then name.
func SortPlans(plans []Plan) {
	sort.SliceStable(plans, func(i, j int) bool {
		if plans[i].IsPopular != plans[j].IsPopular {
			return plans[i].IsPopular
		}
		if !plans[i].PriceMonth.Equal(plans[j].PriceMonth) {
			return plans[i].PriceMonth.LessThan(plans[j].PriceMonth)
		}
		return plans[i].Name < plans[j].Name
	})
}

// MembershipEnd returns the exclusive end date of a membership that starts on
// start and runs for months monthly periods of the plan's duration.
func (p Plan) MembershipEnd(start time.Time, months int) time.Time {
	if months < 1 {
		months = 1
	}
	days := p.DurationDays
	if days <= 0 {
		days = 30
	}
	return start.AddDate(0, 0, days*months)
}
