package gym

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Basic", want: "basic"},
		{name: "spaces", in: "Elite Annual Pass", want: "elite-annual-pass"},
		{name: "punctuation stripped", in: "Premium+ (Gold)!", want: "premium-gold"},
		{name: "surrounding whitespace", in: "  Strength 101  ", want: "strength-101"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.in); got != tt.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyCapsLength(t *testing.T) {
	t.Parallel()

	long := ""
	for range 20 {
		long += "plan name "
	}
	slug := Slugify(long)
	if len(slug) > 70 {
		t.Fatalf("slug length = %d, want <= 70", len(slug))
	}
	if slug[len(slug)-1] == '-' {
		t.Fatalf("slug %q ends with dash", slug)
	}
}

func TestResolveSlugAppendsCounter(t *testing.T) {
	t.Parallel()

	taken := map[string]bool{"premium": true, "premium-1": true}
	got := ResolveSlug("Premium", func(slug string) bool { return taken[slug] })
	if got != "premium-2" {
		t.Fatalf("ResolveSlug() = %q, want %q", got, "premium-2")
	}
}

func TestResolveSlugEmptyNameFallsBack(t *testing.T) {
	t.Parallel()

	got := ResolveSlug("!!!", func(string) bool { return false })
	if got != "plan" {
		t.Fatalf("ResolveSlug() = %q, want %q", got, "plan")
	}
}

func TestNormalizePlanRequiresName(t *testing.T) {
	t.Parallel()

	if _, err := NormalizePlan(Plan{Name: "   "}); err != ErrEmptyPlanName {
		t.Fatalf("err = %v, want ErrEmptyPlanName", err)
	}
}

func TestNormalizePlanDefaultsDuration(t *testing.T) {
	t.Parallel()

	plan, err := NormalizePlan(Plan{Name: "Basic"})
	if err != nil {
		t.Fatalf("normalize plan: %v", err)
	}
	if plan.DurationDays != 30 {
		t.Fatalf("DurationDays = %d, want 30", plan.DurationDays)
	}
}

func TestSortPlansPopularFirstThenPrice(t *testing.T) {
	t.Parallel()

	plans := []Plan{
		{Name: "Elite", PriceMonth: decimal.NewFromInt(2999)},
		{Name: "Premium", PriceMonth: decimal.NewFromInt(1999), IsPopular: true},
		{Name: "Basic", PriceMonth: decimal.NewFromInt(999)},
	}
	SortPlans(plans)

	got := []string{plans[0].Name, plans[1].Name, plans[2].Name}
	want := []string{"Premium", "Basic", "Elite"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
