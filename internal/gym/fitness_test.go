package gym

import (
	"math"
	"testing"
)

func TestComputeBodyMetrics(t *testing.T) {
	t.Parallel()

	got, err := ComputeBodyMetrics(GenderMale, 30, 180, 80)
	if err != nil {
		t.Fatalf("compute metrics: %v", err)
	}
	if math.Abs(got.BMI-24.69) > 0.01 {
		t.Fatalf("BMI = %.2f, want ~24.69", got.BMI)
	}
	if got.Category != "Normal" {
		t.Fatalf("Category = %q, want Normal", got.Category)
	}
	// Mifflin-St Jeor: 10*80 + 6.25*180 - 5*30 + 5 = 1780
	if math.Abs(got.BMR-1780) > 0.01 {
		t.Fatalf("BMR = %.2f, want 1780", got.BMR)
	}
}

func TestComputeBodyMetricsFemaleOffset(t *testing.T) {
	t.Parallel()

	male, err := ComputeBodyMetrics(GenderMale, 25, 165, 60)
	if err != nil {
		t.Fatalf("compute metrics: %v", err)
	}
	female, err := ComputeBodyMetrics(GenderFemale, 25, 165, 60)
	if err != nil {
		t.Fatalf("compute metrics: %v", err)
	}
	if math.Abs((male.BMR-female.BMR)-166) > 0.01 {
		t.Fatalf("male-female BMR delta = %.2f, want 166", male.BMR-female.BMR)
	}
}

func TestComputeBodyMetricsCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weightKg float64
		want     string
	}{
		{name: "underweight", weightKg: 50, want: "Underweight"},
		{name: "normal", weightKg: 70, want: "Normal"},
		{name: "overweight", weightKg: 90, want: "Overweight"},
		{name: "obese", weightKg: 110, want: "Obese"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ComputeBodyMetrics(GenderMale, 30, 180, tt.weightKg)
			if err != nil {
				t.Fatalf("compute metrics: %v", err)
			}
			if got.Category != tt.want {
				t.Fatalf("Category = %q, want %q", got.Category, tt.want)
			}
		})
	}
}

func TestComputeBodyMetricsRejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := ComputeBodyMetrics(GenderMale, 0, 180, 80); err != ErrInvalidMeasurements {
		t.Fatalf("err = %v, want ErrInvalidMeasurements", err)
	}
	if _, err := ComputeBodyMetrics(GenderMale, 30, 0, 80); err != ErrInvalidMeasurements {
		t.Fatalf("err = %v, want ErrInvalidMeasurements", err)
	}
	if _, err := ComputeBodyMetrics(GenderMale, 30, 180, -1); err != ErrInvalidMeasurements {
		t.Fatalf("err = %v, want ErrInvalidMeasurements", err)
	}
}
