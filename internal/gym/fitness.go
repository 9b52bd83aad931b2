package gym

import "errors"

// ErrInvalidMeasurements indicates out-of-range BMI/BMR inputs.
var ErrInvalidMeasurements = errors.New("invalid measurements")

// BodyMetrics is the server-side result of the BMI/BMR calculator.
type BodyMetrics struct {
	BMI      float64
	Category string
	BMR      float64
}

// ComputeBodyMetrics calculates BMI and Mifflin-St Jeor BMR for the given
// measurements. Height is in centimeters, weight in kilograms.
func ComputeBodyMetrics(gender string, ageYears int, heightCm, weightKg float64) (BodyMetrics, error) {
	if ageYears <= 0 || ageYears > 120 || heightCm <= 0 || weightKg <= 0 {
		return BodyMetrics{}, ErrInvalidMeasurements
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == GenderFemale {
		bmr -= 161
	} else {
		bmr += 5
	}

	return BodyMetrics{BMI: bmi, Category: bmiCategory(bmi), BMR: bmr}, nil
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
