package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
)

// FitnessView models the BMI/BMR calculator page.
type FitnessView struct {
	Heading  string
	Gender   string
	Age      string
	HeightCm string
	WeightKg string
	Error    string
	Result   *gym.BodyMetrics
}

// FitnessFragment renders the calculator form and any computed result.
func FitnessFragment(view FitnessView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>%s</h1><form class="fitness-form" id="bmi-bmr" method="post" action="/bmi_bmr">`,
			templ.EscapeString(view.Heading),
		); err != nil {
			return err
		}
		if err := writeGenderSelect(w, view.Gender); err != nil {
			return err
		}
		if err := writeTextField(w, "age", "Age (years)", view.Age, ""); err != nil {
			return err
		}
		if err := writeTextField(w, "height_cm", "Height (cm)", view.HeightCm, ""); err != nil {
			return err
		}
		if err := writeTextField(w, "weight_kg", "Weight (kg)", view.WeightKg, ""); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<button type="submit">Calculate</button></form>`); err != nil {
			return err
		}
		if view.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`, templ.EscapeString(view.Error)); err != nil {
				return err
			}
		}
		if view.Result != nil {
			if _, err := fmt.Fprintf(w,
				`<section class="fitness-result" id="result"><p>BMI: <strong>%.1f</strong> (%s)</p><p>BMR: <strong>%.0f</strong> kcal/day</p></section>`,
				view.Result.BMI,
				templ.EscapeString(view.Result.Category),
				view.Result.BMR,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeGenderSelect(w io.Writer, selected string) error {
	if _, err := io.WriteString(w, `<label for="gender">Gender</label><select id="gender" name="gender">`); err != nil {
		return err
	}
	options := []struct {
		value string
		label string
	}{
		{gym.GenderMale, "Male"},
		{gym.GenderFemale, "Female"},
		{gym.GenderOther, "Other"},
	}
	for _, option := range options {
		marker := ""
		if option.value == selected {
			marker = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value=%q%s>%s</option>`, option.value, marker, option.label); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select>`)
	return err
}
