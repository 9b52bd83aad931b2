package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
)

// AdmissionView models the admission form page.
type AdmissionView struct {
	Heading string
	Form    gym.AdmissionForm
	Errors  gym.FieldErrors
	Plans   []gym.Plan
}

// AdmissionFragment renders the admission form, re-populating submitted
// values and surfacing per-field validation errors.
func AdmissionFragment(view AdmissionView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>%s</h1><form class="admission-form" id="admission" method="post" action="/admission" enctype="multipart/form-data">`,
			templ.EscapeString(view.Heading),
		); err != nil {
			return err
		}

		form := view.Form
		errs := view.Errors
		if err := writeTextField(w, "first_name", "First name", form.FirstName, errs["first_name"]); err != nil {
			return err
		}
		if err := writeTextField(w, "last_name", "Last name", form.LastName, errs["last_name"]); err != nil {
			return err
		}
		if err := writeTextField(w, "email", "Email", form.Email, errs["email"]); err != nil {
			return err
		}
		if err := writeTextField(w, "phone", "Phone", form.Phone, errs["phone"]); err != nil {
			return err
		}
		if err := writeGenderSelect(w, form.Gender); err != nil {
			return err
		}
		if err := writeFieldError(w, "gender", errs["gender"]); err != nil {
			return err
		}
		if err := writeDateField(w, "date_of_birth", "Date of birth", form.DateOfBirth, errs["date_of_birth"]); err != nil {
			return err
		}
		if err := writeTextArea(w, "address", "Address", form.Address, errs["address"]); err != nil {
			return err
		}
		if err := writePlanSelect(w, view.Plans, form.PlanID, errs["plan"]); err != nil {
			return err
		}
		if err := writeDateField(w, "start_date", "Start date", form.StartDate, errs["start_date"]); err != nil {
			return err
		}
		if err := writeTextField(w, "duration_months", "Duration (months)", form.DurationMonths, errs["duration_months"]); err != nil {
			return err
		}
		if err := writeTextField(w, "emergency_contact_name", "Emergency contact name", form.EmergencyContactName, errs["emergency_contact_name"]); err != nil {
			return err
		}
		if err := writeTextField(w, "emergency_contact_phone", "Emergency contact phone", form.EmergencyContactPhone, errs["emergency_contact_phone"]); err != nil {
			return err
		}
		if err := writeTextArea(w, "fitness_goals", "Fitness goals", form.FitnessGoals, errs["fitness_goals"]); err != nil {
			return err
		}
		if err := writeTextArea(w, "medical_conditions", "Medical conditions", form.MedicalConditions, errs["medical_conditions"]); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<label for="photo">Photo</label><input id="photo" name="photo" type="file" accept="image/*">`,
		); err != nil {
			return err
		}
		if err := writeFieldError(w, "photo", errs["photo"]); err != nil {
			return err
		}
		if err := writeTextField(w, "upi_id", "UPI ID (optional)", form.UPIID, errs["upi_id"]); err != nil {
			return err
		}

		checked := ""
		if form.AgreedTerms {
			checked = " checked"
		}
		if _, err := fmt.Fprintf(w,
			`<label class="terms"><input type="checkbox" name="agreed_terms" value="on"%s> I agree to the terms and conditions</label>`,
			checked,
		); err != nil {
			return err
		}
		if err := writeFieldError(w, "agreed_terms", errs["agreed_terms"]); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<button type="submit">Submit &amp; Continue to Payment</button></form>`)
		return err
	})
}

func writeDateField(w io.Writer, name, label, value, fieldError string) error {
	if _, err := fmt.Fprintf(w,
		`<label for=%q>%s</label><input id=%q name=%q type="date" value=%q>`,
		name,
		templ.EscapeString(label),
		name,
		name,
		templ.EscapeString(value),
	); err != nil {
		return err
	}
	return writeFieldError(w, name, fieldError)
}

func writePlanSelect(w io.Writer, plans []gym.Plan, selected string, fieldError string) error {
	if _, err := io.WriteString(w,
		`<label for="plan">Membership plan</label><select id="plan" name="plan"><option value="">Select a plan</option>`,
	); err != nil {
		return err
	}
	for _, plan := range plans {
		marker := ""
		if fmt.Sprintf("%d", plan.ID) == selected {
			marker = " selected"
		}
		if _, err := fmt.Fprintf(w,
			`<option value="%d"%s>%s - &#8377;%s/month</option>`,
			plan.ID,
			marker,
			templ.EscapeString(plan.Name),
			templ.EscapeString(plan.PriceMonth.StringFixed(2)),
		); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</select>`); err != nil {
		return err
	}
	return writeFieldError(w, "plan", fieldError)
}
