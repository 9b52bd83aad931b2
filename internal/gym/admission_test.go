package gym

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validForm() AdmissionForm {
	return AdmissionForm{
		FirstName:      "Asha",
		LastName:       "Verma",
		Email:          "asha@example.com",
		Phone:          "+91 98765 43210",
		Gender:         "female",
		DateOfBirth:    "1995-06-15",
		PlanID:         "2",
		StartDate:      "2026-09-01",
		DurationMonths: "3",
		AgreedTerms:    true,
	}
}

var formToday = time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

func TestValidateAdmissionFormAccepted(t *testing.T) {
	t.Parallel()

	admission, errs := ValidateAdmissionForm(validForm(), formToday)
	if len(errs) != 0 {
		t.Fatalf("unexpected field errors: %v", errs)
	}
	if admission.FullName() != "Asha Verma" {
		t.Fatalf("FullName() = %q", admission.FullName())
	}
	if admission.PlanID != 2 {
		t.Fatalf("PlanID = %d, want 2", admission.PlanID)
	}
	if admission.DurationMonths != 3 {
		t.Fatalf("DurationMonths = %d, want 3", admission.DurationMonths)
	}
	if !admission.StartDate.Equal(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("StartDate = %v", admission.StartDate)
	}
}

func TestValidateAdmissionFormFieldRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*AdmissionForm)
		wantField string
	}{
		{
			name:      "missing first name",
			mutate:    func(f *AdmissionForm) { f.FirstName = "  " },
			wantField: "first_name",
		},
		{
			name:      "bad email",
			mutate:    func(f *AdmissionForm) { f.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "short phone",
			mutate:    func(f *AdmissionForm) { f.Phone = "12345" },
			wantField: "phone",
		},
		{
			name:      "phone with letters",
			mutate:    func(f *AdmissionForm) { f.Phone = "98765abcde" },
			wantField: "phone",
		},
		{
			name:      "unknown gender",
			mutate:    func(f *AdmissionForm) { f.Gender = "robot" },
			wantField: "gender",
		},
		{
			name:      "under fourteen",
			mutate:    func(f *AdmissionForm) { f.DateOfBirth = "2015-01-01" },
			wantField: "date_of_birth",
		},
		{
			name:      "missing plan",
			mutate:    func(f *AdmissionForm) { f.PlanID = "" },
			wantField: "plan",
		},
		{
			name:      "start date in the past",
			mutate:    func(f *AdmissionForm) { f.StartDate = "2026-08-30" },
			wantField: "start_date",
		},
		{
			name:      "zero duration",
			mutate:    func(f *AdmissionForm) { f.DurationMonths = "0" },
			wantField: "duration_months",
		},
		{
			name:      "bad emergency phone",
			mutate:    func(f *AdmissionForm) { f.EmergencyContactPhone = "12" },
			wantField: "emergency_contact_phone",
		},
		{
			name:      "bad upi id",
			mutate:    func(f *AdmissionForm) { f.UPIID = "no-at-sign" },
			wantField: "upi_id",
		},
		{
			name:      "terms not agreed",
			mutate:    func(f *AdmissionForm) { f.AgreedTerms = false },
			wantField: "agreed_terms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := validForm()
			tt.mutate(&form)

			_, errs := ValidateAdmissionForm(form, formToday)
			if !errs.Has(tt.wantField) {
				t.Fatalf("expected field error %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateAdmissionFormPhoneAllowsSeparators(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Phone = "98765-43210"

	admission, errs := ValidateAdmissionForm(form, formToday)
	if len(errs) != 0 {
		t.Fatalf("unexpected field errors: %v", errs)
	}
	if admission.Phone != "98765-43210" {
		t.Fatalf("Phone = %q, want separators preserved", admission.Phone)
	}
}

func TestValidateAdmissionFormDefaults(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.StartDate = ""
	form.DurationMonths = ""
	form.DateOfBirth = ""
	form.Gender = ""

	admission, errs := ValidateAdmissionForm(form, formToday)
	if len(errs) != 0 {
		t.Fatalf("unexpected field errors: %v", errs)
	}
	if !admission.StartDate.Equal(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("StartDate = %v, want today", admission.StartDate)
	}
	if admission.DurationMonths != 1 {
		t.Fatalf("DurationMonths = %d, want 1", admission.DurationMonths)
	}
	if !admission.DateOfBirth.IsZero() {
		t.Fatalf("DateOfBirth = %v, want zero", admission.DateOfBirth)
	}
}

func TestAdmissionTotal(t *testing.T) {
	t.Parallel()

	price := decimal.RequireFromString("1999.00")
	total := AdmissionTotal(price, 3)
	if total.StringFixed(2) != "5997.00" {
		t.Fatalf("total = %s, want 5997.00", total.StringFixed(2))
	}

	if got := AdmissionTotal(price, 0); got.StringFixed(2) != "1999.00" {
		t.Fatalf("zero months total = %s, want one month", got.StringFixed(2))
	}
}

func TestValidatePhoto(t *testing.T) {
	t.Parallel()

	if err := ValidatePhoto(1<<20, "image/jpeg", 800, 600); err != nil {
		t.Fatalf("valid photo rejected: %v", err)
	}
	if err := ValidatePhoto(5<<20, "image/jpeg", 800, 600); err == nil {
		t.Fatal("expected size error")
	}
	if err := ValidatePhoto(1<<20, "application/pdf", 800, 600); err == nil {
		t.Fatal("expected content type error")
	}
	if err := ValidatePhoto(1<<20, "image/png", 199, 600); err == nil {
		t.Fatal("expected dimension error")
	}
}
