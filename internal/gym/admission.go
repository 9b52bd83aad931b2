package gym

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Gender values accepted on the admission form. The empty string means the
// applicant preferred not to say.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// minApplicantAgeYears is the youngest age the gym admits.
const minApplicantAgeYears = 14

// daysPerYear converts an age in days to calendar years.
const daysPerYear = 365.2425

// maxPhotoBytes caps admission photo uploads.
const maxPhotoBytes = 4 << 20

// minPhotoDimension is the smallest accepted photo width and height in pixels.
const minPhotoDimension = 200

var phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)
var upiIDPattern = regexp.MustCompile(`^[\w.-]+@[\w]+$`)

// Admission is a member's signed application form entry.
type Admission struct {
	ID                    int64
	FirstName             string
	LastName              string
	Email                 string
	Phone                 string
	Gender                string
	DateOfBirth           time.Time // zero when not provided
	Address               string
	PlanID                int64 // zero when the plan was deleted
	StartDate             time.Time
	DurationMonths        int
	EmergencyContactName  string
	EmergencyContactPhone string
	FitnessGoals          string
	MedicalConditions     string
	PhotoPath             string
	UPIID                 string
	AgreedTerms           bool
	TotalAmount           decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// FullName joins the applicant's first and last names.
func (a Admission) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// AdmissionForm carries raw admission form input prior to validation.
type AdmissionForm struct {
	FirstName             string
	LastName              string
	Email                 string
	Phone                 string
	Gender                string
	DateOfBirth           string // 2006-01-02, optional
	Address               string
	PlanID                string
	StartDate             string // 2006-01-02
	DurationMonths        string
	EmergencyContactName  string
	EmergencyContactPhone string
	FitnessGoals          string
	MedicalConditions     string
	UPIID                 string
	AgreedTerms           bool
}

// FieldErrors maps form field names to a single validation message each.
type FieldErrors map[string]string

// Has reports whether field failed validation.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// ValidateAdmissionForm validates raw form input against the admission rules
// and returns the populated admission. Plan lookup and total computation are
// the caller's concern; PlanID is parsed but not resolved here.
func ValidateAdmissionForm(form AdmissionForm, today time.Time) (Admission, FieldErrors) {
	errs := FieldErrors{}
	today = truncateToDate(today)

	admission := Admission{
		FirstName:            strings.TrimSpace(form.FirstName),
		LastName:             strings.TrimSpace(form.LastName),
		Address:              strings.TrimSpace(form.Address),
		EmergencyContactName: strings.TrimSpace(form.EmergencyContactName),
		FitnessGoals:         strings.TrimSpace(form.FitnessGoals),
		MedicalConditions:    strings.TrimSpace(form.MedicalConditions),
		AgreedTerms:          form.AgreedTerms,
		TotalAmount:          decimal.Zero,
	}

	if admission.FirstName == "" {
		errs["first_name"] = "First name is required."
	}

	email := strings.TrimSpace(form.Email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		errs["email"] = "Enter a valid email address."
	} else {
		admission.Email = email
	}

	phone := strings.TrimSpace(form.Phone)
	if !validPhone(phone) {
		errs["phone"] = "Enter a valid phone number (7-15 digits)."
	} else {
		admission.Phone = phone
	}

	switch gender := strings.ToLower(strings.TrimSpace(form.Gender)); gender {
	case "", GenderMale, GenderFemale, GenderOther:
		admission.Gender = gender
	default:
		errs["gender"] = "Select a valid gender."
	}

	if dob := strings.TrimSpace(form.DateOfBirth); dob != "" {
		parsed, err := time.Parse("2006-01-02", dob)
		if err != nil {
			errs["date_of_birth"] = "Enter a valid date of birth."
		} else if ageYears(parsed, today) < minApplicantAgeYears {
			errs["date_of_birth"] = "Applicant must be at least 14 years old."
		} else {
			admission.DateOfBirth = parsed
		}
	}

	if planID, err := strconv.ParseInt(strings.TrimSpace(form.PlanID), 10, 64); err != nil || planID <= 0 {
		errs["plan"] = "Choose your membership plan."
	} else {
		admission.PlanID = planID
	}

	start := strings.TrimSpace(form.StartDate)
	if start == "" {
		admission.StartDate = today
	} else if parsed, err := time.Parse("2006-01-02", start); err != nil {
		errs["start_date"] = "Enter a valid start date."
	} else if parsed.Before(today) {
		errs["start_date"] = "Start date cannot be in the past."
	} else {
		admission.StartDate = parsed
	}

	months := strings.TrimSpace(form.DurationMonths)
	if months == "" {
		admission.DurationMonths = 1
	} else if parsed, err := strconv.Atoi(months); err != nil || parsed < 1 {
		errs["duration_months"] = "Enter a valid duration in months."
	} else {
		admission.DurationMonths = parsed
	}

	if emergency := strings.TrimSpace(form.EmergencyContactPhone); emergency != "" {
		if !validPhone(emergency) {
			errs["emergency_contact_phone"] = "Enter a valid emergency contact number (7-15 digits)."
		} else {
			admission.EmergencyContactPhone = emergency
		}
	}

	if upiID := strings.TrimSpace(form.UPIID); upiID != "" {
		if !upiIDPattern.MatchString(upiID) {
			errs["upi_id"] = "Enter a valid UPI ID (example@upi)."
		} else {
			admission.UPIID = upiID
		}
	}

	if !form.AgreedTerms {
		errs["agreed_terms"] = "You must agree to the terms and conditions."
	}

	if len(errs) > 0 {
		return Admission{}, errs
	}
	return admission, nil
}

// AdmissionTotal computes the amount owed for months of the plan's monthly price.
func AdmissionTotal(priceMonth decimal.Decimal, months int) decimal.Decimal {
	if months < 1 {
		months = 1
	}
	return priceMonth.Mul(decimal.NewFromInt(int64(months)))
}

// ValidatePhoto checks an admission photo's size, declared content type and
// decoded pixel dimensions.
func ValidatePhoto(size int64, contentType string, width, height int) error {
	if size > maxPhotoBytes {
		return FieldError{Field: "photo", Message: "Photo file is too large (max 4MB)."}
	}
	if !strings.HasPrefix(contentType, "image/") {
		return FieldError{Field: "photo", Message: "Only image files are allowed."}
	}
	if width < minPhotoDimension || height < minPhotoDimension {
		return FieldError{Field: "photo", Message: "Image is too small (minimum 200x200px)."}
	}
	return nil
}

// FieldError reports a single-field validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func validPhone(phone string) bool {
	sanitized := strings.ReplaceAll(strings.ReplaceAll(phone, "-", ""), " ", "")
	return phonePattern.MatchString(sanitized)
}

func ageYears(dob, today time.Time) float64 {
	return today.Sub(dob).Hours() / 24 / daysPerYear
}

func truncateToDate(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
