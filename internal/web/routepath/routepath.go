// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "strconv"

const (
	Root           = "/"
	About          = "/about"
	Profile        = "/profile"
	BMIBMR         = "/bmi_bmr"
	Plans          = "/plans"
	Trainers       = "/trainers"
	Gallery        = "/gallery"
	Contact        = "/contact"
	Admission      = "/admission"
	PaymentPrefix  = "/payment/"
	PaymentSuccess = "/payment/success"
	StaticPrefix   = "/static/"
	MediaPrefix    = "/media/"

	PaymentPagePattern    = PaymentPrefix + "{admissionID}"
	PaymentUPIPattern     = PaymentPrefix + "{admissionID}/upi"
	PaymentConfirmPattern = PaymentPrefix + "{paymentID}/confirm"
)

// PaymentPage returns the payment summary route for one admission.
func PaymentPage(admissionID int64) string {
	return PaymentPrefix + strconv.FormatInt(admissionID, 10)
}

// PaymentUPI returns the UPI payment initiation route for one admission.
func PaymentUPI(admissionID int64) string {
	return PaymentPage(admissionID) + "/upi"
}

// PaymentConfirm returns the confirmation route for one payment.
func PaymentConfirm(paymentID int64) string {
	return PaymentPrefix + strconv.FormatInt(paymentID, 10) + "/confirm"
}
