package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "layout.site_name", "GYM-SHIM")
	message.SetString(lang, "layout.meta_description", "GYM-SHIM fitness club: membership plans, certified trainers, and easy UPI admission.")
	message.SetString(lang, "layout.nav_home", "Home")
	message.SetString(lang, "layout.nav_about", "About")
	message.SetString(lang, "layout.nav_plans", "Plans")
	message.SetString(lang, "layout.nav_trainers", "Trainers")
	message.SetString(lang, "layout.nav_gallery", "Gallery")
	message.SetString(lang, "layout.nav_contact", "Contact")
	message.SetString(lang, "layout.nav_bmi", "BMI & BMR")
	message.SetString(lang, "layout.nav_join", "Join Now")

	// Page titles
	message.SetString(lang, "title.home", "Home")
	message.SetString(lang, "title.about", "About Us")
	message.SetString(lang, "title.profile", "My Profile")
	message.SetString(lang, "title.plans", "Membership Plans")
	message.SetString(lang, "title.trainers", "Our Trainers")
	message.SetString(lang, "title.gallery", "Gallery")
	message.SetString(lang, "title.contact", "Contact Us")
	message.SetString(lang, "title.bmi_bmr", "BMI & BMR Calculator")
	message.SetString(lang, "title.admission", "Gym Admission")
	message.SetString(lang, "title.payment", "Complete Your Payment")
	message.SetString(lang, "title.payment_qr", "Scan to Pay")
	message.SetString(lang, "title.payment_success", "Payment Successful")
	message.SetString(lang, "title.not_found", "Page Not Found")

	// Flash notices
	message.SetString(lang, "flash.admission_created", "Admission submitted. Continue to payment to activate your membership.")
	message.SetString(lang, "flash.contact_received", "Thanks for reaching out. We will get back to you shortly.")
	message.SetString(lang, "flash.payment_confirmed", "Payment confirmed. Welcome to GYM-SHIM!")
	message.SetString(lang, "flash.payment_not_pending", "This payment was already processed.")
	message.SetString(lang, "flash.payment_invalid_reference", "Enter the UPI transaction reference shown in your payment app (4-128 characters, no spaces).")
	message.SetString(lang, "flash.payment_invalid_plan", "Pick a membership plan before paying.")
	message.SetString(lang, "flash.payment_missing_admission", "We could not find that admission. Please submit the form again.")

	// Errors
	message.SetString(lang, "error.not_found", "The page you were looking for does not exist.")
	message.SetString(lang, "error.internal", "Something went wrong on our side. Please try again.")
}
