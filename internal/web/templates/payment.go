package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"

	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// PaymentSummaryView models the payment summary page shown after admission.
type PaymentSummaryView struct {
	Heading       string
	ApplicantName string
	PlanName      string
	Months        int
	Amount        decimal.Decimal
	AdmissionID   int64
}

// PaymentSummaryFragment renders the order summary and the pay button.
func PaymentSummaryFragment(view PaymentSummaryView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>%s</h1><section class="payment-summary" id="payment-summary">`+
				`<p>Applicant: <strong>%s</strong></p>`+
				`<p>Plan: <strong>%s</strong> &#215; %d months</p>`+
				`<p class="amount">Total: &#8377;%s</p></section>`,
			templ.EscapeString(view.Heading),
			templ.EscapeString(view.ApplicantName),
			templ.EscapeString(view.PlanName),
			view.Months,
			templ.EscapeString(view.Amount.StringFixed(2)),
		); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="%s"><button type="submit" class="cta">Pay with UPI</button></form>`,
			routepath.PaymentUPI(view.AdmissionID),
		)
		return err
	})
}

// PaymentQRView models the desktop QR payment page.
type PaymentQRView struct {
	Heading   string
	Amount    decimal.Decimal
	PayLink   string
	QRBase64  string
	PaymentID int64
}

// PaymentQRFragment renders the QR code, deep link, and confirmation form.
func PaymentQRFragment(view PaymentQRView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>%s</h1><section class="payment-qr" id="payment-qr">`+
				`<p class="amount">&#8377;%s</p>`+
				`<img class="qr" src="data:image/png;base64,%s" alt="UPI payment QR code">`+
				`<p><a href=%q>Open in UPI app</a></p></section>`,
			templ.EscapeString(view.Heading),
			templ.EscapeString(view.Amount.StringFixed(2)),
			view.QRBase64,
			templ.EscapeString(view.PayLink),
		); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<form class="confirm-form" method="post" action="%s">`+
				`<label for="upi_reference">UPI transaction reference</label>`+
				`<input id="upi_reference" name="upi_reference" placeholder="e.g. 426100012345">`+
				`<button type="submit">I have paid</button></form>`,
			routepath.PaymentConfirm(view.PaymentID),
		)
		return err
	})
}

// PaymentSuccessView models the post-payment confirmation page.
type PaymentSuccessView struct {
	Heading string
	Message string
}

// PaymentSuccessFragment renders the payment success page.
func PaymentSuccessFragment(view PaymentSuccessView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="payment-success" id="payment-success"><h1>%s</h1><p>%s</p><a class="cta" href="%s">Back to home</a></section>`,
			templ.EscapeString(view.Heading),
			templ.EscapeString(view.Message),
			routepath.Root,
		)
		return err
	})
}
