package routepath

import "testing"

func TestPaymentBuilders(t *testing.T) {
	t.Parallel()

	if got := PaymentPage(12); got != "/payment/12" {
		t.Fatalf("PaymentPage = %q", got)
	}
	if got := PaymentUPI(12); got != "/payment/12/upi" {
		t.Fatalf("PaymentUPI = %q", got)
	}
	if got := PaymentConfirm(7); got != "/payment/7/confirm" {
		t.Fatalf("PaymentConfirm = %q", got)
	}
}
