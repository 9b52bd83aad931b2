package gym

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewUPIPayment(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	payment, err := NewUPIPayment(7, decimal.RequireFromString("2999.00"), now)
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if payment.Status != PaymentPending {
		t.Fatalf("Status = %q, want pending", payment.Status)
	}
	if payment.Mode != ModeUPI {
		t.Fatalf("Mode = %q, want UPI", payment.Mode)
	}
	if payment.TransactionID == "" {
		t.Fatal("expected generated transaction ID")
	}
	if payment.AdmissionID != 7 {
		t.Fatalf("AdmissionID = %d, want 7", payment.AdmissionID)
	}
}

func TestNewUPIPaymentRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	if _, err := NewUPIPayment(1, decimal.Zero, time.Now()); err != ErrInvalidPaymentAmount {
		t.Fatalf("err = %v, want ErrInvalidPaymentAmount", err)
	}
	if _, err := NewUPIPayment(1, decimal.NewFromInt(-5), time.Now()); err != ErrInvalidPaymentAmount {
		t.Fatalf("err = %v, want ErrInvalidPaymentAmount", err)
	}
}

func TestNewUPIPaymentsGetDistinctTransactionIDs(t *testing.T) {
	t.Parallel()

	first, err := NewUPIPayment(1, decimal.NewFromInt(999), time.Now())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	second, err := NewUPIPayment(1, decimal.NewFromInt(999), time.Now())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if first.TransactionID == second.TransactionID {
		t.Fatalf("transaction IDs collide: %q", first.TransactionID)
	}
}

func TestValidateUPIReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "valid", in: "UPI1234567890", want: "UPI1234567890"},
		{name: "trimmed", in: "  ref-9001  ", want: "ref-9001"},
		{name: "too short", in: "abc", wantErr: true},
		{name: "interior whitespace", in: "ref 9001", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateUPIReference(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("validate reference: %v", err)
			}
			if got != tt.want {
				t.Fatalf("reference = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateUPIReferenceTooLong(t *testing.T) {
	t.Parallel()

	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := ValidateUPIReference(string(long)); err != ErrInvalidReference {
		t.Fatalf("err = %v, want ErrInvalidReference", err)
	}
}

func TestConfirmTransitionsPendingToSuccess(t *testing.T) {
	t.Parallel()

	payment, err := NewUPIPayment(3, decimal.NewFromInt(999), time.Now())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if err := payment.Confirm("TXN-0001"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if payment.Status != PaymentSuccess {
		t.Fatalf("Status = %q, want success", payment.Status)
	}
	if payment.UPIReference != "TXN-0001" {
		t.Fatalf("UPIReference = %q", payment.UPIReference)
	}
}

func TestConfirmRejectsProcessedPayment(t *testing.T) {
	t.Parallel()

	payment, err := NewUPIPayment(3, decimal.NewFromInt(999), time.Now())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if err := payment.Confirm("TXN-0001"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := payment.Confirm("TXN-0002"); err != ErrPaymentNotPending {
		t.Fatalf("err = %v, want ErrPaymentNotPending", err)
	}
	if payment.UPIReference != "TXN-0001" {
		t.Fatalf("UPIReference overwritten: %q", payment.UPIReference)
	}
}
