package gym

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks the lifecycle of a payment attempt.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentMode records how a payment was made.
type PaymentMode string

const (
	ModeUPI   PaymentMode = "UPI"
	ModeCard  PaymentMode = "Card"
	ModeOther PaymentMode = "Other"
)

var (
	// ErrInvalidPaymentAmount indicates a zero or negative payment amount.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	// ErrInvalidReference indicates a malformed UPI transaction reference.
	ErrInvalidReference = errors.New("enter a valid transaction reference")
	// ErrPaymentNotPending indicates the payment was already processed.
	ErrPaymentNotPending = errors.New("payment already processed")
)

// Payment tracks one payment attempt against an admission.
type Payment struct {
	ID            int64
	AdmissionID   int64
	Amount        decimal.Decimal
	UPIReference  string
	TransactionID string
	Status        PaymentStatus
	Mode          PaymentMode
	CreatedAt     time.Time
}

// NewUPIPayment creates a pending UPI payment with a fresh transaction ID.
func NewUPIPayment(admissionID int64, amount decimal.Decimal, now time.Time) (Payment, error) {
	if amount.Sign() <= 0 {
		return Payment{}, ErrInvalidPaymentAmount
	}
	return Payment{
		AdmissionID:   admissionID,
		Amount:        amount,
		TransactionID: uuid.NewString(),
		Status:        PaymentPending,
		Mode:          ModeUPI,
		CreatedAt:     now.UTC(),
	}, nil
}

// ValidateUPIReference checks a manually submitted UPI transaction reference.
// References are 4 to 128 characters with no whitespace.
func ValidateUPIReference(reference string) (string, error) {
	reference = strings.TrimSpace(reference)
	if len(reference) < 4 || len(reference) > 128 {
		return "", ErrInvalidReference
	}
	for _, r := range reference {
		if unicode.IsSpace(r) {
			return "", ErrInvalidReference
		}
	}
	return reference, nil
}

// Confirm marks a pending payment successful with the verified reference.
func (p *Payment) Confirm(reference string) error {
	if p.Status != PaymentPending {
		return ErrPaymentNotPending
	}
	verified, err := ValidateUPIReference(reference)
	if err != nil {
		return err
	}
	p.UPIReference = verified
	p.Status = PaymentSuccess
	return nil
}
