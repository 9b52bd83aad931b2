// Package upi builds UPI deep links and payment QR codes.
//
// The deep link format follows the NPCI UPI linking specification:
// upi://pay with payee address (pa), payee name (pn), amount (am),
// transaction note (tn), transaction reference (tr) and currency (cu).
package upi

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// Currency is the fixed settlement currency for gym payments.
const Currency = "INR"

var (
	// ErrEmptyPayeeAddress indicates a missing merchant VPA.
	ErrEmptyPayeeAddress = errors.New("payee address is required")
	// ErrNonPositiveAmount indicates a zero or negative link amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// Payee identifies the merchant collecting payments.
type Payee struct {
	// Address is the merchant VPA, e.g. "merchant@okhdfcbank".
	Address string
	// Name is the display name shown in the payer's UPI app.
	Name string
}

// PayLink builds a upi://pay deep link for the given payment.
func PayLink(payee Payee, amount decimal.Decimal, note, reference string) (string, error) {
	address := strings.TrimSpace(payee.Address)
	if address == "" {
		return "", ErrEmptyPayeeAddress
	}
	if amount.Sign() <= 0 {
		return "", ErrNonPositiveAmount
	}

	// QueryEscape matches the quote_plus encoding UPI apps expect.
	return fmt.Sprintf(
		"upi://pay?pa=%s&pn=%s&am=%s&tn=%s&tr=%s&cu=%s",
		url.QueryEscape(address),
		url.QueryEscape(strings.TrimSpace(payee.Name)),
		url.QueryEscape(amount.StringFixed(2)),
		url.QueryEscape(strings.TrimSpace(note)),
		url.QueryEscape(strings.TrimSpace(reference)),
		Currency,
	), nil
}

// QRPNG renders the deep link as a PNG QR code sized for desktop scanning.
func QRPNG(link string) ([]byte, error) {
	if strings.TrimSpace(link) == "" {
		return nil, errors.New("link is required")
	}
	png, err := qrcode.Encode(link, qrcode.Medium, 280)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
