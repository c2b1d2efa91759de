package application

import (
	"context"

	"github.com/cardworks/payment-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// PaymentRepository is the port for persistence.
type PaymentRepository interface {
	// Create inserts a new payment. Storage faults are unexpected and fatal
	// for the operation in progress.
	Create(ctx context.Context, payment *domain.Payment) error

	// FindByID returns PAYMENT_NOT_FOUND when no record exists.
	FindByID(ctx context.Context, id string) (*domain.Payment, error)

	// Save replaces the stored record, conditional on the version the
	// payment was loaded with. A mismatch fails with
	// CONCURRENT_MODIFICATION and leaves the stored record untouched.
	// On success the payment's version is advanced in place.
	Save(ctx context.Context, payment *domain.Payment) error
}

// BankResponse is what the settlement system answers for a capture or
// refund. Success iff ErrorMessage is empty.
type BankResponse struct {
	ErrorMessage string
}

func (r BankResponse) IsSuccess() bool {
	return r.ErrorMessage == ""
}

// BankGateway is the port for the external settlement system. A returned
// error means the gateway could not be reached at all; a decline comes back
// as a response with an error message.
type BankGateway interface {
	Capture(ctx context.Context, amount decimal.Decimal) (*BankResponse, error)
	Refund(ctx context.Context, amount decimal.Decimal) (*BankResponse, error)
}

// FaultInjector lets test doubles force failures for designated card
// numbers so the failure paths can be exercised deterministically. The
// production wiring uses NopFaultInjector; no card literals live in the
// services.
type FaultInjector interface {
	Authorize(cardNumber string) error
	Capture(cardNumber string) error
	Refund(cardNumber string) error
}

type NopFaultInjector struct{}

func (NopFaultInjector) Authorize(string) error { return nil }
func (NopFaultInjector) Capture(string) error   { return nil }
func (NopFaultInjector) Refund(string) error    { return nil }
