// Package domain encodes the payment entity, its status state machine and
// the card validation rules that gate each transition.
package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatusCode represents the current state of a payment in its lifecycle
type PaymentStatusCode string

const (
	StatusAuthorized PaymentStatusCode = "AUTHORIZED"
	StatusAccepted   PaymentStatusCode = "ACCEPTED"
	StatusRejected   PaymentStatusCode = "REJECTED"
	StatusRefunded   PaymentStatusCode = "REFUNDED"
	StatusCancelled  PaymentStatusCode = "CANCELLED"
)

// PaymentStatus is a value object: only the current status is retained,
// no history of prior transitions.
type PaymentStatus struct {
	Code         PaymentStatusCode
	UpdatedAt    time.Time
	ErrorMessage string
}

func (s PaymentStatus) IsError() bool {
	return s.Code == StatusRejected
}

// Payment is the aggregate root and the sole unit of consistency. Version
// supports optimistic concurrency in the repository: a save whose expected
// version no longer matches the stored record is rejected.
type Payment struct {
	ID               string
	AuthorizedAmount decimal.Decimal
	CapturedAmount   decimal.Decimal
	Currency         string
	Card             Card
	CreatedAt        time.Time
	Status           PaymentStatus
	Version          int64
}

func NewPayment(id string, amount decimal.Decimal, currency string, card Card, now time.Time) *Payment {
	return &Payment{
		ID:               id,
		AuthorizedAmount: amount,
		CapturedAmount:   decimal.Zero,
		Currency:         currency,
		Card:             card,
		CreatedAt:        now,
		Status: PaymentStatus{
			Code:      StatusAuthorized,
			UpdatedAt: now,
		},
		Version: 1,
	}
}

// ValidateCard runs the authorization checks in order; the first failure
// wins and names the offending field.
func (p *Payment) ValidateCard(now time.Time) error {
	if !p.AuthorizedAmount.IsPositive() {
		return NewCardValidationError("the amount has to be superior to zero", "authorizedAmount")
	}
	if p.Currency == "" {
		return NewCardValidationError("the currency must be supplied", "currency")
	}
	if err := p.Card.validateExpiration(now); err != nil {
		return err
	}
	if err := p.Card.validateCVV(); err != nil {
		return err
	}
	return p.Card.validateNumber()
}

// CanCapture guards the capture transition. REJECTED is capture-eligible so
// a declined capture can be retried.
func (p *Payment) CanCapture() error {
	return p.allow("capture", StatusAuthorized, StatusAccepted, StatusRejected)
}

// CanRefund guards the refund transition; REFUNDED allows further partial refunds.
func (p *Payment) CanRefund() error {
	return p.allow("refund", StatusAccepted, StatusRefunded)
}

// CanVoid guards cancellation: only a never-captured authorization may be voided.
func (p *Payment) CanVoid() error {
	return p.allow("voided", StatusAuthorized)
}

func (p *Payment) allow(action string, allowed ...PaymentStatusCode) error {
	if slices.Contains(allowed, p.Status.Code) {
		return nil
	}
	return NewStatusConflictError(action, p.Status.Code)
}

func (p *Payment) ValidateCaptureAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewAmountViolationError("the capture amount has to be superior to zero")
	}
	if amount.GreaterThan(p.AuthorizedAmount) || p.CapturedAmount.Add(amount).GreaterThan(p.AuthorizedAmount) {
		return NewAmountViolationError("the captured amount cannot be higher than the maximum authorized amount")
	}
	return nil
}

func (p *Payment) ValidateRefundAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewAmountViolationError("the refund amount has to be superior to zero")
	}
	if amount.GreaterThan(p.CapturedAmount) {
		return NewAmountViolationError("the refund amount cannot be higher than the maximum captured amount")
	}
	return nil
}

// Accept records a successful capture of amount.
func (p *Payment) Accept(amount decimal.Decimal, now time.Time) {
	p.CapturedAmount = p.CapturedAmount.Add(amount)
	p.setStatus(StatusAccepted, "", now)
}

// RejectCapture records a gateway decline. The rejection is persisted even
// though the overall capture reports failure.
func (p *Payment) RejectCapture(reason string, now time.Time) {
	p.setStatus(StatusRejected, reason, now)
}

// Refund records the return of amount out of the captured funds.
func (p *Payment) Refund(amount decimal.Decimal, now time.Time) {
	p.CapturedAmount = p.CapturedAmount.Sub(amount)
	p.setStatus(StatusRefunded, "", now)
}

// Cancel releases an uncaptured authorization. CANCELLED is terminal.
func (p *Payment) Cancel(now time.Time) {
	p.setStatus(StatusCancelled, "", now)
}

// Headroom is the amount still available to capture.
func (p *Payment) Headroom() decimal.Decimal {
	return p.AuthorizedAmount.Sub(p.CapturedAmount)
}

func (p *Payment) setStatus(code PaymentStatusCode, errorMessage string, now time.Time) {
	p.Status = PaymentStatus{
		Code:         code,
		UpdatedAt:    now,
		ErrorMessage: errorMessage,
	}
}

// Reconstitute - special constructor for loading from the document store
func Reconstitute(
	id string,
	authorizedAmount, capturedAmount decimal.Decimal,
	currency string,
	card Card,
	createdAt time.Time,
	status PaymentStatus,
	version int64,
) *Payment {
	return &Payment{
		ID:               id,
		AuthorizedAmount: authorizedAmount,
		CapturedAmount:   capturedAmount,
		Currency:         currency,
		Card:             card,
		CreatedAt:        createdAt,
		Status:           status,
		Version:          version,
	}
}
