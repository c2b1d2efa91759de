package bank

import (
	"fmt"

	"github.com/cardworks/payment-gateway/internal/application"
)

// CardFaults is a fault-injection double: designated card numbers
// deterministically fail a given operation before any other check runs.
// It replaces hard-coded sentinel card values in business logic; tests and
// dev wiring configure it, production uses application.NopFaultInjector.
type CardFaults struct {
	authorize map[string]struct{}
	capture   map[string]struct{}
	refund    map[string]struct{}
}

func NewCardFaults() *CardFaults {
	return &CardFaults{
		authorize: make(map[string]struct{}),
		capture:   make(map[string]struct{}),
		refund:    make(map[string]struct{}),
	}
}

func (f *CardFaults) FailAuthorize(cardNumber string) *CardFaults {
	f.authorize[cardNumber] = struct{}{}
	return f
}

func (f *CardFaults) FailCapture(cardNumber string) *CardFaults {
	f.capture[cardNumber] = struct{}{}
	return f
}

func (f *CardFaults) FailRefund(cardNumber string) *CardFaults {
	f.refund[cardNumber] = struct{}{}
	return f
}

func (f *CardFaults) Authorize(cardNumber string) error {
	return f.check(f.authorize, "authorization", cardNumber)
}

func (f *CardFaults) Capture(cardNumber string) error {
	return f.check(f.capture, "capture", cardNumber)
}

func (f *CardFaults) Refund(cardNumber string) error {
	return f.check(f.refund, "refund", cardNumber)
}

func (f *CardFaults) check(set map[string]struct{}, operation, cardNumber string) error {
	if _, ok := set[cardNumber]; ok {
		return fmt.Errorf("%s failed for designated test card", operation)
	}
	return nil
}

var _ application.FaultInjector = (*CardFaults)(nil)
