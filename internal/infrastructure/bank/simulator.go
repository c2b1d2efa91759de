// Package bank provides an in-process simulator of the settlement system.
package bank

import (
	"context"
	"sync"

	"github.com/cardworks/payment-gateway/internal/application"
	"github.com/shopspring/decimal"
)

// Simulator implements the settlement gateway against a single in-memory
// account balance. The balance is process-scoped mutable state owned
// exclusively by the simulator; all mutation goes through one mutex so the
// gateway stays safe under concurrent callers.
type Simulator struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

func NewSimulator(initialBalance decimal.Decimal) *Simulator {
	return &Simulator{balance: initialBalance}
}

// Capture debits the settlement account. The currency is assumed to match
// the one requested at authorization, so no conversion happens here.
func (s *Simulator) Capture(_ context.Context, amount decimal.Decimal) (*application.BankResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.balance.LessThan(amount) {
		return &application.BankResponse{
			ErrorMessage: "insufficient balance for this transaction",
		}, nil
	}

	s.balance = s.balance.Sub(amount)

	return &application.BankResponse{}, nil
}

// Refund credits the settlement account back. Refunds never decline.
func (s *Simulator) Refund(_ context.Context, amount decimal.Decimal) (*application.BankResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balance = s.balance.Add(amount)

	return &application.BankResponse{}, nil
}

// Balance reports the current settlement balance.
func (s *Simulator) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Reset reinitializes the balance; tests use it for isolation.
func (s *Simulator) Reset(balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = balance
}

var _ application.BankGateway = (*Simulator)(nil)
