package services

import "github.com/shopspring/decimal"

type AuthorizeCommand struct {
	Amount     decimal.Decimal
	Currency   string
	CardNumber string
	ExpMonth   int
	ExpYear    int
	CVV        int
}

type CaptureCommand struct {
	AuthorizationID string
	Amount          decimal.Decimal
}

type RefundCommand struct {
	AuthorizationID string
	Amount          decimal.Decimal
}

type VoidCommand struct {
	AuthorizationID string
}

type AuthorizeResult struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
}

// OperationResult reports the amount a capture or refund left available to
// capture; for void it is the full authorized amount released.
type OperationResult struct {
	Amount   decimal.Decimal
	Currency string
}
