package rest

import (
	"time"

	"github.com/cardworks/payment-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

type AuthorizeRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	CardNumber      string          `json:"cardNumber"`
	ExpirationMonth int             `json:"expirationMonth"`
	ExpirationYear  int             `json:"expirationYear"`
	CVV             int             `json:"cvv"`
}

type CaptureRequest struct {
	AuthorizationID string          `json:"authorizationId" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
}

type RefundRequest struct {
	AuthorizationID string          `json:"authorizationId" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
}

type VoidRequest struct {
	AuthorizationID string `json:"authorizationId" validate:"required"`
}

type LoginRequest struct {
	ClientID     string `json:"clientId" validate:"required"`
	ClientSecret string `json:"clientSecret" validate:"required"`
}

type AuthorizeResponse struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// OperationResponse carries the amount left available to capture, or for
// void the full released amount.
type OperationResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type PaymentResponse struct {
	ID               string          `json:"id"`
	AuthorizedAmount decimal.Decimal `json:"authorizedAmount"`
	CapturedAmount   decimal.Decimal `json:"capturedAmount"`
	Currency         string          `json:"currency"`
	CardNumber       string          `json:"cardNumber"`
	CreatedAt        time.Time       `json:"createdAt"`
	Status           StatusResponse  `json:"status"`
	Version          int64           `json:"version"`
}

type StatusResponse struct {
	Code         string    `json:"code"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// ToPaymentResponse masks the card number down to its last four digits;
// the full PAN never leaves the service.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		AuthorizedAmount: p.AuthorizedAmount,
		CapturedAmount:   p.CapturedAmount,
		Currency:         p.Currency,
		CardNumber:       maskCardNumber(p.Card.Number),
		CreatedAt:        p.CreatedAt,
		Status: StatusResponse{
			Code:         string(p.Status.Code),
			UpdatedAt:    p.Status.UpdatedAt,
			ErrorMessage: p.Status.ErrorMessage,
		},
		Version: p.Version,
	}
}

func maskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "************" + number[len(number)-4:]
}
