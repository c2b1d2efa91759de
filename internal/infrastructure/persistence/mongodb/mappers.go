package mongodb

import (
	"fmt"

	"github.com/cardworks/payment-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// toDocument: maps domain entity to db model
func toDocument(p *domain.Payment) *paymentDocument {
	return &paymentDocument{
		ID:               p.ID,
		AuthorizedAmount: p.AuthorizedAmount.String(),
		CapturedAmount:   p.CapturedAmount.String(),
		Currency:         p.Currency,
		CardNumber:       p.Card.Number,
		ExpirationMonth:  p.Card.ExpMonth,
		ExpirationYear:   p.Card.ExpYear,
		CVV:              p.Card.CVV,
		CreatedAt:        p.CreatedAt,
		Status: statusDocument{
			Code:         string(p.Status.Code),
			UpdatedAt:    p.Status.UpdatedAt,
			ErrorMessage: p.Status.ErrorMessage,
		},
		Version: p.Version,
	}
}

// toDomain: maps db model to domain entity
func toDomain(doc *paymentDocument) (*domain.Payment, error) {
	authorized, err := decimal.NewFromString(doc.AuthorizedAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid authorized amount %q: %w", doc.AuthorizedAmount, err)
	}
	captured, err := decimal.NewFromString(doc.CapturedAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid captured amount %q: %w", doc.CapturedAmount, err)
	}

	return domain.Reconstitute(
		doc.ID,
		authorized,
		captured,
		doc.Currency,
		domain.Card{
			Number:   doc.CardNumber,
			ExpMonth: doc.ExpirationMonth,
			ExpYear:  doc.ExpirationYear,
			CVV:      doc.CVV,
		},
		doc.CreatedAt,
		domain.PaymentStatus{
			Code:         domain.PaymentStatusCode(doc.Status.Code),
			UpdatedAt:    doc.Status.UpdatedAt,
			ErrorMessage: doc.Status.ErrorMessage,
		},
		doc.Version,
	), nil
}
