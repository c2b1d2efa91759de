package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/cardworks/payment-gateway/internal/application"
	"github.com/cardworks/payment-gateway/internal/domain"
	"github.com/google/uuid"
)

type AuthorizeService struct {
	paymentRepo application.PaymentRepository
	faults      application.FaultInjector
	logger      *slog.Logger
}

func NewAuthorizeService(
	paymentRepo application.PaymentRepository,
	faults application.FaultInjector,
	logger *slog.Logger,
) *AuthorizeService {
	return &AuthorizeService{
		paymentRepo: paymentRepo,
		faults:      faults,
		logger:      logger,
	}
}

// Authorize creates a new payment record and reserves funds up to the
// requested ceiling. Validation runs before any persistence call, so no
// partial state is ever created for structurally invalid input.
func (s *AuthorizeService) Authorize(ctx context.Context, cmd AuthorizeCommand) (*AuthorizeResult, error) {
	if err := s.faults.Authorize(cmd.CardNumber); err != nil {
		s.logger.Debug("authorization fault injected", "error", err)
		return nil, domain.NewUnexpectedError(err)
	}

	now := time.Now().UTC()
	card := domain.Card{
		Number:   cmd.CardNumber,
		ExpMonth: cmd.ExpMonth,
		ExpYear:  cmd.ExpYear,
		CVV:      cmd.CVV,
	}
	payment := domain.NewPayment(uuid.New().String(), cmd.Amount, cmd.Currency, card, now)

	if err := payment.ValidateCard(now); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment authorized",
		"payment_id", payment.ID,
		"amount", payment.AuthorizedAmount,
		"currency", payment.Currency,
	)

	return &AuthorizeResult{
		ID:       payment.ID,
		Amount:   payment.AuthorizedAmount,
		Currency: payment.Currency,
	}, nil
}
