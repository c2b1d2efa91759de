package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/cardworks/payment-gateway/internal/application"
)

type VoidService struct {
	paymentRepo application.PaymentRepository
	logger      *slog.Logger
}

func NewVoidService(
	paymentRepo application.PaymentRepository,
	logger *slog.Logger,
) *VoidService {
	return &VoidService{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Void cancels an authorization that was never captured, releasing the full
// hold. No funds move, so the gateway is not involved.
func (s *VoidService) Void(ctx context.Context, cmd VoidCommand) (*OperationResult, error) {
	payment, err := s.paymentRepo.FindByID(ctx, cmd.AuthorizationID)
	if err != nil {
		return nil, err
	}

	if err := payment.CanVoid(); err != nil {
		s.logger.Error("invalid payment status for void",
			"payment_id", payment.ID,
			"status", payment.Status.Code,
		)
		return nil, err
	}

	payment.Cancel(time.Now().UTC())
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment voided", "payment_id", payment.ID)

	return &OperationResult{
		Amount:   payment.AuthorizedAmount,
		Currency: payment.Currency,
	}, nil
}
