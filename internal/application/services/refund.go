package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/cardworks/payment-gateway/internal/application"
	"github.com/cardworks/payment-gateway/internal/domain"
)

type RefundService struct {
	paymentRepo application.PaymentRepository
	bankGateway application.BankGateway
	faults      application.FaultInjector
	logger      *slog.Logger
}

func NewRefundService(
	paymentRepo application.PaymentRepository,
	bankGateway application.BankGateway,
	faults application.FaultInjector,
	logger *slog.Logger,
) *RefundService {
	return &RefundService{
		paymentRepo: paymentRepo,
		bankGateway: bankGateway,
		faults:      faults,
		logger:      logger,
	}
}

// Refund returns previously captured funds. The settlement contract for
// refunds has no decline branch; only an unreachable gateway aborts, and in
// that case nothing is persisted.
func (s *RefundService) Refund(ctx context.Context, cmd RefundCommand) (*OperationResult, error) {
	payment, err := s.paymentRepo.FindByID(ctx, cmd.AuthorizationID)
	if err != nil {
		return nil, err
	}

	if err := s.faults.Refund(payment.Card.Number); err != nil {
		s.logger.Debug("refund fault injected", "payment_id", payment.ID, "error", err)
		return nil, domain.NewUnexpectedError(err)
	}

	if err := payment.CanRefund(); err != nil {
		s.logger.Error("invalid payment status for refund",
			"payment_id", payment.ID,
			"status", payment.Status.Code,
		)
		return nil, err
	}

	if err := payment.ValidateRefundAmount(cmd.Amount); err != nil {
		return nil, err
	}

	if _, err := s.bankGateway.Refund(ctx, cmd.Amount); err != nil {
		return nil, domain.NewUnexpectedError(err)
	}

	now := time.Now().UTC()
	payment.Refund(cmd.Amount, now)
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment refunded",
		"payment_id", payment.ID,
		"amount", cmd.Amount,
		"captured", payment.CapturedAmount,
	)

	return &OperationResult{
		Amount:   payment.Headroom(),
		Currency: payment.Currency,
	}, nil
}
