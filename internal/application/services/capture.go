package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/cardworks/payment-gateway/internal/application"
	"github.com/cardworks/payment-gateway/internal/domain"
)

type CaptureService struct {
	paymentRepo application.PaymentRepository
	bankGateway application.BankGateway
	faults      application.FaultInjector
	logger      *slog.Logger
}

func NewCaptureService(
	paymentRepo application.PaymentRepository,
	bankGateway application.BankGateway,
	faults application.FaultInjector,
	logger *slog.Logger,
) *CaptureService {
	return &CaptureService{
		paymentRepo: paymentRepo,
		bankGateway: bankGateway,
		faults:      faults,
		logger:      logger,
	}
}

// Capture moves captured funds toward the authorized ceiling. A gateway
// decline is persisted as a REJECTED status before the failure is reported,
// so callers must not assume an error implies no state change.
func (s *CaptureService) Capture(ctx context.Context, cmd CaptureCommand) (*OperationResult, error) {
	payment, err := s.paymentRepo.FindByID(ctx, cmd.AuthorizationID)
	if err != nil {
		return nil, err
	}

	if err := s.faults.Capture(payment.Card.Number); err != nil {
		s.logger.Debug("capture fault injected", "payment_id", payment.ID, "error", err)
		return nil, domain.NewUnexpectedError(err)
	}

	if err := payment.CanCapture(); err != nil {
		s.logger.Error("invalid payment status for capture",
			"payment_id", payment.ID,
			"status", payment.Status.Code,
		)
		return nil, err
	}

	if err := payment.ValidateCaptureAmount(cmd.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	bankResp, err := s.bankGateway.Capture(ctx, cmd.Amount)
	if err != nil {
		// An unreachable or timed-out gateway is treated as a decline:
		// the record must not be left in an inconsistent status and the
		// call is never retried here.
		payment.RejectCapture("settlement gateway unavailable", now)
		if saveErr := s.paymentRepo.Save(ctx, payment); saveErr != nil {
			return nil, saveErr
		}
		return nil, domain.NewUnexpectedError(err)
	}

	if !bankResp.IsSuccess() {
		payment.RejectCapture(bankResp.ErrorMessage, now)
		if saveErr := s.paymentRepo.Save(ctx, payment); saveErr != nil {
			return nil, saveErr
		}
		s.logger.Info("capture declined by gateway",
			"payment_id", payment.ID,
			"reason", bankResp.ErrorMessage,
		)
		return nil, domain.NewAmountViolationError(bankResp.ErrorMessage)
	}

	payment.Accept(cmd.Amount, now)
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment captured",
		"payment_id", payment.ID,
		"amount", cmd.Amount,
		"remaining", payment.Headroom(),
	)

	return &OperationResult{
		Amount:   payment.Headroom(),
		Currency: payment.Currency,
	}, nil
}
