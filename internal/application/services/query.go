package services

import (
	"context"

	"github.com/cardworks/payment-gateway/internal/application"
	"github.com/cardworks/payment-gateway/internal/domain"
)

type QueryService struct {
	paymentRepo application.PaymentRepository
}

func NewQueryService(paymentRepo application.PaymentRepository) *QueryService {
	return &QueryService{paymentRepo: paymentRepo}
}

func (s *QueryService) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}
