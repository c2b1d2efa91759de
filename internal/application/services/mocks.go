package services

import (
	"context"
	"sync"

	"github.com/cardworks/payment-gateway/internal/application"
	"github.com/cardworks/payment-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// MockPaymentRepository is an in-memory repository for tests. It enforces
// the same optimistic-concurrency contract as the real adapter: Save fails
// with CONCURRENT_MODIFICATION when the expected version no longer matches.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]domain.Payment

	CreateFn   func(ctx context.Context, payment *domain.Payment) error
	FindByIDFn func(ctx context.Context, id string) (*domain.Payment, error)
	SaveFn     func(ctx context.Context, payment *domain.Payment) error

	SaveCalls int
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]domain.Payment),
	}
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = *payment
	return nil
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored, ok := m.payments[id]
	if !ok {
		return nil, domain.NewPaymentNotFoundError(id)
	}
	return &stored, nil
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveFn != nil {
		return m.SaveFn(ctx, payment)
	}
	stored, ok := m.payments[payment.ID]
	if !ok {
		return domain.NewPaymentNotFoundError(payment.ID)
	}
	if stored.Version != payment.Version {
		return domain.NewConcurrentModificationError(payment.ID)
	}
	payment.Version++
	m.payments[payment.ID] = *payment
	return nil
}

// Put stores the record directly, bypassing the version check. Tests use it
// to simulate a concurrent writer.
func (m *MockPaymentRepository) Put(payment domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
}

// Stored returns a copy of the persisted record, bypassing any overrides.
func (m *MockPaymentRepository) Stored(id string) (domain.Payment, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored, ok := m.payments[id]
	return stored, ok
}

// MockBankGateway answers success unless a response or error is queued.
type MockBankGateway struct {
	mu sync.Mutex

	CaptureFn func(ctx context.Context, amount decimal.Decimal) (*application.BankResponse, error)
	RefundFn  func(ctx context.Context, amount decimal.Decimal) (*application.BankResponse, error)

	CaptureCalls []decimal.Decimal
	RefundCalls  []decimal.Decimal
}

func NewMockBankGateway() *MockBankGateway {
	return &MockBankGateway{}
}

func (m *MockBankGateway) Capture(ctx context.Context, amount decimal.Decimal) (*application.BankResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CaptureCalls = append(m.CaptureCalls, amount)
	if m.CaptureFn != nil {
		return m.CaptureFn(ctx, amount)
	}
	return &application.BankResponse{}, nil
}

func (m *MockBankGateway) Refund(ctx context.Context, amount decimal.Decimal) (*application.BankResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefundCalls = append(m.RefundCalls, amount)
	if m.RefundFn != nil {
		return m.RefundFn(ctx, amount)
	}
	return &application.BankResponse{}, nil
}
