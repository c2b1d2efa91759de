package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/cardworks/payment-gateway/internal/application"
	"github.com/cardworks/payment-gateway/internal/application/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testCardNumber = "4000000000002115"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultAuthorizeCommand() services.AuthorizeCommand {
	return services.AuthorizeCommand{
		Amount:     decimal.NewFromInt(20),
		Currency:   "EUR",
		CardNumber: testCardNumber,
		ExpMonth:   11,
		ExpYear:    2031,
		CVV:        100,
	}
}

// createAuthorizedPayment authorizes a fresh payment through the real
// service so downstream tests start from a persisted AUTHORIZED record.
func createAuthorizedPayment(t *testing.T, repo *services.MockPaymentRepository) string {
	t.Helper()
	authorize := services.NewAuthorizeService(repo, application.NopFaultInjector{}, testLogger())

	result, err := authorize.Authorize(context.Background(), defaultAuthorizeCommand())
	require.NoError(t, err)
	require.NotEmpty(t, result.ID)

	return result.ID
}
