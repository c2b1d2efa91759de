package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cardworks/payment-gateway/internal/domain"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WriteError maps domain errors to HTTP responses. Anything outside the
// domain taxonomy is reported as a redacted 500; the cause goes to the log
// only.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		writeUnexpected(w, err, logger)
		return
	}

	var statusCode int
	switch domainErr.Code {
	case domain.ErrCodeCardValidation,
		domain.ErrCodeAmountViolation,
		domain.ErrCodeStatusConflict:
		statusCode = http.StatusBadRequest
	case domain.ErrCodePaymentNotFound:
		statusCode = http.StatusNotFound
	case domain.ErrCodeConcurrentModification:
		statusCode = http.StatusConflict
	default:
		writeUnexpected(w, err, logger)
		return
	}

	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    domainErr.Code,
			Message: domainErr.Message,
			Field:   domainErr.Field,
		},
	})
}

func writeUnexpected(w http.ResponseWriter, err error, logger *slog.Logger) {
	logger.Error("unexpected error", "error", err)

	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    domain.ErrCodeUnexpected,
			Message: "An unexpected error occurred.",
		},
	})
}
