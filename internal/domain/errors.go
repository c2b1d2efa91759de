package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeCardValidation         = "CARD_VALIDATION_FAILED"
	ErrCodeAmountViolation        = "AMOUNT_VIOLATION"
	ErrCodeStatusConflict         = "STATUS_CONFLICT"
	ErrCodePaymentNotFound        = "PAYMENT_NOT_FOUND"
	ErrCodeConcurrentModification = "CONCURRENT_MODIFICATION"
	ErrCodeUnexpected             = "UNEXPECTED"
)

func NewCardValidationError(message, field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCardValidation,
		Message: message,
		Field:   field,
	}
}

func NewAmountViolationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAmountViolation,
		Message: message,
	}
}

func NewStatusConflictError(action string, status PaymentStatusCode) *DomainError {
	return &DomainError{
		Code:    ErrCodeStatusConflict,
		Message: fmt.Sprintf("a payment cannot be %s because it is at %s status", action, status),
	}
}

func NewPaymentNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment authorization %s not found", id),
	}
}

func NewConcurrentModificationError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeConcurrentModification,
		Message: fmt.Sprintf("payment %s was modified by a concurrent operation", id),
	}
}

// NewUnexpectedError carries a generic message to callers; the cause stays
// reachable through Unwrap for internal logging only.
func NewUnexpectedError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnexpected,
		Message: "an unexpected error occurred",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
