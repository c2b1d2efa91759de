// Package handlers exposes the payment operations over HTTP.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cardworks/payment-gateway/internal/application/services"
	"github.com/cardworks/payment-gateway/internal/auth"
	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	authorizeService *services.AuthorizeService
	captureService   *services.CaptureService
	refundService    *services.RefundService
	voidService      *services.VoidService
	queryService     *services.QueryService
	tokenIssuer      *auth.TokenIssuer
	validate         *validator.Validate
	logger           *slog.Logger
}

func NewHandlers(
	authorizeService *services.AuthorizeService,
	captureService *services.CaptureService,
	refundService *services.RefundService,
	voidService *services.VoidService,
	queryService *services.QueryService,
	tokenIssuer *auth.TokenIssuer,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		authorizeService: authorizeService,
		captureService:   captureService,
		refundService:    refundService,
		voidService:      voidService,
		queryService:     queryService,
		tokenIssuer:      tokenIssuer,
		validate:         validator.New(),
		logger:           logger,
	}
}

func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/authorize", h.Authorize)
	mux.HandleFunc("POST /api/capture", h.Capture)
	mux.HandleFunc("POST /api/refund", h.Refund)
	mux.HandleFunc("POST /api/void", h.Void)
	mux.HandleFunc("GET /api/payments/{id}", h.GetPayment)
}
