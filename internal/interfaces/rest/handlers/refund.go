package handlers

import (
	"net/http"

	"github.com/cardworks/payment-gateway/internal/application/services"
	"github.com/cardworks/payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) Refund(w http.ResponseWriter, r *http.Request) {
	var req rest.RefundRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteBadRequest(w, "invalid refund payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteBadRequest(w, "authorizationId is required")
		return
	}

	result, err := h.refundService.Refund(r.Context(), services.RefundCommand{
		AuthorizationID: req.AuthorizationID,
		Amount:          req.Amount,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteSuccess(w, http.StatusOK, rest.OperationResponse{
		Amount:   result.Amount,
		Currency: result.Currency,
	})
}
