package handlers

import (
	"net/http"

	"github.com/cardworks/payment-gateway/internal/application/services"
	"github.com/cardworks/payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) Capture(w http.ResponseWriter, r *http.Request) {
	var req rest.CaptureRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteBadRequest(w, "invalid capture payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteBadRequest(w, "authorizationId is required")
		return
	}

	result, err := h.captureService.Capture(r.Context(), services.CaptureCommand{
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
