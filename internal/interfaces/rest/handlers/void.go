package handlers

import (
	"net/http"

	"github.com/cardworks/payment-gateway/internal/application/services"
	"github.com/cardworks/payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) Void(w http.ResponseWriter, r *http.Request) {
	var req rest.VoidRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteBadRequest(w, "invalid void payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteBadRequest(w, "authorizationId is required")
		return
	}

	result, err := h.voidService.Void(r.Context(), services.VoidCommand{
		AuthorizationID: req.AuthorizationID,
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
