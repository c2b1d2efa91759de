package handlers

import (
	"net/http"

	"github.com/cardworks/payment-gateway/internal/application/services"
	"github.com/cardworks/payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) Authorize(w http.ResponseWriter, r *http.Request) {
	var req rest.AuthorizeRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteBadRequest(w, "invalid authorize payload")
		return
	}

	cmd := services.AuthorizeCommand{
		Amount:     req.Amount,
		Currency:   req.Currency,
		CardNumber: req.CardNumber,
		ExpMonth:   req.ExpirationMonth,
		ExpYear:    req.ExpirationYear,
		CVV:        req.CVV,
	}

	result, err := h.authorizeService.Authorize(r.Context(), cmd)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteSuccess(w, http.StatusCreated, rest.AuthorizeResponse{
		ID:       result.ID,
		Amount:   result.Amount,
		Currency: result.Currency,
	})
}
