package handlers

import (
	"net/http"

	"github.com/cardworks/payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	payment, err := h.queryService.FindByID(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteSuccess(w, http.StatusOK, rest.ToPaymentResponse(payment))
}
