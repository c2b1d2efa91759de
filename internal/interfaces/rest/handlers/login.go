package handlers

import (
	"errors"
	"net/http"

	"github.com/cardworks/payment-gateway/internal/auth"
	"github.com/cardworks/payment-gateway/internal/interfaces/rest"
)

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req rest.LoginRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		rest.WriteBadRequest(w, "invalid login payload")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteBadRequest(w, "clientId and clientSecret are required")
		return
	}

	token, err := h.tokenIssuer.Authenticate(req.ClientID, req.ClientSecret)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			rest.WriteJSON(w, http.StatusUnauthorized, rest.ErrorResponse{
				Error: rest.ErrorDetail{
					Code:    "INVALID_CREDENTIALS",
					Message: "invalid client credentials",
				},
			})
			return
		}
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteSuccess(w, http.StatusOK, rest.LoginResponse{Token: token})
}
