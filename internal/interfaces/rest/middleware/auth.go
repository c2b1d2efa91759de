package middleware

import (
	"net/http"
	"strings"

	"github.com/cardworks/payment-gateway/internal/auth"
	"github.com/cardworks/payment-gateway/internal/interfaces/rest"
)

// Auth requires a valid bearer token on every route except the login
// endpoint, which is where tokens come from.
func Auth(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/login" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			if _, err := issuer.Verify(token); err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	rest.WriteJSON(w, http.StatusUnauthorized, rest.ErrorResponse{
		Error: rest.ErrorDetail{
			Code:    "UNAUTHORIZED",
			Message: message,
		},
	})
}
