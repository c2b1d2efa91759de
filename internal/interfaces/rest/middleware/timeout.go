package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cardworks/payment-gateway/internal/interfaces/rest"
)

// Timeout cancels the request context after the deadline and answers slow
// requests with the package's standard error envelope.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body, _ := json.Marshal(rest.ErrorResponse{
		Error: rest.ErrorDetail{
			Code:    "TIMEOUT",
			Message: "the request did not complete in time",
		},
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			http.TimeoutHandler(next, timeout, string(body)).ServeHTTP(w, r)
		})
	}
}
