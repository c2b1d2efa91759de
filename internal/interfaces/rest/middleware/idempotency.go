package middleware

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status int
	body   []byte
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Idempotency replays the recorded response when a POST carries an
// Idempotency-Key header already seen. Requests without the header pass
// through untouched.
func Idempotency(store *cache.Cache, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("Idempotency-Key")
			if key == "" || r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			if cached, found := store.Get(key); found {
				response := cached.(cachedResponse)
				logger.Info("idempotency hit, replaying cached response", "key", key)

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Idempotency-Hit", "true")
				w.WriteHeader(response.status)
				w.Write(response.body)
				return
			}

			recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			// Server faults are transient; replaying them for the whole TTL
			// would pin a client to a stale failure. Only settled outcomes
			// are recorded.
			if recorder.status >= http.StatusInternalServerError {
				return
			}

			store.SetDefault(key, cachedResponse{
				status: recorder.status,
				body:   recorder.body.Bytes(),
			})
		})
	}
}
