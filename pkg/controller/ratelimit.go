package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// rateLimitedBody matches the API error format.
const rateLimitedBody = `{"code":"RATE_LIMITED","message":"too many requests"}`

// WithRateLimit limits every client IP to requests per window. A
// non-positive requests value disables limiting.
func WithRateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(rateLimitedBody))
		}),
	)
}
