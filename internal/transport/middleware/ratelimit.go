package middleware

import (
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/heartmarshall/foodgram-backend/internal/config"
)

// RateLimit limits requests per client IP within a sliding window.
// A non-positive request count disables limiting.
func RateLimit(cfg config.RateLimitConfig) Middleware {
	if cfg.Requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"detail":"Request was throttled."}`))
		}),
	)
}
