package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/xavierca1/site-forms/internal/entity"
)

// RateLimiter counts form posts per client IP over a sliding window.
type RateLimiter struct {
	limiter *httprate.RateLimiter
}

// NewRateLimiter keys on RemoteAddr, which chi's RealIP middleware has
// already rewritten from the proxy headers.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiter: httprate.NewRateLimiter(limit, window,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(tooManyRequests),
		),
	}
}

// Limit rejects requests over the limit with 429 and a failed Result body.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return rl.limiter.Handler(next)
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	json.NewEncoder(w).Encode(entity.Failed(entity.MsgTooManyRequests))
}
