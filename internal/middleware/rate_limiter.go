package middleware

import (
	"net/http"

	"github.com/frenzyhq/frenzy-backend/internal/apperror"
	"github.com/frenzyhq/frenzy-backend/internal/config"
	"github.com/go-chi/httprate"
)

// RateLimitMessage is the fixed response body for throttled requests; it does
// not distinguish which sub-action tripped the limit.
const RateLimitMessage = "Too many requests, please try again later"

// RateLimit creates a middleware that caps requests per client IP over a
// sliding window. Counters live in process memory and reset when the window
// elapses, which is NOT safe across a multi-instance fleet; pass
// httprate.WithLimitCounter via extra to plug in a shared counter instead.
func RateLimit(limit config.RateLimit, responder *apperror.Responder, extra ...httprate.Option) func(http.Handler) http.Handler {
	opts := []httprate.Option{
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			responder.Write(w, apperror.TooManyRequests(RateLimitMessage))
		}),
	}
	opts = append(opts, extra...)
	return httprate.Limit(limit.Max, limit.Window, opts...)
}
