package mwratelimit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apireq "shareit/internal/lib/api/request"
	"shareit/internal/lib/api/response"
	"shareit/internal/lib/logger/sl"
	"shareit/internal/metrics"
	"shareit/internal/ratelimit"
)

// New returns a middleware that rejects requests over the caller's budget
// with 429. Callers are keyed by the user header when present, otherwise
// by remote address. Limiter failures let the request through.
func New(log *slog.Logger, limiter ratelimit.Limiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/ratelimit"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(apireq.UserHeader)
			if key == "" {
				key = r.RemoteAddr
			}

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.Error("rate limiter unavailable", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				metrics.IncRateLimited()
				log.Warn("request rate limited", slog.String("key", key))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
