// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
)

// newRateLimiter builds a process-wide token bucket admitting perSecond
// requests with the given burst (at least 1).
func newRateLimiter(perSecond float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
}

// withRateLimit rejects requests with 429 once limiter runs dry.
func (h *Handler) withRateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.FromRequest(r).Warn().Str("func", "*Handler.withRateLimit").Msg("rate limit exceeded")
				w.Header().Set("Retry-After", "1")
				utils.WriteError(w, messageTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
