// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const userIDPattern = "/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecovery, h.withNotFoundEnvelope, h.withAppVersion)

	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{"Location", traceIDHeader, appVersionHeader},
			MaxAge:         300,
		}))
	}

	if h.cfg.RateLimit > 0 {
		router.Use(h.withRateLimit(newRateLimiter(h.cfg.RateLimit, h.cfg.RateBurst)))
	}

	router.NotFound(h.resourceNotFound)
	router.MethodNotAllowed(h.resourceNotFound)

	// every /users route requires a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get(userIDPattern, h.getUser)
			r.Put(userIDPattern, h.updateUser)
			r.Delete(userIDPattern, h.deleteUser)
		})
	})

	return router
}
