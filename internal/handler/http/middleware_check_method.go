// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/utils"
)

// resourceNotFound is registered as both the NotFound and the
// MethodNotAllowed handler of the router: an unsupported method on a known
// path is answered with 404 instead of chi's default 405, hiding which
// methods a route accepts.
func (h *Handler) resourceNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, messageResourceNotFound, http.StatusNotFound)
}

// withNotFoundEnvelope replaces any bodiless 404 written downstream with the
// {"error": "Resource not found."} envelope. A 404 that carries a body is
// passed through untouched.
func (h *Handler) withNotFoundEnvelope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nw := &notFoundWriter{ResponseWriter: w}

		next.ServeHTTP(nw, r)

		if nw.pending {
			utils.WriteError(w, messageResourceNotFound, http.StatusNotFound)
		}
	})
}

// notFoundWriter holds back a 404 status until it knows whether a body follows.
type notFoundWriter struct {
	http.ResponseWriter

	pending bool
	written bool
}

func (w *notFoundWriter) WriteHeader(statusCode int) {
	if w.written || w.pending {
		return
	}
	if statusCode == http.StatusNotFound {
		w.pending = true
		return
	}
	w.written = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *notFoundWriter) Write(b []byte) (int, error) {
	if w.pending {
		w.pending = false
		w.written = true
		w.ResponseWriter.WriteHeader(http.StatusNotFound)
	}
	w.written = true
	return w.ResponseWriter.Write(b)
}

func (w *notFoundWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
