// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyEmail), want: http.StatusBadRequest},
		{name: "invalid JSON", err: fmt.Errorf("%w: EOF", ErrInvalidJSONBody), want: http.StatusBadRequest},
		{name: "service not found", err: fmt.Errorf("%w: id 3", service.ErrUserNotFound), want: http.StatusNotFound},
		{name: "store not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "expired token", err: service.ErrTokenIsExpired, want: http.StatusUnauthorized},
		{name: "sql failure", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("unknown"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		userID   int64
		wantCode int
		wantBody string
	}{
		{
			name:     "validation message",
			err:      fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmailFormat),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid email format."}`,
		},
		{
			name:     "bad skip",
			err:      fmt.Errorf("%w: strconv.Atoi", ErrInvalidSkip),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"query parameter 'skip' must be an integer."}`,
		},
		{
			name:     "not found names id",
			err:      service.ErrUserNotFound,
			userID:   12,
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"User with id 12 not found."}`,
		},
		{
			name:     "unauthorized has no body",
			err:      service.ErrTokenIsExpiredOrInvalid,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "internal detail hidden",
			err:      errors.New("pq: password authentication failed"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, httptest.NewRequest(http.MethodGet, "/users", nil), tt.err, tt.userID)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}
