// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

const (
	testIssuer     = "registry-tests"
	testAudience   = "users-api"
	testSignKey    = "test-sign-key"
	testAppVersion = "v1.2.3"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testTokenParams() models.TokenValidationParams {
	return models.TokenValidationParams{
		Issuer:           testIssuer,
		Audience:         testAudience,
		SignKey:          testSignKey,
		ValidateLifetime: true,
	}
}

// newMemoryServices wires the real service stack over an in-memory store.
func newMemoryServices() *service.Services {
	return &service.Services{
		AuthService: service.NewAuthService(testTokenParams(), logger.Nop()),
		UserService: service.NewUserValidationService().Wrap(
			service.NewUserService(store.NewMemoryUserStorage(logger.Nop()), logger.Nop()),
		),
		AppInfoService: service.NewAppInfoService(testAppVersion, models.NewAppBuildInfo("", "", ""), logger.Nop()),
	}
}

func newTestRouter(t *testing.T, cfg config.Server) http.Handler {
	t.Helper()
	return NewHandler(newMemoryServices(), cfg, logger.Nop()).Init()
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, testAudience, 1, time.Hour, testSignKey)
	require.NoError(t, err)
	return token.SignedString
}

func doRequest(t *testing.T, router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), "body: %s", rr.Body.String())
	return envelope.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	cfg := config.Server{RateLimit: 5}
	log := logger.Nop()

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
