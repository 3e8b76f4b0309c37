// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

// authService is the concrete implementation of AuthService.
// Tokens are issued elsewhere; this service only verifies them against the
// parameters loaded at startup.
type authService struct {
	// params is read once at construction and never mutated.
	params models.TokenValidationParams

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService verifying tokens with params.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(params models.TokenValidationParams, logger *logger.Logger) AuthService {
	return &authService{
		params: params,
		logger: logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// issuer, audience and (unless disabled) lifetime. Failures are normalised so
// callers never see low-level JWT errors:
//   - expired tokens → ErrTokenIsExpired
//   - anything else  → ErrTokenIsExpiredOrInvalid
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.params)
	if err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "*authService.ParseToken").
			Msg("bearer token rejected")

		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
