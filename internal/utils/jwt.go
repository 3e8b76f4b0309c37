// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-registry/models"
	"github.com/golang-jwt/jwt/v5"
)

// hmacMethods lists the signing algorithms accepted for bearer tokens.
var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): the single intended recipient
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// A negative tokenDuration produces an already expired token.
// Issuance is handled by an external identity provider in production; this
// function exists for tooling and tests.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("idp", "user-registry", 42, time.Hour, "secret")
func GenerateJWTToken(issuer, audience string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || audience == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Audience:  jwt.ClaimStrings{audience},
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString against params and returns
// the parsed token with its registered claims.
//
// Checks performed:
//   - signature (HS256/HS384/HS512 only) with params.SignKey
//   - "iss" equals params.Issuer
//   - "aud" contains params.Audience
//   - "exp" is present and not in the past, "nbf" is not in the future,
//     both with params.ClockSkew leeway; skipped when params.ValidateLifetime is false
//
// Errors wrap the jwt sentinel errors (jwt.ErrTokenExpired,
// jwt.ErrTokenInvalidIssuer, ...) so callers can tell failures apart.
func ValidateAndParseJWTToken(tokenString string, params models.TokenValidationParams) (models.Token, error) {
	if params.SignKey == "" {
		return models.Token{}, errors.New("empty token sign key")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods(hmacMethods)}
	if params.ValidateLifetime {
		opts = append(opts,
			jwt.WithIssuer(params.Issuer),
			jwt.WithAudience(params.Audience),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(params.ClockSkew),
		)
	} else {
		// jwt/v5 has no switch for the time-based checks alone, so issuer
		// and audience are verified by hand below.
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &models.Token{}
	token, err := jwt.NewParser(opts...).ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if !params.ValidateLifetime {
		if claims.Issuer != params.Issuer {
			return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", jwt.ErrTokenInvalidIssuer)
		}
		if !slices.Contains(claims.Audience, params.Audience) {
			return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", jwt.ErrTokenInvalidAudience)
		}
	}

	return models.Token{Token: token, RegisteredClaims: claims.RegisteredClaims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the credential from an Authorization header
// value of the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
