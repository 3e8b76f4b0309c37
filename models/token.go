// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a verified JWT together with its registered claims.
//
// It embeds [jwt.Token] for low-level access (header, signature, validity)
// and [jwt.RegisteredClaims] for the standard claim set. Downstream handlers
// do not make authorization decisions based on the claims; they are kept in
// the request context for logging and future ownership checks.
type Token struct {
	// Token is the parsed JWT. Excluded from JSON serialization.
	*jwt.Token `json:"-"`

	// RegisteredClaims is the standard claim set (iss, sub, aud, exp, nbf, iat, jti).
	jwt.RegisteredClaims

	// SignedString is the compact serialized form the token was parsed from.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenValidationParams is the process-wide bundle used to verify every
// inbound bearer token. It is built once at startup and never mutated.
type TokenValidationParams struct {
	// Issuer is the expected "iss" claim.
	Issuer string

	// Audience is the value that must be present in the "aud" claim.
	Audience string

	// SignKey is the shared HMAC secret used to verify token signatures.
	SignKey string

	// ValidateLifetime enables the "exp"/"nbf" checks. When false, expired
	// tokens are accepted as long as signature, issuer and audience match.
	ValidateLifetime bool

	// ClockSkew is the leeway applied to time-based claims.
	ClockSkew time.Duration
}
