// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the auth middleware stores the
// verified bearer token of the current request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, token)
var ClaimsCtxKey = contextKey("claims")

// GetClaimsFromContext retrieves the verified token stored by the auth
// middleware.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetClaimsFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(ClaimsCtxKey).(models.Token)
	return token, ok
}
