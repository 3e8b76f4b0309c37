// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidTokenConfigs indicates that the token sign key, issuer or
	// audience is missing.
	ErrInvalidTokenConfigs = errors.New("invalid token configuration: sign key, issuer and audience are required")
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration: address is required")
	// ErrInvalidRateLimitConfigs indicates a negative rate limit or burst.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
