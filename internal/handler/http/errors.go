// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// Bearer scheme but no token value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request decoding errors.
var (
	ErrInvalidJSONBody = errors.New("invalid JSON body")
	ErrInvalidSkip     = errors.New("invalid `skip` query parameter")
	ErrInvalidTake     = errors.New("invalid `take` query parameter")
)

const (
	messageInternalServerError = "Internal server error."
	messageResourceNotFound    = "Resource not found."
	messageTooManyRequests     = "Too many requests."
	messageUserNotFound        = "User with id %d not found."
)
