// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError is a rule violation whose message is safe to return to
// API clients verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrEmptyUsername      = &ValidationError{Field: FieldUsername, Message: "username must not be empty."}
	ErrEmptyEmail         = &ValidationError{Field: FieldEmail, Message: "email must not be empty."}
	ErrInvalidEmailFormat = &ValidationError{Field: FieldEmail, Message: "invalid email format."}
)
