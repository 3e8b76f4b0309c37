// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-user-registry/models"
)

// Field names accepted by [UserValidator.Validate].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

// emailPattern accepts the simple local@domain.tld shape. Parts may not
// contain any whitespace, including \v, NEL and Unicode space separators.
var emailPattern = regexp.MustCompile(`^[^@[:space:]\x{85}\p{Z}]+@[^@[:space:]\x{85}\p{Z}]+\.[^@[:space:]\x{85}\p{Z}]+$`)

// UserValidator checks candidate user records before create and update.
// It is stateless and safe for concurrent use.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User or *models.User.
//
// Rules are checked in order and the first failure wins:
//  1. username empty or whitespace-only → ErrEmptyUsername
//  2. email empty or whitespace-only → ErrEmptyEmail
//  3. email not shaped like local@domain.tld → ErrInvalidEmailFormat
//
// Optional fields restrict validation to the named subset.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(user.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
			if !emailPattern.MatchString(user.Email) {
				return ErrInvalidEmailFormat
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
