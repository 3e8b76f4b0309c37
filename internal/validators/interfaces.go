// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules applied to user records before
// they reach storage.
//
// Rule violations are reported as *ValidationError values whose message is
// returned to API clients as is; every other error signals misuse
// (unsupported type, unknown field).
package validators

import "context"

// Validator validates arbitrary input values and optionally restricts the
// check to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
