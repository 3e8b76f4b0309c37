// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a user record managed by the registry.
//
// ID is assigned by the storage on creation and never changes afterwards.
// Username and Email are the only mutable attributes.
type User struct {
	// ID is the unique identifier of the user. Any value supplied by a
	// client on create or update is ignored.
	ID int64 `json:"id"`

	// Username must be non-empty and not whitespace-only.
	Username string `json:"username"`

	// Email must be non-empty and shaped like local@domain.tld.
	Email string `json:"email"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}
