// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserStorage is the persistence abstraction for user records.
//
// Implementations assign ids on Create as max(existing id) + 1 (1 for an
// empty collection) and must be safe for concurrent use: two concurrent
// Create calls never observe the same maximum.
type UserStorage interface {
	// List returns users in ascending id order, windowed by params.
	// The result is never nil.
	List(ctx context.Context, params models.ListParams) ([]models.User, error)

	// Get returns the user with the given id or ErrUserNotFound.
	Get(ctx context.Context, id int64) (models.User, error)

	// Create stores a new user, ignoring user.ID, and returns it with the
	// assigned id.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update replaces username and email of the user identified by user.ID
	// and returns the stored record, or ErrUserNotFound.
	Update(ctx context.Context, user models.User) (models.User, error)

	// Delete removes the user with the given id or returns ErrUserNotFound.
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator decides how a failed SQL operation should be handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
