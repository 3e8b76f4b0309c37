// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the user registry HTTP API.
//
// The primary abstraction is [UsersClient]; [NewHTTPUsersClient] returns the
// resty-backed implementation. Error values defined in errors.go are mapped
// from HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// UsersClient defines remote access to the /users resource. Implementations
// attach the bearer token set via SetToken to every request.
type UsersClient interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none has been set.
	Token() string

	// List fetches users windowed by params.
	List(ctx context.Context, params models.ListParams) ([]models.User, error)

	// Get fetches a single user by id.
	Get(ctx context.Context, id int64) (models.User, error)

	// Create registers a new user and returns it with the server-assigned id.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update replaces username and email of the user identified by user.ID.
	Update(ctx context.Context, user models.User) (models.User, error)

	// Delete removes the user with the given id.
	Delete(ctx context.Context, id int64) error
}
