// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerService struct {
	listFn   func(ctx context.Context, params models.ListParams) ([]models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	createFn func(ctx context.Context, user models.User) (models.User, error)
	updateFn func(ctx context.Context, user models.User) (models.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockInnerService) ListUsers(ctx context.Context, params models.ListParams) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, params)
	}
	return []models.User{}, nil
}
func (m *mockInnerService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.User{ID: id}, nil
}
func (m *mockInnerService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}
func (m *mockInnerService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return user, nil
}
func (m *mockInnerService) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newValidationService(inner UserService) UserService {
	return NewUserValidationService().Wrap(inner)
}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

func TestUserValidationService_CreateUser_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantMsg string
	}{
		{name: "empty username", user: models.User{Username: "  ", Email: "a@x.io"}, wantMsg: "username must not be empty."},
		{name: "empty email", user: models.User{Username: "a", Email: ""}, wantMsg: "email must not be empty."},
		{name: "bad email", user: models.User{Username: "a", Email: "a@x"}, wantMsg: "invalid email format."},
		{name: "username checked first", user: models.User{}, wantMsg: "username must not be empty."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := newValidationService(&mockInnerService{
				createFn: func(ctx context.Context, user models.User) (models.User, error) {
					called = true
					return user, nil
				},
			})

			_, err := svc.CreateUser(context.Background(), tt.user)
			require.ErrorIs(t, err, ErrInvalidDataProvided)

			var vErr *validators.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantMsg, vErr.Error())
			assert.False(t, called, "inner service must not be called")
		})
	}
}

func TestUserValidationService_CreateUser_Valid_Delegates(t *testing.T) {
	svc := newValidationService(&mockInnerService{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			user.ID = 5
			return user, nil
		},
	})

	got, err := svc.CreateUser(context.Background(), models.User{Username: "a", Email: "a@x.io"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

// ─────────────────────────────────────────────
// UpdateUser
// ─────────────────────────────────────────────

func TestUserValidationService_UpdateUser_MissingUserBeforeValidation(t *testing.T) {
	updateCalled := false
	svc := newValidationService(&mockInnerService{
		getFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{}, ErrUserNotFound
		},
		updateFn: func(ctx context.Context, user models.User) (models.User, error) {
			updateCalled = true
			return user, nil
		},
	})

	_, err := svc.UpdateUser(context.Background(), models.User{ID: 9})
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, updateCalled)
}

func TestUserValidationService_UpdateUser_Invalid(t *testing.T) {
	updateCalled := false
	svc := newValidationService(&mockInnerService{
		updateFn: func(ctx context.Context, user models.User) (models.User, error) {
			updateCalled = true
			return user, nil
		},
	})

	_, err := svc.UpdateUser(context.Background(), models.User{ID: 1, Username: "a", Email: "bad"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, updateCalled)
}

func TestUserValidationService_UpdateUser_Valid(t *testing.T) {
	svc := newValidationService(&mockInnerService{})

	user := models.User{ID: 1, Username: "a", Email: "a@x.io"}
	got, err := svc.UpdateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

// ─────────────────────────────────────────────
// Pass-through methods
// ─────────────────────────────────────────────

func TestUserValidationService_PassThrough(t *testing.T) {
	innerErr := errors.New("inner")
	svc := newValidationService(&mockInnerService{
		listFn: func(ctx context.Context, params models.ListParams) ([]models.User, error) {
			return nil, innerErr
		},
		getFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{}, innerErr
		},
		deleteFn: func(ctx context.Context, id int64) error {
			return innerErr
		},
	})

	_, err := svc.ListUsers(context.Background(), models.ListParams{})
	assert.ErrorIs(t, err, innerErr)
	_, err = svc.GetUser(context.Background(), 1)
	assert.ErrorIs(t, err, innerErr)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1), innerErr)
}
