// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
)

// userService delegates to a [store.UserStorage] and translates storage
// errors into service errors. Input validation lives in
// [UserValidationService], which wraps this service.
type userService struct {
	storage store.UserStorage
	logger  *logger.Logger
}

func NewUserService(storage store.UserStorage, logger *logger.Logger) UserService {
	return &userService{
		storage: storage,
		logger:  logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, params models.ListParams) ([]models.User, error) {
	users, err := s.storage.List(ctx, params)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		return models.User{}, s.mapStorageError(ctx, "*userService.GetUser", id, err)
	}

	return user, nil
}

// CreateUser ignores any id supplied by the caller; the storage assigns one.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = 0

	created, err := s.storage.Create(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.CreateUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	updated, err := s.storage.Update(ctx, user)
	if err != nil {
		return models.User{}, s.mapStorageError(ctx, "*userService.UpdateUser", user.ID, err)
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.storage.Delete(ctx, id); err != nil {
		return s.mapStorageError(ctx, "*userService.DeleteUser", id, err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) mapStorageError(ctx context.Context, funcName string, id int64, err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("user_id", id).Msg("storage call failed")
	return fmt.Errorf("storage call failed: %w", err)
}
