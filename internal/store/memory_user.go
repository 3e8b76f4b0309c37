// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

// memoryUserStorage keeps users in a slice ordered by id.
//
// Appending max(id)+1 keeps the slice sorted, so insertion order and id
// order coincide. A single RWMutex guards the slice: readers share it,
// Create/Update/Delete hold it exclusively for the whole
// read-compute-write sequence.
type memoryUserStorage struct {
	mu     sync.RWMutex
	users  []models.User
	logger *logger.Logger
}

// NewMemoryUserStorage constructs an empty, non-persistent [UserStorage].
func NewMemoryUserStorage(logger *logger.Logger) UserStorage {
	logger.Debug().Msg("creating in-memory user storage")
	return &memoryUserStorage{
		users:  make([]models.User, 0),
		logger: logger,
	}
}

func (s *memoryUserStorage) List(ctx context.Context, params models.ListParams) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lo, hi := window(len(s.users), params)
	page := make([]models.User, hi-lo)
	copy(page, s.users[lo:hi])

	return page, nil
}

func (s *memoryUserStorage) Get(ctx context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.indexOf(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return s.users[i], nil
}

func (s *memoryUserStorage) Create(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = 1
	if n := len(s.users); n > 0 {
		user.ID = s.users[n-1].ID + 1
	}
	s.users = append(s.users, user)

	logger.FromContext(ctx).Debug().
		Str("func", "*memoryUserStorage.Create").
		Int64("user_id", user.ID).
		Msg("user stored")

	return user, nil
}

func (s *memoryUserStorage) Update(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.indexOf(user.ID)
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	s.users[i].Username = user.Username
	s.users[i].Email = user.Email

	return s.users[i], nil
}

func (s *memoryUserStorage) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.indexOf(id)
	if !ok {
		return ErrUserNotFound
	}

	s.users = slices.Delete(s.users, i, i+1)
	return nil
}

// indexOf must be called with s.mu held.
func (s *memoryUserStorage) indexOf(id int64) (int, bool) {
	return slices.BinarySearchFunc(s.users, id, func(u models.User, id int64) int {
		return cmp.Compare(u.ID, id)
	})
}

// window converts params into [lo, hi) bounds over a collection of n items.
// Negative skip is treated as zero, negative take as an empty page and a nil
// take as "up to the end".
func window(n int, params models.ListParams) (int, int) {
	lo := min(max(params.Skip, 0), n)
	if params.Take == nil {
		return lo, n
	}

	take := max(*params.Take, 0)
	if take > n-lo {
		return lo, n
	}
	return lo, lo + take
}
