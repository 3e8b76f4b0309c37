// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

const (
	maxCreateAttempts = 3
	createRetryDelay  = 20 * time.Millisecond
)

// userRepository is the SQL-backed implementation of [UserStorage] used when
// a database DSN is configured. It works with both PostgreSQL and SQLite;
// dialect differences are carried by [DB].
//
// Ids are computed by the INSERT itself (see [buildCreateUserQuery]).
// Writes from this process are serialized by writeMu; collisions with other
// processes surface as [Conflict] errors and the insert is repeated.
type userRepository struct {
	db      *DB
	writeMu sync.Mutex
	logger  *logger.Logger
}

// NewUserRepository constructs a [UserStorage] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserStorage {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// List returns an empty, non-nil slice when the window holds no users.
func (r *userRepository) List(ctx context.Context, params models.ListParams) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder(), params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*userRepository.List").
			Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.ID, &user.Username, &user.Email); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*userRepository.List").
				Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*userRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (models.User, error) {
	query, args, err := buildGetUserQuery(r.db.builder(), id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.Get", query, args...)
}

// Create retries the insert when the computed id was taken by another
// writer or the driver reports a transient failure.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	var lastErr error
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		created, createErr := r.queryUser(ctx, "*userRepository.Create", query, args...)
		if createErr == nil {
			log.Debug().
				Str("func", "*userRepository.Create").
				Int64("user_id", created.ID).
				Int("attempt", attempt).
				Msg("user stored")
			return created, nil
		}

		switch r.db.classify(createErr) {
		case Conflict, Retryable:
			lastErr = createErr
			log.Warn().
				Err(createErr).
				Str("func", "*userRepository.Create").
				Int("attempt", attempt).
				Msg("retrying user insert")
		default:
			return models.User{}, createErr
		}

		if attempt == maxCreateAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return models.User{}, ctx.Err()
		case <-time.After(createRetryDelay * time.Duration(attempt)):
		}
	}

	return models.User{}, fmt.Errorf("%w: %w", ErrUserNotSaved, lastErr)
}

func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildUpdateUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	return r.queryUser(ctx, "*userRepository.Update", query, args...)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	result, execErr := r.db.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "*userRepository.Delete").
			Int64("user_id", id).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// queryUser runs a statement returning a single (id, username, email) row.
// No row maps to ErrUserNotFound.
func (r *userRepository) queryUser(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	var user models.User

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Msg("failed to execute user query")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
