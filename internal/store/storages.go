// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of user records.
//
// Two backends satisfy [UserStorage]: a synchronized in-memory slice (the
// default) and a SQL repository for PostgreSQL (pgx) or SQLite, selected by
// the configured DSN.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// Storages aggregates the storage components handed to the service layer.
type Storages struct {
	UserStorage UserStorage

	db *DB
}

// NewStorages selects the backend from cfg.DB.DSN:
//   - empty: in-memory storage, nothing survives a restart
//   - postgres:// or postgresql://: PostgreSQL through pgx
//   - anything else: SQLite database file
//
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" {
		log.Info().Str("func", "NewStorages").Msg("using in-memory user storage")
		return &Storages{UserStorage: NewMemoryUserStorage(log)}, nil
	}

	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		UserStorage: NewUserRepository(db, log),
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	case cfg.DSN != "":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
