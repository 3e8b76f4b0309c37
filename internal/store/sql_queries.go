// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"math"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-registry/models"
)

var usersTable = models.User{}.TableName()

const (
	columnID       = "id"
	columnUsername = "username"
	columnEmail    = "email"

	// nextUserID is evaluated in the same statement as the insert.
	nextUserID = "COALESCE(MAX(id), 0) + 1"

	returningUser = "RETURNING id, username, email"
)

var userColumns = []string{columnID, columnUsername, columnEmail}

// buildListUsersQuery selects a window of users ordered by id. LIMIT is
// always present because SQLite rejects OFFSET without it.
func buildListUsersQuery(b sq.StatementBuilderType, params models.ListParams) (string, []any, error) {
	offset := uint64(max(params.Skip, 0))
	limit := uint64(math.MaxInt64)
	if params.Take != nil {
		limit = uint64(max(*params.Take, 0))
	}

	return b.Select(userColumns...).
		From(usersTable).
		OrderBy(columnID + " ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

func buildGetUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

// buildCreateUserQuery inserts the user with id = max(id)+1 computed by the
// database. The explicit casts let PostgreSQL type the parameters of the
// INSERT ... SELECT form.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	nextID := sq.Select(nextUserID).
		Column("CAST(? AS TEXT)", user.Username).
		Column("CAST(? AS TEXT)", user.Email).
		From(usersTable)

	return b.Insert(usersTable).
		Columns(userColumns...).
		Select(nextID).
		Suffix(returningUser).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set(columnUsername, user.Username).
		Set(columnEmail, user.Email).
		Where(sq.Eq{columnID: user.ID}).
		Suffix(returningUser).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}
