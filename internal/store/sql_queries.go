// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-accounts/models"
)

const (
	usersTable    = "users"
	sessionsTable = "sessions"
)

var userColumns = []string{
	"id",
	"username",
	"email",
	"first_name",
	"last_name",
	"password_hash",
	"is_active",
	"date_joined",
}

var sessionColumns = []string{
	"session_key",
	"user_id",
	"created_at",
	"expires_at",
}

func returningUser() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "first_name", "last_name", "password_hash", "is_active", "date_joined").
		Values(user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.IsActive, user.DateJoined).
		Suffix(returningUser()).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType, offset, limit int) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").From(usersTable).ToSql()
}

// buildUpdateUserQuery writes only the non-nil fields of update. An update
// without fields is rejected by squirrel, so callers must check IsEmpty.
func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	query := b.Update(usersTable)

	if update.Username != nil {
		query = query.Set("username", *update.Username)
	}
	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.FirstName != nil {
		query = query.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		query = query.Set("last_name", *update.LastName)
	}
	if update.PasswordHash != nil {
		query = query.Set("password_hash", *update.PasswordHash)
	}

	return query.
		Where(sq.Eq{"id": update.ID}).
		Suffix(returningUser()).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(usersTable).Where(sq.Eq{"id": id}).ToSql()
}

func buildCreateSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(session.ID, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
}

func buildFindSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"session_key": id}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(sessionsTable).Where(sq.Eq{"session_key": id}).ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(sessionsTable).Where(sq.LtOrEq{"expires_at": now}).ToSql()
}
