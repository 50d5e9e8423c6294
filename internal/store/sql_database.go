// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/migrations"
)

// DB wraps a database/sql pool together with the dialect-specific pieces the
// repositories need: the squirrel statement builder and the unique
// constraint classifier.
type DB struct {
	*sql.DB
	driver            string
	builder           sq.StatementBuilderType
	isUniqueViolation func(error) bool
	logger            *logger.Logger
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.isUniqueViolation = isSQLiteUniqueViolation
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.isUniqueViolation = isPostgresUniqueViolation
	}

	return db
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
