// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

// Statement builders per placeholder style.
var (
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

// DB wraps a *sql.DB together with everything the repositories need to talk
// to a concrete database engine: the statement builder with the engine's
// placeholder format and the classifier of its driver errors.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            string
}

// Migrate applies pending schema migrations for the engine of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify returns the classification of a driver error. Unknown engines
// leave every error unclassified.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
