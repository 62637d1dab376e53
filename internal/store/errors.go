// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT into users violates the
	// uniqueness of either the name or the email column.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAuthorNotFound is returned when a post references a user that does
	// not exist.
	ErrAuthorNotFound = errors.New("post author was not found")

	// ErrInvalidValue is returned when the database rejects a value because
	// of a CHECK constraint or a malformed literal (e.g. an unknown user type
	// or an invalid uuid).
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// database driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result
	// fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrAffectedRows is returned when the driver cannot report the number
	// of rows affected by a statement.
	ErrAffectedRows = errors.New("failed to get affected rows")
)
