// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPayloadNotFound is returned when a get, update or delete targets a
	// payload row that does not exist (or whose creation time differs).
	ErrPayloadNotFound = errors.New("payload was not found")

	// ErrPayloadNotSaved is returned when an INSERT completes without error
	// but no id was produced.
	ErrPayloadNotSaved = errors.New("payload was not saved")

	// ErrUnsupportedDSN is returned by [NewConnect] when the DSN names a
	// database the client cannot open.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These wrap driver errors when a SQL
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan payload rows")
)
