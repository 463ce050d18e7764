// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fineract-offline-sync/internal/config"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/migrations"
)

// DB is an open local database together with the dialect-specific pieces the
// repositories need: a squirrel builder with the right placeholder format and
// an error classifier used to retry transient write failures.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// retryDelay is the pause before repeating a write that failed with a
// retryable error.
var retryDelay = 50 * time.Millisecond

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{DB: conn, dialect: dialect, logger: log}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// NewConnect opens the database named by cfg.DSN. DSNs starting with
// "postgres://" or "postgresql://" are opened with pgx; anything else is
// treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op once more when the first failure is classified as
// [Retryable].
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
		return err
	}

	db.logger.Warn().Err(err).Str("func", "DB.withRetry").Msg("retryable database error, repeating operation")

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w (retry aborted: %w)", err, ctx.Err())
	case <-time.After(retryDelay):
	}

	return op()
}
