// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

// payloadTable describes how one payload type maps onto its table.
type payloadTable[P models.Pending[P]] struct {
	name        string
	columns     []string
	scan        func(rowScanner) (P, error)
	buildInsert func(sq.StatementBuilderType, P) (string, []any, error)
	buildUpdate func(sq.StatementBuilderType, P) (string, []any, error)
	// stamp returns a copy of the payload with id and created_at set.
	stamp func(p P, id int64, createdAt time.Time) P
}

// payloadRepository is the SQL implementation of [PayloadRepository] shared
// by the client and group tables.
type payloadRepository[P models.Pending[P]] struct {
	*DB
	table  payloadTable[P]
	logger *logger.Logger
}

// NewClientPayloadRepository returns a [PayloadRepository] over the
// client_payloads table.
func NewClientPayloadRepository(db *DB, log *logger.Logger) PayloadRepository[models.ClientPayload] {
	return &payloadRepository[models.ClientPayload]{
		DB:     db,
		logger: log.WithEntity(string(models.EntityClient)),
		table: payloadTable[models.ClientPayload]{
			name:        clientPayloadsTable,
			columns:     clientPayloadColumns,
			scan:        scanClientPayload,
			buildInsert: buildInsertClientPayloadQuery,
			buildUpdate: buildUpdateClientPayloadQuery,
			stamp: func(p models.ClientPayload, id int64, createdAt time.Time) models.ClientPayload {
				p.ID, p.CreatedAt = id, createdAt
				return p
			},
		},
	}
}

// NewGroupPayloadRepository returns a [PayloadRepository] over the
// group_payloads table.
func NewGroupPayloadRepository(db *DB, log *logger.Logger) PayloadRepository[models.GroupPayload] {
	return &payloadRepository[models.GroupPayload]{
		DB:     db,
		logger: log.WithEntity(string(models.EntityGroup)),
		table: payloadTable[models.GroupPayload]{
			name:        groupPayloadsTable,
			columns:     groupPayloadColumns,
			scan:        scanGroupPayload,
			buildInsert: buildInsertGroupPayloadQuery,
			buildUpdate: buildUpdateGroupPayloadQuery,
			stamp: func(p models.GroupPayload, id int64, createdAt time.Time) models.GroupPayload {
				p.ID, p.CreatedAt = id, createdAt
				return p
			},
		},
	}
}

func (r *payloadRepository[P]) GetAll(ctx context.Context) ([]P, error) {
	query, args, err := buildSelectPayloadsQuery(r.builder, r.table.name, r.table.columns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "payloadRepository.GetAll").Msg("failed to query payloads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	payloads := make([]P, 0)
	for rows.Next() {
		p, scanErr := r.table.scan(rows)
		if scanErr != nil {
			r.logger.Err(scanErr).Str("func", "payloadRepository.GetAll").Msg("failed to scan payload row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		payloads = append(payloads, p)
	}

	if err = rows.Err(); err != nil {
		r.logger.Err(err).Str("func", "payloadRepository.GetAll").Msg("error iterating payload rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return payloads, nil
}

func (r *payloadRepository[P]) Get(ctx context.Context, id int64) (P, error) {
	var zero P

	query, args, err := buildSelectPayloadQuery(r.builder, r.table.name, r.table.columns, id)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := r.table.scan(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrPayloadNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "payloadRepository.Get").Int64("local_id", id).Msg("failed to read payload")
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}

func (r *payloadRepository[P]) Save(ctx context.Context, payload P) (P, error) {
	var zero P

	payload = r.table.stamp(payload, 0, stampCreatedAt(payload.CreatedOn()))
	query, args, err := r.table.buildInsert(r.builder, payload)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrPayloadNotSaved
	}
	if err != nil {
		r.logger.Err(err).Str("func", "payloadRepository.Save").Msg("failed to insert payload")
		return zero, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.logger.Debug().Str("func", "payloadRepository.Save").Int64("local_id", id).Msg("payload staged")

	return r.table.stamp(payload, id, payload.CreatedOn()), nil
}

func (r *payloadRepository[P]) Update(ctx context.Context, payload P) error {
	query, args, err := r.table.buildUpdate(r.builder, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "payloadRepository.Update", payload.LocalID(), query, args)
}

func (r *payloadRepository[P]) Delete(ctx context.Context, id int64, createdAt time.Time) error {
	query, args, err := buildDeletePayloadQuery(r.builder, r.table.name, id, createdAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "payloadRepository.Delete", id, query, args)
}

func (r *payloadRepository[P]) execAffectingOne(ctx context.Context, fn string, id int64, query string, args []any) error {
	var result sql.Result
	err := r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		r.logger.Err(err).Str("func", fn).Int64("local_id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPayloadNotFound
	}

	return nil
}
