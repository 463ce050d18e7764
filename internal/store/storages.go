// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fineract-offline-sync/internal/config"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

// ClientStorages is the set of local payload stores used by the client.
type ClientStorages struct {
	Clients WatchableRepository[models.ClientPayload]
	Groups  WatchableRepository[models.GroupPayload]

	db *DB
}

// NewClientStorages opens the database described by cfg, applies
// migrations and builds the observed repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to local database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewClientStorages").Msg("error migrating local database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating local database: %w", err)
	}

	return newClientStorages(db, log), nil
}

func newClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Clients: NewObservedRepository(NewClientPayloadRepository(db, log), log.WithEntity(string(models.EntityClient))),
		Groups:  NewObservedRepository(NewGroupPayloadRepository(db, log), log.WithEntity(string(models.EntityGroup))),
		db:      db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
