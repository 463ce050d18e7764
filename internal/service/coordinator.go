// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/internal/metrics"
	"github.com/MKhiriev/fineract-offline-sync/internal/store"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

// RemoteCreateFunc performs the remote create call for one payload.
type RemoteCreateFunc[P any] func(ctx context.Context, payload P) (models.CreateResult, error)

// Coordinator is the [SyncCoordinator] implementation shared by clients and
// groups.
type Coordinator[P models.Pending[P]] struct {
	entity  models.Entity
	repo    store.WatchableRepository[P]
	create  RemoteCreateFunc[P]
	metrics metrics.Recorder
	logger  *logger.Logger

	mu            sync.Mutex
	state         models.SyncState[P]
	running       bool
	lastRunFailed bool
	watchCancel   context.CancelFunc
	watchDone     chan struct{}

	states chan models.SyncState[P]
}

// NewCoordinator builds a coordinator for entity over repo. Remote creates go
// through create.
func NewCoordinator[P models.Pending[P]](
	entity models.Entity,
	repo store.WatchableRepository[P],
	create RemoteCreateFunc[P],
	recorder metrics.Recorder,
	log *logger.Logger,
) *Coordinator[P] {
	if recorder == nil {
		recorder = metrics.NewNoOpCollector()
	}

	return &Coordinator[P]{
		entity:  entity,
		repo:    repo,
		create:  create,
		metrics: recorder,
		logger:  log.WithEntity(string(entity)),
		state:   models.SyncState[P]{Phase: models.PhaseLoading},
		states:  make(chan models.SyncState[P], 1),
	}
}

func (c *Coordinator[P]) Entity() models.Entity {
	return c.entity
}

func (c *Coordinator[P]) State() models.SyncState[P] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Coordinator[P]) States() <-chan models.SyncState[P] {
	return c.states
}

func (c *Coordinator[P]) Summary() models.QueueSummary {
	s := c.State()

	summary := models.QueueSummary{
		Entity: c.entity,
		Phase:  s.Phase.String(),
		Status: s.Status.String(),
		Queued: len(s.Payloads),
	}
	for _, p := range s.Payloads {
		if p.Failed() {
			summary.Failed++
		}
	}
	if s.Err != nil {
		summary.LastErr = s.Err.Error()
	}
	return summary
}

// Load implements [SyncCoordinator].
func (c *Coordinator[P]) Load(ctx context.Context) error {
	c.stopWatch()

	c.mu.Lock()
	c.state.Phase = models.PhaseLoading
	c.state.Err = nil
	c.publishLocked()
	c.mu.Unlock()

	watchCtx, cancel := context.WithCancel(ctx)
	ch, err := c.repo.Watch(watchCtx)
	if err != nil {
		cancel()
		c.logger.Err(err).Str("func", "Coordinator.Load").Msg("failed to subscribe to local store")
		c.applySnapshot(store.Snapshot[P]{Err: err})
		return fmt.Errorf("%w: %w", ErrReadingQueue, err)
	}

	done := make(chan struct{})
	c.mu.Lock()
	c.watchCancel = cancel
	c.watchDone = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		for snap := range ch {
			c.applySnapshot(snap)
		}
	}()

	return nil
}

// Close implements [SyncCoordinator].
func (c *Coordinator[P]) Close() {
	c.stopWatch()
}

func (c *Coordinator[P]) stopWatch() {
	c.mu.Lock()
	cancel, done := c.watchCancel, c.watchDone
	c.watchCancel, c.watchDone = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (c *Coordinator[P]) applySnapshot(snap store.Snapshot[P]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap.Err != nil {
		c.state.Phase = models.PhaseError
		c.state.Err = snap.Err
		c.state.Payloads = nil
		c.publishLocked()
		return
	}

	c.replaceLocked(snap.Payloads)
}

// replaceLocked installs a fresh copy of the queue. c.mu must be held.
func (c *Coordinator[P]) replaceLocked(payloads []P) {
	c.state.Phase = models.PhasePopulated
	c.state.Err = nil
	c.state.Payloads = slices.Clone(payloads)
	c.metrics.RecordQueueLength(string(c.entity), len(payloads))
	c.publishLocked()
}

func (c *Coordinator[P]) snapshotLocked() models.SyncState[P] {
	s := c.state
	s.Payloads = slices.Clone(c.state.Payloads)
	if c.running {
		s.Status = models.SyncRunning
	} else {
		s.Status = syncStatus(c.state.Payloads, c.lastRunFailed)
	}
	return s
}

// publishLocked replaces any unread state with the current one.
func (c *Coordinator[P]) publishLocked() {
	s := c.snapshotLocked()
	select {
	case <-c.states:
	default:
	}
	c.states <- s
}

func (c *Coordinator[P]) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return false
	}
	c.running = true
	c.lastRunFailed = false
	c.publishLocked()
	return true
}

func (c *Coordinator[P]) end(failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = false
	c.lastRunFailed = failed
	c.publishLocked()
}

// Sync implements [SyncCoordinator]. A failed remote create is not an error
// of Sync: it is stored on the payload and counted in the result. Errors are
// returned for store failures and for ctx cancellation, in which case the
// payload being sent is left as it was.
func (c *Coordinator[P]) Sync(ctx context.Context) (models.SyncResult, error) {
	if !c.begin() {
		return models.SyncResult{}, ErrSyncInProgress
	}

	var result models.SyncResult
	failed := false
	defer func() { c.end(failed) }()

	log := c.logger.WithComponent("sync")
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		payloads, err := c.repo.GetAll(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			c.applySnapshot(store.Snapshot[P]{Err: err})
			return result, fmt.Errorf("%w: %w", ErrReadingQueue, err)
		}
		c.mu.Lock()
		c.replaceLocked(payloads)
		c.mu.Unlock()

		next, ok := FirstPending(payloads)
		if !ok {
			log.Debug().Str("func", "Coordinator.Sync").
				Int("synced", result.Synced).
				Int("remaining", len(payloads)).
				Msg("nothing left to sync")
			return result, nil
		}

		result.Attempted++
		synced, err := c.attempt(ctx, next)
		if err != nil {
			return result, err
		}
		if !synced {
			result.Failed++
			failed = true
			c.reload(ctx)
			return result, nil
		}
		result.Synced++
	}
}

// Retry implements [SyncCoordinator].
func (c *Coordinator[P]) Retry(ctx context.Context, id int64) error {
	if !c.begin() {
		return ErrSyncInProgress
	}

	failed := false
	defer func() { c.end(failed) }()

	payload, err := c.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	synced, err := c.attempt(ctx, payload)
	if err != nil {
		return err
	}
	failed = !synced
	c.reload(ctx)
	return nil
}

// reload rebuilds the working list after a mutation so that State is current
// when Sync or Retry returns.
func (c *Coordinator[P]) reload(ctx context.Context) {
	payloads, err := c.repo.GetAll(context.WithoutCancel(ctx))
	if err != nil {
		c.logger.Err(err).Str("func", "Coordinator.reload").Msg("failed to re-read queue")
		c.applySnapshot(store.Snapshot[P]{Err: err})
		return
	}

	c.mu.Lock()
	c.replaceLocked(payloads)
	c.mu.Unlock()
}

// attempt sends one payload. synced is false when the server rejected it or
// the call failed, in which case the message has been stored on the payload.
// A non-nil error means nothing was recorded.
func (c *Coordinator[P]) attempt(ctx context.Context, payload P) (synced bool, err error) {
	entity := string(c.entity)
	log := c.logger.WithComponent("sync")

	start := time.Now()
	_, createErr := c.create(ctx, payload)
	c.metrics.RecordRemoteCreate(entity, time.Since(start))

	if createErr != nil && ctx.Err() != nil {
		c.metrics.RecordSyncAttempt(entity, metrics.OutcomeCanceled)
		log.Info().Str("func", "Coordinator.attempt").
			Int64("local_id", payload.LocalID()).
			Msg("sync canceled, payload left untouched")
		return false, ctx.Err()
	}

	if createErr != nil {
		c.metrics.RecordSyncAttempt(entity, metrics.OutcomeFailed)
		msg := errorMessage(createErr)
		log.Warn().Err(createErr).Str("func", "Coordinator.attempt").
			Int64("local_id", payload.LocalID()).
			Str("error_message", msg).
			Msg("remote create failed")

		if err = c.repo.Update(ctx, payload.WithErrorMessage(&msg)); err != nil {
			if errors.Is(err, store.ErrPayloadNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("%w: %w", ErrWritingQueue, err)
		}
		return false, nil
	}

	c.metrics.RecordSyncAttempt(entity, metrics.OutcomeSynced)

	// the server already has the record, so the row must go even if ctx ends now
	err = c.repo.Delete(context.WithoutCancel(ctx), payload.LocalID(), payload.CreatedOn())
	if err != nil && !errors.Is(err, store.ErrPayloadNotFound) {
		log.Err(err).Str("func", "Coordinator.attempt").
			Int64("local_id", payload.LocalID()).
			Msg("payload created on server but could not be removed locally")
		return false, fmt.Errorf("%w: %w", ErrWritingQueue, err)
	}

	log.Info().Str("func", "Coordinator.attempt").
		Int64("local_id", payload.LocalID()).
		Msg("payload synced")
	return true, nil
}

// ClearError implements [SyncCoordinator].
func (c *Coordinator[P]) ClearError(ctx context.Context, id int64) error {
	payload, err := c.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !payload.Failed() {
		return nil
	}

	if err = c.repo.Update(ctx, payload.WithErrorMessage(nil)); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingQueue, err)
	}
	c.reload(ctx)
	return nil
}

// Discard implements [SyncCoordinator].
func (c *Coordinator[P]) Discard(ctx context.Context, id int64) error {
	payload, err := c.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = c.repo.Delete(ctx, payload.LocalID(), payload.CreatedOn()); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingQueue, err)
	}

	c.logger.Info().Str("func", "Coordinator.Discard").Int64("local_id", id).Msg("payload discarded")
	c.reload(ctx)
	return nil
}
