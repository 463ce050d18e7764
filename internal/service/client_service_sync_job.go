// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
)

type clientSyncJob struct {
	syncers []Syncer
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls Sync on every syncer on
// a ticker. The job is idle until Start is called.
func NewClientSyncJob(log *logger.Logger, syncers ...Syncer) ClientSyncJob {
	return &clientSyncJob{syncers: syncers, logger: log.WithComponent("sync-job")}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that syncs every interval. A zero or
// negative interval leaves the job stopped. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		j.logger.Debug().Str("func", "clientSyncJob.Start").Msg("background sync disabled")
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) runOnce(ctx context.Context) {
	for _, s := range j.syncers {
		result, err := s.Sync(ctx)
		switch {
		case errors.Is(err, ErrSyncInProgress), errors.Is(err, context.Canceled):
		case err != nil:
			j.logger.Err(err).Str("func", "clientSyncJob.runOnce").
				Str("entity", string(s.Entity())).
				Msg("background sync failed")
		case result.Attempted > 0:
			j.logger.Info().Str("func", "clientSyncJob.runOnce").
				Str("entity", string(s.Entity())).
				Int("synced", result.Synced).
				Int("failed", result.Failed).
				Msg("background sync finished")
		}
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
