// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
)

// ObservedRepository decorates a [PayloadRepository] with a reactive
// [WatchableRepository.Watch] stream. Every successful mutation made through
// it republishes the full table to all subscribers.
type ObservedRepository[P any] struct {
	PayloadRepository[P]

	mu     sync.Mutex
	nextID int
	subs   map[int]chan Snapshot[P]
	logger *logger.Logger
}

// NewObservedRepository wraps repo.
func NewObservedRepository[P any](repo PayloadRepository[P], log *logger.Logger) *ObservedRepository[P] {
	return &ObservedRepository[P]{
		PayloadRepository: repo,
		subs:              make(map[int]chan Snapshot[P]),
		logger:            log,
	}
}

// Watch implements [WatchableRepository].
func (o *ObservedRepository[P]) Watch(ctx context.Context) (<-chan Snapshot[P], error) {
	payloads, err := o.PayloadRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ch := make(chan Snapshot[P], 1)
	ch <- Snapshot[P]{Payloads: payloads}

	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = ch
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		o.mu.Lock()
		delete(o.subs, id)
		close(ch)
		o.mu.Unlock()
	}()

	return ch, nil
}

func (o *ObservedRepository[P]) Save(ctx context.Context, payload P) (P, error) {
	saved, err := o.PayloadRepository.Save(ctx, payload)
	if err != nil {
		return saved, err
	}
	o.publish(ctx)
	return saved, nil
}

func (o *ObservedRepository[P]) Update(ctx context.Context, payload P) error {
	if err := o.PayloadRepository.Update(ctx, payload); err != nil {
		return err
	}
	o.publish(ctx)
	return nil
}

func (o *ObservedRepository[P]) Delete(ctx context.Context, id int64, createdAt time.Time) error {
	if err := o.PayloadRepository.Delete(ctx, id, createdAt); err != nil {
		return err
	}
	o.publish(ctx)
	return nil
}

// publish re-reads the table and hands the snapshot to every subscriber,
// replacing any snapshot a subscriber has not consumed yet.
func (o *ObservedRepository[P]) publish(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.subs) == 0 {
		return
	}

	// the mutation already happened, so read even if the caller's ctx is done
	payloads, err := o.PayloadRepository.GetAll(context.WithoutCancel(ctx))
	if err != nil {
		o.logger.Err(err).Str("func", "ObservedRepository.publish").Msg("failed to re-read payloads after mutation")
	}
	snap := Snapshot[P]{Payloads: payloads, Err: err}

	for _, ch := range o.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}
