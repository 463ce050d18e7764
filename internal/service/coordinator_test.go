// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fineract-offline-sync/internal/config"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/internal/metrics"
	"github.com/MKhiriev/fineract-offline-sync/internal/mock"
	"github.com/MKhiriev/fineract-offline-sync/internal/store"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

// fakeRemote записывает вызовы удалённого создания и возвращает заданные ошибки.
type fakeRemote[P models.Pending[P]] struct {
	mu    sync.Mutex
	calls []int64
	fail  map[int64]error
}

func newFakeRemote[P models.Pending[P]]() *fakeRemote[P] {
	return &fakeRemote[P]{fail: make(map[int64]error)}
}

func (f *fakeRemote[P]) create(_ context.Context, p P) (models.CreateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, p.LocalID())
	if err, ok := f.fail[p.LocalID()]; ok {
		return models.CreateResult{}, err
	}
	return models.CreateResult{ResourceID: 1000 + p.LocalID()}, nil
}

func (f *fakeRemote[P]) Calls() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.calls...)
}

func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "queue.db")}}
	storages, err := store.NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func strPtr(s string) *string { return &s }

// seedGroups stages groups in order and returns their local ids.
func seedGroups(t *testing.T, repo store.PayloadRepository[models.GroupPayload], groups ...models.GroupPayload) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(groups))
	for _, g := range groups {
		if g.OfficeID == 0 {
			g.OfficeID = 1
		}
		saved, err := repo.Save(context.Background(), g)
		require.NoError(t, err)
		ids = append(ids, saved.ID)
	}
	return ids
}

func newGroupCoordinator(t *testing.T) (*Coordinator[models.GroupPayload], *store.ClientStorages, *fakeRemote[models.GroupPayload]) {
	t.Helper()

	storages := newTestStorages(t)
	remote := newFakeRemote[models.GroupPayload]()
	c := NewCoordinator(models.EntityGroup, storages.Groups, remote.create, nil, logger.Nop())
	t.Cleanup(c.Close)

	return c, storages, remote
}

func groupNames(payloads []models.GroupPayload) []string {
	names := make([]string, 0, len(payloads))
	for _, p := range payloads {
		names = append(names, p.Name)
	}
	return names
}

// ── FirstPending ─────────────────────────────────────────────────────────────

func TestFirstPending(t *testing.T) {
	failed := strPtr("x")

	tests := []struct {
		name   string
		list   []models.ClientPayload
		wantID int64
		wantOK bool
	}{
		{name: "empty", list: nil},
		{name: "all failed", list: []models.ClientPayload{{ID: 1, ErrorMessage: failed}, {ID: 2, ErrorMessage: failed}}},
		{name: "first eligible", list: []models.ClientPayload{{ID: 1}, {ID: 2}}, wantID: 1, wantOK: true},
		{name: "skips failed", list: []models.ClientPayload{{ID: 1, ErrorMessage: failed}, {ID: 2}, {ID: 3}}, wantID: 2, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstPending(tt.list)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSyncStatus(t *testing.T) {
	failed := strPtr("x")

	assert.Equal(t, models.SyncAllSynced, syncStatus[models.GroupPayload](nil, false))
	assert.Equal(t, models.SyncIdle, syncStatus([]models.GroupPayload{{ID: 1}}, false))
	assert.Equal(t, models.SyncPartiallyFailed, syncStatus([]models.GroupPayload{{ID: 1, ErrorMessage: failed}}, false))
	assert.Equal(t, models.SyncPartiallyFailed, syncStatus([]models.GroupPayload{{ID: 1}}, true))
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestCoordinator_Sync_AttemptsFirstEligibleOnly(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups,
		models.GroupPayload{Name: "A", ErrorMessage: strPtr("x")},
		models.GroupPayload{Name: "B"},
		models.GroupPayload{Name: "C"},
	)
	remote.fail[ids[1]] = errors.New("office is closed")

	result, err := c.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{ids[1]}, remote.Calls())
	assert.Equal(t, models.SyncResult{Attempted: 1, Failed: 1}, result)
}

func TestCoordinator_Sync_SuccessMovesToNext(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups,
		models.GroupPayload{Name: "A"},
		models.GroupPayload{Name: "B", ErrorMessage: strPtr("x")},
		models.GroupPayload{Name: "C"},
	)
	remote.fail[ids[2]] = errors.New("duplicate")

	result, err := c.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{ids[0], ids[2]}, remote.Calls())
	assert.Equal(t, models.SyncResult{Attempted: 2, Synced: 1, Failed: 1}, result)

	left, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, groupNames(left))
}

func TestCoordinator_Sync_FailureStopsRun(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups, models.GroupPayload{Name: "A"}, models.GroupPayload{Name: "B"})
	remote.fail[ids[0]] = errors.New("timeout")

	_, err := c.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{ids[0]}, remote.Calls())

	left, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, left, 2)
	require.NotNil(t, left[0].ErrorMessage)
	assert.Equal(t, "timeout", *left[0].ErrorMessage)
	assert.Nil(t, left[1].ErrorMessage)

	assert.Equal(t, models.SyncPartiallyFailed, c.State().Status)
}

func TestCoordinator_Sync_AllFailedIsNoop(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	seedGroups(t, storages.Groups,
		models.GroupPayload{Name: "A", ErrorMessage: strPtr("x")},
		models.GroupPayload{Name: "B", ErrorMessage: strPtr("y")},
	)
	before, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)

	result, err := c.Sync(context.Background())
	require.NoError(t, err)

	assert.Empty(t, remote.Calls())
	assert.Equal(t, models.SyncResult{}, result)

	after, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	state := c.State()
	assert.Equal(t, models.PhasePopulated, state.Phase)
	assert.Equal(t, models.SyncPartiallyFailed, state.Status)
}

func TestCoordinator_Sync_FirstFailsSecondAlreadyFailed(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups,
		models.GroupPayload{Name: "A"},
		models.GroupPayload{Name: "B", ErrorMessage: strPtr("x")},
	)
	remote.fail[ids[0]] = errors.New("timeout")

	result, err := c.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Synced)

	left, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.Equal(t, "timeout", *left[0].ErrorMessage)
	assert.Equal(t, "x", *left[1].ErrorMessage)
}

func TestCoordinator_Sync_AllSucceed(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups, models.GroupPayload{Name: "A"}, models.GroupPayload{Name: "B"})

	result, err := c.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ids, remote.Calls())
	assert.Equal(t, models.SyncResult{Attempted: 2, Synced: 2}, result)

	left, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, left)

	state := c.State()
	assert.Empty(t, state.Payloads)
	assert.Equal(t, models.SyncAllSynced, state.Status)
}

func TestCoordinator_Sync_RejectsConcurrentRun(t *testing.T) {
	storages := newTestStorages(t)
	seedGroups(t, storages.Groups, models.GroupPayload{Name: "A"})

	entered := make(chan struct{})
	release := make(chan struct{})
	create := func(ctx context.Context, p models.GroupPayload) (models.CreateResult, error) {
		close(entered)
		<-release
		return models.CreateResult{}, nil
	}
	c := NewCoordinator(models.EntityGroup, storages.Groups, create, nil, logger.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := c.Sync(context.Background())
		done <- err
	}()
	<-entered

	assert.Equal(t, models.SyncRunning, c.State().Status)

	_, err := c.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)
	assert.ErrorIs(t, c.Retry(context.Background(), 1), ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, models.SyncAllSynced, c.State().Status)
}

func TestCoordinator_Sync_CanceledLeavesPayloadUntouched(t *testing.T) {
	storages := newTestStorages(t)
	seedGroups(t, storages.Groups, models.GroupPayload{Name: "A"}, models.GroupPayload{Name: "B"})

	ctx, cancel := context.WithCancel(context.Background())
	create := func(ctx context.Context, p models.GroupPayload) (models.CreateResult, error) {
		cancel()
		<-ctx.Done()
		return models.CreateResult{}, ctx.Err()
	}
	c := NewCoordinator(models.EntityGroup, storages.Groups, create, nil, logger.Nop())

	result, err := c.Sync(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Synced)
	assert.Equal(t, 0, result.Failed)

	left, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.Nil(t, left[0].ErrorMessage)
	assert.Nil(t, left[1].ErrorMessage)
}

func TestCoordinator_Sync_CreatedThenCanceledStillDeletes(t *testing.T) {
	storages := newTestStorages(t)
	seedGroups(t, storages.Groups, models.GroupPayload{Name: "A"}, models.GroupPayload{Name: "B"})

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	create := func(_ context.Context, p models.GroupPayload) (models.CreateResult, error) {
		calls++
		cancel()
		return models.CreateResult{ResourceID: 1}, nil
	}
	c := NewCoordinator(models.EntityGroup, storages.Groups, create, nil, logger.Nop())

	result, err := c.Sync(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, calls)

	left, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, groupNames(left))
}

func TestCoordinator_Sync_StoreReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWatchableRepository[models.ClientPayload](ctrl)
	repo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("database is locked"))

	c := NewCoordinator(models.EntityClient, repo, nil, nil, logger.Nop())

	_, err := c.Sync(context.Background())
	require.ErrorIs(t, err, ErrReadingQueue)

	state := c.State()
	assert.Equal(t, models.PhaseError, state.Phase)
	assert.Error(t, state.Err)
}

func TestCoordinator_Sync_StoreWriteErrorAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWatchableRepository[models.ClientPayload](ctrl)
	payload := models.ClientPayload{ID: 3, FirstName: "A", LastName: "B", CreatedAt: time.Now()}

	repo.EXPECT().GetAll(gomock.Any()).Return([]models.ClientPayload{payload}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	create := func(context.Context, models.ClientPayload) (models.CreateResult, error) {
		return models.CreateResult{}, errors.New("timeout")
	}
	c := NewCoordinator(models.EntityClient, repo, create, nil, logger.Nop())

	_, err := c.Sync(context.Background())
	assert.ErrorIs(t, err, ErrWritingQueue)
}

func TestCoordinator_Sync_RecordsMetrics(t *testing.T) {
	storages := newTestStorages(t)
	ids := seedGroups(t, storages.Groups, models.GroupPayload{Name: "A"}, models.GroupPayload{Name: "B"})

	remote := newFakeRemote[models.GroupPayload]()
	remote.fail[ids[1]] = errors.New("boom")
	recorder := &spyRecorder{}
	c := NewCoordinator(models.EntityGroup, storages.Groups, remote.create, recorder, logger.Nop())

	_, err := c.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{metrics.OutcomeSynced, metrics.OutcomeFailed}, recorder.Outcomes())
	assert.Equal(t, 1, recorder.LastQueueLength())
}

// ── Retry / ClearError / Discard ─────────────────────────────────────────────

func TestCoordinator_Retry_FailedPayloadSucceeds(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups, models.GroupPayload{Name: "A", ErrorMessage: strPtr("x")})

	require.NoError(t, c.Retry(context.Background(), ids[0]))
	assert.Equal(t, ids, remote.Calls())

	left, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestCoordinator_Retry_OverwritesMessage(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups, models.GroupPayload{Name: "A", ErrorMessage: strPtr("old")})
	remote.fail[ids[0]] = errors.New("new")

	require.NoError(t, c.Retry(context.Background(), ids[0]))

	got, err := storages.Groups.Get(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, "new", *got.ErrorMessage)
	assert.Equal(t, models.SyncPartiallyFailed, c.State().Status)
}

func TestCoordinator_Retry_Missing(t *testing.T) {
	c, _, remote := newGroupCoordinator(t)

	err := c.Retry(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrPayloadNotFound)
	assert.Empty(t, remote.Calls())
}

func TestCoordinator_ClearError(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups, models.GroupPayload{Name: "A", ErrorMessage: strPtr("x")})

	require.NoError(t, c.ClearError(context.Background(), ids[0]))

	got, err := storages.Groups.Get(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Nil(t, got.ErrorMessage)

	// eligible for the scan again
	_, err = c.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ids, remote.Calls())
}

func TestCoordinator_Discard(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups, models.GroupPayload{Name: "A"}, models.GroupPayload{Name: "B"})

	require.NoError(t, c.Discard(context.Background(), ids[0]))
	assert.ErrorIs(t, c.Discard(context.Background(), ids[0]), store.ErrPayloadNotFound)

	left, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, groupNames(left))
	assert.Empty(t, remote.Calls())
}

// ── Load / States ────────────────────────────────────────────────────────────

func waitForState[P models.Pending[P]](t *testing.T, c *Coordinator[P], cond func(models.SyncState[P]) bool) models.SyncState[P] {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-c.States():
			if cond(s) {
				return s
			}
		case <-deadline:
			t.Fatalf("state not reached, last: %+v", c.State())
			return models.SyncState[P]{}
		}
	}
}

func TestCoordinator_Load_FollowsStore(t *testing.T) {
	c, storages, _ := newGroupCoordinator(t)
	assert.Equal(t, models.PhaseLoading, c.State().Phase)

	require.NoError(t, c.Load(context.Background()))
	s := waitForState(t, c, func(s models.SyncState[models.GroupPayload]) bool {
		return s.Phase == models.PhasePopulated
	})
	assert.Empty(t, s.Payloads)
	assert.Equal(t, models.SyncAllSynced, s.Status)

	seedGroups(t, storages.Groups, models.GroupPayload{Name: "A"})
	s = waitForState(t, c, func(s models.SyncState[models.GroupPayload]) bool {
		return len(s.Payloads) == 1
	})
	assert.Equal(t, models.SyncIdle, s.Status)
	assert.Equal(t, "A", s.Payloads[0].Name)
}

func TestCoordinator_Load_WatchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWatchableRepository[models.GroupPayload](ctrl)
	repo.EXPECT().Watch(gomock.Any()).Return(nil, errors.New("no such table"))

	c := NewCoordinator(models.EntityGroup, repo, nil, nil, logger.Nop())

	err := c.Load(context.Background())
	require.ErrorIs(t, err, ErrReadingQueue)
	assert.Equal(t, models.PhaseError, c.State().Phase)
}

func TestCoordinator_Load_SnapshotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockWatchableRepository[models.GroupPayload](ctrl)

	repo.EXPECT().Watch(gomock.Any()).DoAndReturn(func(ctx context.Context) (<-chan store.Snapshot[models.GroupPayload], error) {
		ch := make(chan store.Snapshot[models.GroupPayload], 1)
		ch <- store.Snapshot[models.GroupPayload]{Err: errors.New("disk I/O error")}
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch, nil
	})

	c := NewCoordinator(models.EntityGroup, repo, nil, nil, logger.Nop())
	require.NoError(t, c.Load(context.Background()))
	defer c.Close()

	s := waitForState(t, c, func(s models.SyncState[models.GroupPayload]) bool {
		return s.Phase == models.PhaseError
	})
	assert.EqualError(t, s.Err, "disk I/O error")
	assert.Nil(t, s.Payloads)
}

func TestCoordinator_Sync_StateCurrentAfterFailure(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups,
		models.GroupPayload{Name: "A"},
		models.GroupPayload{Name: "B", ErrorMessage: strPtr("x")},
	)
	remote.fail[ids[0]] = errors.New("timeout")

	_, err := c.Sync(context.Background())
	require.NoError(t, err)

	// без Load: список должен быть перечитан самим Sync
	s := c.State()
	require.Len(t, s.Payloads, 2)
	assert.Equal(t, "timeout", *s.Payloads[0].ErrorMessage)
	assert.Equal(t, "x", *s.Payloads[1].ErrorMessage)
	assert.Equal(t, models.SyncPartiallyFailed, s.Status)
}

func TestCoordinator_Loaded_PublishesFailedSync(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups,
		models.GroupPayload{Name: "A"},
		models.GroupPayload{Name: "B", ErrorMessage: strPtr("x")},
	)
	remote.fail[ids[0]] = errors.New("timeout")

	require.NoError(t, c.Load(context.Background()))
	waitForState(t, c, func(s models.SyncState[models.GroupPayload]) bool {
		return s.Phase == models.PhasePopulated && len(s.Payloads) == 2
	})

	_, err := c.Sync(context.Background())
	require.NoError(t, err)

	now := c.State()
	require.Len(t, now.Payloads, 2)
	assert.True(t, now.Payloads[0].Failed())
	assert.Equal(t, models.SyncPartiallyFailed, now.Status)

	s := waitForState(t, c, func(s models.SyncState[models.GroupPayload]) bool {
		return len(s.Payloads) == 2 && s.Payloads[0].Failed() && s.Status == models.SyncPartiallyFailed
	})
	assert.Equal(t, "timeout", *s.Payloads[0].ErrorMessage)
}

func TestCoordinator_Loaded_PublishesFailedRetry(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups, models.GroupPayload{Name: "A", ErrorMessage: strPtr("old")})
	remote.fail[ids[0]] = errors.New("new")

	require.NoError(t, c.Load(context.Background()))
	waitForState(t, c, func(s models.SyncState[models.GroupPayload]) bool {
		return s.Phase == models.PhasePopulated && len(s.Payloads) == 1
	})

	require.NoError(t, c.Retry(context.Background(), ids[0]))

	now := c.State()
	require.Len(t, now.Payloads, 1)
	assert.Equal(t, "new", *now.Payloads[0].ErrorMessage)
	assert.Equal(t, models.SyncPartiallyFailed, now.Status)

	waitForState(t, c, func(s models.SyncState[models.GroupPayload]) bool {
		return len(s.Payloads) == 1 && s.Payloads[0].ErrorMessage != nil &&
			*s.Payloads[0].ErrorMessage == "new" && s.Status == models.SyncPartiallyFailed
	})
}

func TestCoordinator_Retry_SuccessEmptiesState(t *testing.T) {
	c, storages, _ := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups, models.GroupPayload{Name: "A", ErrorMessage: strPtr("x")})

	require.NoError(t, c.Retry(context.Background(), ids[0]))

	s := c.State()
	assert.Empty(t, s.Payloads)
	assert.Equal(t, models.SyncAllSynced, s.Status)
}

func TestCoordinator_StatesKeepsLatestOnly(t *testing.T) {
	c, storages, _ := newGroupCoordinator(t)
	seedGroups(t, storages.Groups, models.GroupPayload{Name: "A"}, models.GroupPayload{Name: "B"})

	_, err := c.Sync(context.Background())
	require.NoError(t, err)

	s := <-c.States()
	assert.Equal(t, models.SyncAllSynced, s.Status)

	select {
	case <-c.States():
		t.Fatal("stale state was queued")
	default:
	}
}

// spyRecorder запоминает то, что координатор сообщил в метрики.
type spyRecorder struct {
	mu       sync.Mutex
	outcomes []string
	queue    []int
}

func (s *spyRecorder) RecordSyncAttempt(_, outcome string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, outcome)
}

func (s *spyRecorder) RecordQueueLength(_ string, length int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, length)
}

func (s *spyRecorder) RecordRemoteCreate(string, time.Duration) {}

func (s *spyRecorder) Outcomes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.outcomes...)
}

func (s *spyRecorder) LastQueueLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return -1
	}
	return s.queue[len(s.queue)-1]
}

func TestCoordinator_Summary(t *testing.T) {
	c, storages, remote := newGroupCoordinator(t)
	ids := seedGroups(t, storages.Groups,
		models.GroupPayload{Name: "A"},
		models.GroupPayload{Name: "B", ErrorMessage: strPtr("x")},
	)
	remote.fail[ids[0]] = errors.New("timeout")

	_, err := c.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.QueueSummary{
		Entity: models.EntityGroup,
		Phase:  "populated",
		Status: "partially failed",
		Queued: 2,
		Failed: 2,
	}, c.Summary())
}
