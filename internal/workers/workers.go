// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/fineract-offline-sync/internal/server"
	"github.com/MKhiriev/fineract-offline-sync/internal/service"
)

// Workers starts workers in order and stops them in reverse order.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends a worker. Nil workers are ignored.
func (w *Workers) Add(worker Worker) {
	if worker == nil {
		return
	}
	w.workers = append(w.workers, worker)
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type syncJobWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

// NewSyncJobWorker runs job with the given interval.
func NewSyncJobWorker(job service.ClientSyncJob, interval time.Duration) Worker {
	return &syncJobWorker{job: job, interval: interval}
}

func (s *syncJobWorker) Start(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *syncJobWorker) Stop() {
	s.job.Stop()
}

type serverWorker struct {
	server server.Server
	wg     sync.WaitGroup
}

// NewServerWorker runs srv in its own goroutine. ctx is not passed to the
// server; it lives until Stop.
func NewServerWorker(srv server.Server) Worker {
	return &serverWorker{server: srv}
}

func (s *serverWorker) Start(_ context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.server.RunServer()
	}()
}

func (s *serverWorker) Stop() {
	s.server.Shutdown()
	s.wg.Wait()
}
