// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/fineract-offline-sync/internal/service"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

type displayable[P any] interface {
	models.Pending[P]
	DisplayName() string
	LastError() *string
}

type queueRow struct {
	id     int64
	label  string
	errMsg *string
}

// queueView is the untyped rendering of one coordinator state.
type queueView struct {
	phase  models.Phase
	status models.SyncStatus
	rows   []queueRow
	err    error
}

// queueTab binds the screen to one typed coordinator.
type queueTab struct {
	entity models.Entity
	title  string

	load    func(ctx context.Context) error
	sync    func(ctx context.Context) (models.SyncResult, error)
	retry   func(ctx context.Context, id int64) error
	clear   func(ctx context.Context, id int64) error
	discard func(ctx context.Context, id int64) error
	current func() queueView
	// next blocks until the coordinator publishes a new state.
	next func() (queueView, bool)
}

func newQueueTab[P displayable[P]](title string, c service.SyncCoordinator[P]) queueTab {
	return queueTab{
		entity:  c.Entity(),
		title:   title,
		load:    c.Load,
		sync:    c.Sync,
		retry:   c.Retry,
		clear:   c.ClearError,
		discard: c.Discard,
		current: func() queueView { return toQueueView(c.State()) },
		next: func() (queueView, bool) {
			s, ok := <-c.States()
			if !ok {
				return queueView{}, false
			}
			return toQueueView(s), true
		},
	}
}

func toQueueView[P displayable[P]](s models.SyncState[P]) queueView {
	v := queueView{
		phase:  s.Phase,
		status: s.Status,
		err:    s.Err,
		rows:   make([]queueRow, 0, len(s.Payloads)),
	}
	for _, p := range s.Payloads {
		v.rows = append(v.rows, queueRow{id: p.LocalID(), label: p.DisplayName(), errMsg: p.LastError()})
	}
	return v
}

func (v queueView) failedCount() int {
	n := 0
	for _, r := range v.rows {
		if r.errMsg != nil {
			n++
		}
	}
	return n
}

func renderRow(r queueRow, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	label := fmt.Sprintf("#%d %s", r.id, fitText(r.label, 32))
	if selected {
		label = selectedStyle.Render(label)
	}

	marker := pendingStyle.Render("pending")
	if r.errMsg != nil {
		marker = errorStyle.Render("failed: " + fitText(*r.errMsg, width))
	}
	return cursor + label + "  " + marker
}

func renderQueue(v queueView, cursor int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "phase: %s  status: %s  queued: %d  failed: %d\n\n",
		v.phase, v.status, len(v.rows), v.failedCount())

	switch {
	case v.phase == models.PhaseLoading:
		b.WriteString("loading...\n")
	case v.phase == models.PhaseError:
		msg := "local store unavailable"
		if v.err != nil {
			msg = v.err.Error()
		}
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	case len(v.rows) == 0:
		b.WriteString("queue is empty\n")
	default:
		for i, r := range v.rows {
			b.WriteString(renderRow(r, i == cursor, 48))
			b.WriteString("\n")
		}
	}
	return b.String()
}
