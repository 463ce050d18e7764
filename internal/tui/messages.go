package tui

import (
	"github.com/MKhiriev/fineract-offline-sync/internal/service"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

type stateMsg struct {
	tab  int
	view queueView
}

type syncDoneMsg struct {
	tab    int
	result models.SyncResult
	err    error
}

type retryDoneMsg struct {
	id  int64
	err error
}

type actionDoneMsg struct {
	status string
	err    error
}

type createDoneMsg struct {
	outcome service.CreateOutcome
	err     error
}

type copiedMsg struct {
	err error
}
