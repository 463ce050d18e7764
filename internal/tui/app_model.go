// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fineract-offline-sync/internal/service"
	"github.com/MKhiriev/fineract-offline-sync/internal/validators"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

type screen int

const (
	screenQueue screen = iota
	screenForm
	screenInfo
)

const msgSyncRunning = "sync already running"

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type rootModel struct {
	ctx       context.Context
	create    service.ClientCreateService
	buildInfo models.BuildInfo

	tabs    []queueTab
	views   []queueView
	cursors []int
	active  int

	screen     screen
	form       formModel
	confirm    *confirmModel
	errOverlay *errorOverlayModel

	spinner spinner.Model
	syncing bool
	status  string
}

func newRootModel(ctx context.Context, create service.ClientCreateService, info models.BuildInfo, tabs ...queueTab) rootModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := rootModel{
		ctx:       ctx,
		create:    create,
		buildInfo: info,
		tabs:      tabs,
		views:     make([]queueView, len(tabs)),
		cursors:   make([]int, len(tabs)),
		spinner:   sp,
	}
	for i, t := range tabs {
		m.views[i] = t.current()
	}
	return m
}

func (m rootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for i := range m.tabs {
		cmds = append(cmds, m.cmdListen(i))
	}
	return tea.Batch(cmds...)
}

func (m rootModel) cmdListen(tab int) tea.Cmd {
	next := m.tabs[tab].next
	return func() tea.Msg {
		v, ok := next()
		if !ok {
			return nil
		}
		return stateMsg{tab: tab, view: v}
	}
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.views[msg.tab] = msg.view
		m.clampCursor(msg.tab)
		return m, m.cmdListen(msg.tab)
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = fmt.Sprintf("%s: synced %d, failed %d", m.tabs[msg.tab].title, msg.result.Synced, msg.result.Failed)
		return m, nil
	case retryDoneMsg:
		m.syncing = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = fmt.Sprintf("retried #%d", msg.id)
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = msg.status
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.status = "error copied to clipboard"
		return m, nil
	case createDoneMsg:
		return m.handleCreated(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.errOverlay != nil:
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	case m.confirm != nil:
		return m.updateConfirm(keyMsg)
	case m.screen == screenForm:
		return m.updateForm(keyMsg)
	case m.screen == screenInfo:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.quit) {
			m.screen = screenQueue
		}
		return m, nil
	}

	return m.updateQueue(keyMsg)
}

func (m rootModel) updateQueue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tab := m.tabs[m.active]
	row, hasRow := m.selected()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.active = (m.active + 1) % len(m.tabs)
	case key.Matches(msg, keys.backtab):
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
	case key.Matches(msg, keys.up):
		if m.cursors[m.active] > 0 {
			m.cursors[m.active]--
		}
	case key.Matches(msg, keys.down):
		if m.cursors[m.active] < len(m.views[m.active].rows)-1 {
			m.cursors[m.active]++
		}
	case (key.Matches(msg, keys.sync) || key.Matches(msg, keys.enter) && hasRow) && m.syncing:
		m.status = msgSyncRunning
	case key.Matches(msg, keys.sync):
		m.syncing = true
		m.status = ""
		active, ctx := m.active, m.ctx
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			result, err := tab.sync(ctx)
			return syncDoneMsg{tab: active, result: result, err: err}
		})
	case key.Matches(msg, keys.refresh):
		ctx := m.ctx
		return m, func() tea.Msg {
			return actionDoneMsg{status: tab.title + " reloaded", err: tab.load(ctx)}
		}
	case key.Matches(msg, keys.enter) && hasRow:
		m.syncing = true
		m.status = ""
		ctx := m.ctx
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			return retryDoneMsg{id: row.id, err: tab.retry(ctx, row.id)}
		})
	case key.Matches(msg, keys.clear) && hasRow:
		if row.errMsg == nil {
			return m, nil
		}
		ctx := m.ctx
		return m, func() tea.Msg {
			return actionDoneMsg{status: fmt.Sprintf("error cleared on #%d", row.id), err: tab.clear(ctx, row.id)}
		}
	case key.Matches(msg, keys.discard) && hasRow:
		m.confirm = &confirmModel{id: row.id, label: row.label}
	case key.Matches(msg, keys.copy) && hasRow:
		if row.errMsg == nil {
			m.status = "nothing to copy"
			return m, nil
		}
		text := *row.errMsg
		return m, func() tea.Msg {
			return copiedMsg{err: writeClipboard(text)}
		}
	case key.Matches(msg, keys.newItem):
		m.screen = screenForm
		m.form = newClientForm()
		if tab.entity == models.EntityGroup {
			m.form = newGroupForm()
		}
		return m, nil
	case key.Matches(msg, keys.info):
		m.screen = screenInfo
	}
	return m, nil
}

func (m rootModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		c := *m.confirm
		m.confirm = nil
		tab, ctx := m.tabs[m.active], m.ctx
		return m, func() tea.Msg {
			return actionDoneMsg{status: fmt.Sprintf("#%d discarded", c.id), err: tab.discard(ctx, c.id)}
		}
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m rootModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenQueue
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m rootModel) submitForm() (tea.Model, tea.Cmd) {
	ctx, create := m.ctx, m.create

	var run func() (service.CreateOutcome, error)
	var errs map[string]string
	if m.form.entity == models.EntityGroup {
		var p models.GroupPayload
		p, errs = m.form.groupPayload()
		run = func() (service.CreateOutcome, error) { return create.CreateGroup(ctx, p) }
	} else {
		var p models.ClientPayload
		p, errs = m.form.clientPayload()
		run = func() (service.CreateOutcome, error) { return create.CreateClient(ctx, p) }
	}

	m.form.errs = errs
	if len(errs) > 0 {
		return m, nil
	}

	m.form.submitting = true
	return m, func() tea.Msg {
		out, err := run()
		return createDoneMsg{outcome: out, err: err}
	}
}

func (m rootModel) handleCreated(msg createDoneMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false
	if msg.err != nil {
		if fieldErrs := validators.FieldErrors(msg.err); fieldErrs != nil {
			m.form.errs = fieldErrs
			return m, nil
		}
		return m.fail(msg.err), nil
	}

	m.screen = screenQueue
	if msg.outcome.Queued {
		m.status = fmt.Sprintf("queued locally as #%d", msg.outcome.LocalID)
	} else {
		m.status = fmt.Sprintf("created on server, resource id %d", msg.outcome.Remote.ResourceID)
	}
	return m, nil
}

func (m rootModel) fail(err error) rootModel {
	if errors.Is(err, service.ErrSyncInProgress) {
		m.status = msgSyncRunning
		return m
	}
	m.errOverlay = &errorOverlayModel{message: err.Error()}
	return m
}

func (m rootModel) selected() (queueRow, bool) {
	rows := m.views[m.active].rows
	c := m.cursors[m.active]
	if c < 0 || c >= len(rows) {
		return queueRow{}, false
	}
	return rows[c], true
}

func (m *rootModel) clampCursor(tab int) {
	n := len(m.views[tab].rows)
	if m.cursors[tab] >= n {
		m.cursors[tab] = n - 1
	}
	if m.cursors[tab] < 0 {
		m.cursors[tab] = 0
	}
}

func (m rootModel) View() string {
	switch m.screen {
	case screenForm:
		return m.form.View()
	case screenInfo:
		return renderBuildInfoWindow(m.buildInfo, m.create.Mode())
	}

	var b strings.Builder
	for i, t := range m.tabs {
		if i == m.active {
			b.WriteString(activeTabStyle.Render(t.title))
		} else {
			b.WriteString(tabStyle.Render(t.title))
		}
		b.WriteString("   ")
	}
	b.WriteString("\n\n")
	b.WriteString(renderQueue(m.views[m.active], m.cursors[m.active]))

	if m.syncing {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" syncing...\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
	}
	if m.errOverlay != nil {
		b.WriteString("\n")
		b.WriteString(m.errOverlay.View())
	}

	title := fmt.Sprintf("FINERACT OFFLINE SYNC (%s)", m.create.Mode())
	hotKeys := "tab switch  s sync  r refresh  enter retry  x clear error  d discard  c copy error  n new  i about  q quit"
	return renderPage(title, b.String(), hotKeys)
}
