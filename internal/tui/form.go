// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

// formField keys match the json names the validator reports.
type formField struct {
	key   string
	label string
	input textinput.Model
}

type formModel struct {
	entity     models.Entity
	fields     []formField
	focus      int
	errs       map[string]string
	submitting bool
}

func newField(key, label, placeholder string) formField {
	in := textinput.New()
	in.Width = 40
	in.Placeholder = placeholder
	return formField{key: key, label: label, input: in}
}

func newClientForm() formModel {
	return newForm(models.EntityClient,
		newField("firstname", "First name", ""),
		newField("middlename", "Middle name", ""),
		newField("lastname", "Last name", ""),
		newField("officeId", "Office id", "1"),
		newField("staffId", "Staff id", ""),
		newField("mobileNo", "Mobile", ""),
		newField("dateOfBirth", "Date of birth", "01 January 1990"),
		newField("activationDate", "Activation date", "empty: pending client"),
	)
}

func newGroupForm() formModel {
	return newForm(models.EntityGroup,
		newField("name", "Name", ""),
		newField("officeId", "Office id", "1"),
		newField("staffId", "Staff id", ""),
		newField("centerId", "Center id", ""),
		newField("activationDate", "Activation date", "empty: pending group"),
	)
}

func newForm(entity models.Entity, fields ...formField) formModel {
	fields[0].input.Focus()
	return formModel{entity: entity, fields: fields}
}

func (f formModel) value(key string) string {
	for _, fl := range f.fields {
		if fl.key == key {
			return strings.TrimSpace(fl.input.Value())
		}
	}
	return ""
}

func (f formModel) setFocus(i int) formModel {
	n := len(f.fields)
	i = ((i % n) + n) % n
	f.fields[f.focus].input.Blur()
	f.focus = i
	f.fields[f.focus].input.Focus()
	return f
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.tab), km.String() == "down":
			return f.setFocus(f.focus + 1), nil
		case key.Matches(km, keys.backtab), km.String() == "up":
			return f.setFocus(f.focus - 1), nil
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f formModel) clientPayload() (models.ClientPayload, map[string]string) {
	errs := map[string]string{}
	p := models.ClientPayload{
		FirstName:      f.value("firstname"),
		MiddleName:     f.value("middlename"),
		LastName:       f.value("lastname"),
		OfficeID:       parseID(f.value("officeId"), "officeId", errs),
		StaffID:        parseOptionalID(f.value("staffId"), "staffId", errs),
		MobileNo:       f.value("mobileNo"),
		DateOfBirth:    f.value("dateOfBirth"),
		ActivationDate: f.value("activationDate"),
	}
	p.Active = p.ActivationDate != ""
	return p, errs
}

func (f formModel) groupPayload() (models.GroupPayload, map[string]string) {
	errs := map[string]string{}
	p := models.GroupPayload{
		Name:           f.value("name"),
		OfficeID:       parseID(f.value("officeId"), "officeId", errs),
		StaffID:        parseOptionalID(f.value("staffId"), "staffId", errs),
		CenterID:       parseOptionalID(f.value("centerId"), "centerId", errs),
		ActivationDate: f.value("activationDate"),
	}
	p.Active = p.ActivationDate != ""
	return p, errs
}

func parseID(s, field string, errs map[string]string) int64 {
	if s == "" {
		return 0
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		errs[field] = "must be a number"
		return 0
	}
	return id
}

func parseOptionalID(s, field string, errs map[string]string) *int64 {
	if s == "" {
		return nil
	}
	id := parseID(s, field, errs)
	if _, bad := errs[field]; bad {
		return nil
	}
	return &id
}

func (f formModel) View() string {
	title := "New client"
	if f.entity == models.EntityGroup {
		title = "New group"
	}

	var b strings.Builder
	for i, fl := range f.fields {
		label := fl.label
		if i == f.focus {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n[")
		b.WriteString(fl.input.View())
		b.WriteString("]\n")
		if msg, ok := f.errs[fl.key]; ok {
			b.WriteString(errorStyle.Render(fl.label + " " + msg))
			b.WriteString("\n")
		}
	}
	if f.submitting {
		b.WriteString("\nsaving...\n")
	}

	return renderPage(title, b.String(), "esc cancel  tab next field  enter save")
}
