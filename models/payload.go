// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entity names the kind of Fineract resource a payload creates.
type Entity string

const (
	EntityClient Entity = "client"
	EntityGroup  Entity = "group"
)

// Pending is implemented by every locally staged create request. P is the
// concrete payload type so that WithErrorMessage can return a copy of the
// same type.
type Pending[P any] interface {
	// LocalID returns the auto-generated id of the local row.
	LocalID() int64
	// CreatedOn returns the local creation timestamp. Together with LocalID
	// it identifies the row to delete after a successful sync.
	CreatedOn() time.Time
	// Failed reports whether the last sync attempt for this payload failed.
	Failed() bool
	// WithErrorMessage returns a copy of the payload with ErrorMessage set
	// to msg. A nil msg clears the error.
	WithErrorMessage(msg *string) P
	// Entity returns the resource kind.
	Entity() Entity
}

// ClientPayload is a staged "create client" request.
type ClientPayload struct {
	ID int64 `json:"-"`

	FirstName      string `json:"firstname" validate:"required,max=50"`
	MiddleName     string `json:"middlename,omitempty" validate:"max=50"`
	LastName       string `json:"lastname" validate:"required,max=50"`
	OfficeID       int64  `json:"officeId" validate:"gt=0"`
	StaffID        *int64 `json:"staffId,omitempty"`
	GenderID       *int64 `json:"genderId,omitempty"`
	LegalFormID    int64  `json:"legalFormId,omitempty"`
	MobileNo       string `json:"mobileNo,omitempty" validate:"omitempty,numeric"`
	ExternalID     string `json:"externalId,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Active         bool   `json:"active"`
	ActivationDate string `json:"activationDate,omitempty" validate:"required_if=Active true"`
	SubmittedOn    string `json:"submittedOnDate,omitempty"`
	Locale         string `json:"locale"`
	DateFormat     string `json:"dateFormat"`

	ErrorMessage *string   `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

func (c ClientPayload) LocalID() int64       { return c.ID }
func (c ClientPayload) CreatedOn() time.Time { return c.CreatedAt }
func (c ClientPayload) Failed() bool         { return c.ErrorMessage != nil }
func (c ClientPayload) Entity() Entity       { return EntityClient }

// LastError returns the message of the last failed sync attempt, if any.
func (c ClientPayload) LastError() *string { return c.ErrorMessage }

func (c ClientPayload) WithErrorMessage(msg *string) ClientPayload {
	c.ErrorMessage = msg
	return c
}

// DisplayName is the label shown in queue listings.
func (c ClientPayload) DisplayName() string {
	if c.MiddleName == "" {
		return c.FirstName + " " + c.LastName
	}
	return c.FirstName + " " + c.MiddleName + " " + c.LastName
}

// GroupPayload is a staged "create group" request.
type GroupPayload struct {
	ID int64 `json:"-"`

	Name           string `json:"name" validate:"required,max=100"`
	OfficeID       int64  `json:"officeId" validate:"gt=0"`
	StaffID        *int64 `json:"staffId,omitempty"`
	CenterID       *int64 `json:"centerId,omitempty"`
	ExternalID     string `json:"externalId,omitempty"`
	Active         bool   `json:"active"`
	ActivationDate string `json:"activationDate,omitempty" validate:"required_if=Active true"`
	SubmittedOn    string `json:"submittedOnDate,omitempty"`
	Locale         string `json:"locale"`
	DateFormat     string `json:"dateFormat"`

	ErrorMessage *string   `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

func (g GroupPayload) LocalID() int64       { return g.ID }
func (g GroupPayload) CreatedOn() time.Time { return g.CreatedAt }
func (g GroupPayload) Failed() bool         { return g.ErrorMessage != nil }
func (g GroupPayload) Entity() Entity       { return EntityGroup }

func (g GroupPayload) LastError() *string { return g.ErrorMessage }

func (g GroupPayload) WithErrorMessage(msg *string) GroupPayload {
	g.ErrorMessage = msg
	return g
}

// DisplayName is the label shown in queue listings.
func (g GroupPayload) DisplayName() string {
	return g.Name
}
