// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected http status")

	ErrNotAuthenticated = errors.New("server did not authenticate the user")
	ErrEmptyAddress     = errors.New("empty address")
)

// FineractError is a non-2xx reply. It unwraps to the sentinel matching the
// status code.
type FineractError struct {
	StatusCode int
	Body       models.ErrorResponse
	// Raw holds the body text when it was not a Fineract error envelope.
	Raw string

	sentinel error
}

func (e *FineractError) Error() string {
	msg := e.UserMessage()
	if msg == "" {
		return fmt.Sprintf("%s (http %d)", e.sentinel, e.StatusCode)
	}
	return fmt.Sprintf("%s (http %d): %s", e.sentinel, e.StatusCode, msg)
}

func (e *FineractError) Unwrap() error {
	return e.sentinel
}

// UserMessage returns the most specific message the server sent.
func (e *FineractError) UserMessage() string {
	if msg := e.Body.UserMessage(); msg != "" {
		return msg
	}
	return e.Raw
}
