// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net"
	"syscall"

	"github.com/MKhiriev/fineract-offline-sync/internal/adapter"
)

const (
	msgServerUnavailable = "no network or server unavailable"
	msgTimeout           = "request timed out"
	msgUnauthorized      = "authentication failed, log in again"
	msgForbidden         = "operation not permitted for this user"
)

// errorMessage turns a remote create failure into the text stored on the
// payload and shown in the queue.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrNotAuthenticated):
		return msgUnauthorized
	}

	var fErr *adapter.FineractError
	if errors.As(err, &fErr) {
		if msg := fErr.UserMessage(); msg != "" {
			return msg
		}
		if errors.Is(err, adapter.ErrForbidden) {
			return msgForbidden
		}
		return fErr.Error()
	}

	if isNetworkError(err) {
		return msgServerUnavailable
	}

	return err.Error()
}

// isNetworkError reports failures to reach the server at all.
func isNetworkError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
