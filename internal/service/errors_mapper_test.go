// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fineract-offline-sync/internal/adapter"
	"github.com/MKhiriev/fineract-offline-sync/internal/config"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"deadline", fmt.Errorf("create request /clients: %w", context.DeadlineExceeded), msgTimeout},
		{"unauthorized", fmt.Errorf("x: %w", adapter.ErrUnauthorized), msgUnauthorized},
		{"login failed", fmt.Errorf("login before create: %w", adapter.ErrNotAuthenticated), msgUnauthorized},
		{"connection refused", &url.Error{Op: "Post", URL: "https://10.0.2.2/clients", Err: &net.OpError{
			Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED),
		}}, msgServerUnavailable},
		{"no such host", fmt.Errorf("create request /groups: %w", &net.DNSError{Err: "no such host", Name: "fineract.local"}), msgServerUnavailable},
		{"connection reset", fmt.Errorf("x: %w", syscall.ECONNRESET), msgServerUnavailable},
		{"network words in text only", errors.New("connection refused by policy"), "connection refused by policy"},
		{"plain", errors.New("timeout"), "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}

func TestErrorMessage_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	address := srv.URL
	srv.Close()

	fineract, err := adapter.NewFineractAdapter(config.ClientAdapter{
		HTTPAddress:    address,
		Tenant:         "default",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = fineract.CreateGroup(context.Background(), models.GroupPayload{Name: "A", OfficeID: 1})
	require.Error(t, err)
	assert.Equal(t, msgServerUnavailable, errorMessage(err))
}
