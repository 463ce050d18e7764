// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fineract-offline-sync/internal/config"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

// newTestAdapter создаёт fineractAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *fineractAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		Tenant:         "default",
		RequestTimeout: 5 * time.Second,
	}

	a, err := NewFineractAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*fineractAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── NewFineractAdapter ──────────────────────────────────────────────────────

func TestNewFineractAdapter_InvalidAddress(t *testing.T) {
	_, err := NewFineractAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://demo.fineract.dev/fineract-provider/api/v1/", "https://demo.fineract.dev/fineract-provider/api/v1"},
		{"localhost:8443/fineract-provider/api/v1", "https://localhost:8443/fineract-provider/api/v1"},
		{"http://10.0.2.2:8080", "http://10.0.2.2:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Authenticate ────────────────────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/authentication", r.URL.Path)
		assert.Equal(t, "default", r.Header.Get(tenantHeader))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mifos", body["username"])
		assert.Equal(t, "password", body["password"])

		writeJSON(t, w, http.StatusOK, models.AuthResult{
			Username: "mifos", UserID: 1, AuthKey: "bWlmb3M6cGFzc3dvcmQ=", Authenticated: true, OfficeID: 1,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Authenticate(context.Background(), "mifos", "password")

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "bWlmb3M6cGFzc3dvcmQ=", a.Token())
}

func TestAuthenticate_NotAuthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResult{Username: "mifos"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Authenticate(context.Background(), "mifos", "password")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, a.Token())
}

func TestAuthenticate_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{
			DeveloperMessage:   "Invalid authentication details were passed in api request.",
			DefaultUserMessage: "Unauthenticated. Please login.",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Authenticate(context.Background(), "mifos", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── CreateClient / CreateGroup ──────────────────────────────────────────────

func TestCreateClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/clients", r.URL.Path)
		assert.Equal(t, "Basic a2V5", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Amina", body["firstname"])
		assert.Equal(t, "Okafor", body["lastname"])
		assert.Equal(t, float64(1), body["officeId"])
		assert.Equal(t, "en", body["locale"])
		assert.Equal(t, "dd MMMM yyyy", body["dateFormat"])
		assert.NotContains(t, body, "ID")
		assert.NotContains(t, body, "ErrorMessage")

		writeJSON(t, w, http.StatusOK, models.CreateResult{OfficeID: 1, ClientID: 42, ResourceID: 42})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" a2V5 ")

	got, err := a.CreateClient(context.Background(), models.ClientPayload{
		ID: 7, FirstName: "Amina", LastName: "Okafor", OfficeID: 1,
		Locale: "en", DateFormat: "dd MMMM yyyy",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ClientID)
}

func TestCreateGroup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Market Women", body["name"])

		writeJSON(t, w, http.StatusOK, models.CreateResult{OfficeID: 1, GroupID: 9, ResourceID: 9})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateGroup(context.Background(), models.GroupPayload{Name: "Market Women", OfficeID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ResourceID)
}

func TestCreateClient_ValidationErrorCarriesUserMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			DeveloperMessage:   "The request was invalid. This typically will happen due to validation errors which are provided.",
			HTTPStatusCode:     "400",
			DefaultUserMessage: "Validation errors exist.",
			GlobalisationCode:  "validation.msg.validation.errors.exist",
			Errors: []models.ErrorResponse{{
				DefaultUserMessage: "The parameter `mobileNo` must be unique.",
				ParameterName:      "mobileNo",
			}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateClient(context.Background(), models.ClientPayload{FirstName: "A", LastName: "B", OfficeID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var fErr *FineractError
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, http.StatusBadRequest, fErr.StatusCode)
	assert.Equal(t, "The parameter `mobileNo` must be unique.", fErr.UserMessage())
}

func TestCreateGroup_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateGroup(context.Background(), models.GroupPayload{Name: "G", OfficeID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	var fErr *FineractError
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, "upstream down", fErr.UserMessage())
}

func TestCreateClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.CreateClient(context.Background(), models.ClientPayload{FirstName: "A", LastName: "B", OfficeID: 1})

	require.Error(t, err)
	var fErr *FineractError
	assert.False(t, errorsAs(err, &fErr))
}

func TestCreateClient_ContextCanceled(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-done:
		}
	}))
	defer srv.Close()
	// обработчик должен завершиться до srv.Close, иначе Close ждёт вечно
	defer close(done)

	a := newTestAdapter(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.CreateClient(ctx, models.ClientPayload{FirstName: "A", LastName: "B", OfficeID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCreateClient_LogsInWhenTokenMissing(t *testing.T) {
	var logins int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/authentication":
			logins++
			writeJSON(t, w, http.StatusOK, models.AuthResult{Username: "mifos", AuthKey: "bWlmb3M6cGFzc3dvcmQ=", Authenticated: true})
		case "/clients":
			assert.Equal(t, "Basic bWlmb3M6cGFzc3dvcmQ=", r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, models.CreateResult{OfficeID: 1, ClientID: 11, ResourceID: 11})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a, err := NewFineractAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		Tenant:         "default",
		Username:       "mifos",
		Password:       "password",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		res, err := a.CreateClient(context.Background(), models.ClientPayload{FirstName: "Ada", LastName: "Lovelace", OfficeID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(11), res.ResourceID)
	}
	// токен сохраняется, повторный логин не нужен
	assert.Equal(t, 1, logins)
}
