// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

// newTestClient creates an httpUsersClient pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *httpUsersClient {
	t.Helper()

	c, err := NewHTTPUsersClient(serverURL, 0, logger.Nop())
	require.NoError(t, err)
	c.SetToken("test-token")
	return c.(*httpUsersClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url with slash", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "scheme without host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPUsersClient_EmptyAddress(t *testing.T) {
	_, err := NewHTTPUsersClient("", 0, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestSetToken_Trims(t *testing.T) {
	c := newTestClient(t, "http://localhost")
	c.SetToken("  abc \n")
	assert.Equal(t, "abc", c.Token())
}

// ── Requests ────────────────────────────────────────────────────────────────

func TestList_SendsWindowAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("skip"))
		assert.Equal(t, "1", r.URL.Query().Get("take"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []models.User{{ID: 3, Username: "c", Email: "c@x.io"}})
	}))
	defer srv.Close()

	take := 1
	got, err := newTestClient(t, srv.URL).List(context.Background(), models.ListParams{Skip: 2, Take: &take})

	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: 3, Username: "c", Email: "c@x.io"}}, got)
}

func TestList_OmitsTakeWhenNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("take"))
		writeJSON(t, w, http.StatusOK, []models.User{})
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).List(context.Background(), models.ListParams{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreate_SendsOnlyUsernameAndEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"username": "alice", "email": "alice@x.io"}, body)

		w.Header().Set("Location", "/users/1")
		writeJSON(t, w, http.StatusCreated, models.User{ID: 1, Username: "alice", Email: "alice@x.io"})
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Create(context.Background(), models.User{ID: 50, Username: "alice", Email: "alice@x.io"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestUpdate_UsesPathID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.User{ID: 7, Username: "b", Email: "b@x.io"})
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Update(context.Background(), models.User{ID: 7, Username: "b", Email: "b@x.io"})

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 7, Username: "b", Email: "b@x.io"}, got)
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/4", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestClient(t, srv.URL).Delete(context.Background(), 4))
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestGet_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "400", status: http.StatusBadRequest, body: `{"error":"invalid email format."}`, wantErr: ErrBadRequest, wantMsg: "invalid email format."},
		{name: "401", status: http.StatusUnauthorized, wantErr: ErrUnauthorized, wantMsg: "Unauthorized"},
		{name: "404", status: http.StatusNotFound, body: `{"error":"User with id 9 not found."}`, wantErr: ErrNotFound, wantMsg: "User with id 9 not found."},
		{name: "429", status: http.StatusTooManyRequests, body: `{"error":"Too many requests."}`, wantErr: ErrTooManyRequests},
		{name: "500", status: http.StatusInternalServerError, body: `{"error":"Internal server error."}`, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).Get(context.Background(), 9)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestGet_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Get(context.Background(), 1)

	require.Error(t, err)
	assert.EqualError(t, err, "http 418: short and stout")
}
