// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL, token string) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: time.Second,
		Token:          token,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestPull_Success(t *testing.T) {
	cookie := int64(3)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/replicache/pull", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"pullVersion":1,"clientGroupID":"cg1","cookie":3}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"cookie":                4,
			"lastMutationIDChanges": map[string]int64{"c1": 7},
			"patch": []map[string]any{
				{"op": "del", "key": "todo/t1"},
				{"op": "put", "key": "list/l1", "value": map[string]any{"id": "l1", "name": "Groceries"}},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "secret")
	got, err := a.Pull(context.Background(), models.PullRequest{
		PullVersion:   1,
		ClientGroupID: "cg1",
		Cookie:        &cookie,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), got.Cookie)
	assert.Equal(t, map[string]int64{"c1": 7}, got.LastMutationIDChanges)
	require.Len(t, got.Patch, 2)
	assert.Equal(t, models.DelOp("todo/t1"), got.Patch[0])
	assert.Equal(t, models.OpPut, got.Patch[1].Op)
	assert.Equal(t, "list/l1", got.Patch[1].Key)
	assert.Equal(t, map[string]any{"id": "l1", "name": "Groceries"}, got.Patch[1].Value)
}

func TestPull_NoTokenNoAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cookie":1,"lastMutationIDChanges":{},"patch":[{"op":"clear"}]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "").Pull(context.Background(), models.PullRequest{ClientGroupID: "cg"})
	require.NoError(t, err)
	assert.Equal(t, []models.PatchOperation{models.ClearOp()}, got.Patch)
}

func TestPull_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"no client group ID provided"}`, wantErr: ErrBadRequest, wantMsg: "no client group ID provided"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"invalid token"}`, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"client group belongs to another user"}`, wantErr: ErrForbidden, wantMsg: "client group belongs to another user"},
		{name: "not found", status: http.StatusNotFound, body: "404 page not found", wantErr: ErrNotFound, wantMsg: "404 page not found"},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL, "").Pull(context.Background(), models.PullRequest{ClientGroupID: "cg"})
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestPull_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Pull(context.Background(), models.PullRequest{ClientGroupID: "cg"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestPull_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url, "").Pull(context.Background(), models.PullRequest{ClientGroupID: "cg"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pull request")
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.ErrorIs(t, err, ErrEmptyAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"surrounding spaces", "  https://sync.example.com ", "https://sync.example.com", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
