package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vordan/ssh-tray/internal/config"
	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/validators"
	"github.com/vordan/ssh-tray/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.TrayConfig{SyncServer: srv.URL}, logger.Nop())
	require.NoError(t, err)

	return a
}

func testUploadRequest() models.UploadRequest {
	return models.UploadRequest{
		Slug:               "team-x",
		Password:           "abcd",
		SystemID:           "user@host",
		LastKnownTimestamp: "2026-08-28T10:00:00Z",
		Payload:            json.RawMessage(`{"entries":[]}`),
	}
}

// ─────────────────────────────────────────────
// Base URL normalisation
// ─────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		port    int
		want    string
		wantErr bool
	}{
		{"bare host with port", "localhost", 9182, "http://localhost:9182", false},
		{"scheme kept", "https://sync.example.com", 9182, "https://sync.example.com:9182", false},
		{"explicit port wins", "localhost:8080", 9182, "http://localhost:8080", false},
		{"trailing slash trimmed", "http://localhost:9182/", 0, "http://localhost:9182", false},
		{"empty host", "", 9182, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.host, tt.port)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// Upload
// ─────────────────────────────────────────────

func TestAdapterUpload_SendsHeadersAndBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)
		assert.Equal(t, "team-x", r.Header.Get("X-User-ID"))
		assert.Equal(t, "abcd", r.Header.Get("X-Password"))
		assert.Equal(t, "user@host", r.Header.Get("X-System-ID"))
		assert.Equal(t, "2026-08-28T10:00:00Z", r.Header.Get("X-Timestamp"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"entries":[]}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"timestamp":"2026-08-28T10:00:01Z"}`))
	})

	resp, err := a.Upload(context.Background(), testUploadRequest())

	require.NoError(t, err)
	assert.Equal(t, "2026-08-28T10:00:01Z", resp.Timestamp)
}

func TestAdapterUpload_ConflictDecoded(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"serverData":{"a":2},"serverTimestamp":"2026-08-28T10:05:00Z","serverSystemId":"other@machine"}`))
	})

	_, err := a.Upload(context.Background(), testUploadRequest())

	require.ErrorIs(t, err, ErrConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "2026-08-28T10:05:00Z", conflict.Server.ServerTimestamp)
	assert.Equal(t, "other@machine", conflict.Server.ServerSystemID)
	assert.JSONEq(t, `{"a":2}`, string(conflict.Server.ServerData))
}

func TestAdapterUpload_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong password", http.StatusUnauthorized)
	})

	_, err := a.Upload(context.Background(), testUploadRequest())

	assert.ErrorIs(t, err, ErrAuth)
}

func TestAdapterUpload_InvalidSlugNeverHitsNetwork(t *testing.T) {
	called := false
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := testUploadRequest()
	req.Slug = "a b"
	_, err := a.Upload(context.Background(), req)

	assert.ErrorIs(t, err, validators.ErrInvalidSlug)
	assert.False(t, called)
}

func TestAdapterUpload_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	a, err := NewHTTPServerAdapter(config.TrayConfig{SyncServer: srv.URL}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Upload(context.Background(), testUploadRequest())

	assert.ErrorIs(t, err, ErrNetwork)
}

// ─────────────────────────────────────────────
// Download
// ─────────────────────────────────────────────

func TestAdapterDownload_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/download/team-x", r.URL.Path)
		assert.Equal(t, "abcd", r.Header.Get("X-Password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"a":1},"timestamp":"2026-08-28T10:00:01Z","systemId":"user@host"}`))
	})

	resp, err := a.Download(context.Background(), "team-x", "abcd")

	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(resp.Data))
	assert.Equal(t, "2026-08-28T10:00:01Z", resp.Timestamp)
	assert.Equal(t, "user@host", resp.SystemID)
}

func TestAdapterDownload_NotFound(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no stored version", http.StatusNotFound)
	})

	_, err := a.Download(context.Background(), "team-x", "abcd")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ─────────────────────────────────────────────
// CheckSlug / ChangePassword / Status
// ─────────────────────────────────────────────

func TestAdapterCheckSlug_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check-slug", r.URL.Path)
		assert.Equal(t, "team-x", r.Header.Get("X-User-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"exists":true,"authorized":true}`))
	})

	resp, err := a.CheckSlug(context.Background(), "team-x", "abcd")

	require.NoError(t, err)
	assert.True(t, resp.Exists)
	assert.True(t, resp.Authorized)
}

func TestAdapterChangePassword_SendsNewPasswordHeader(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/change-password", r.URL.Path)
		assert.Equal(t, "abcd", r.Header.Get("X-Password"))
		assert.Equal(t, "efgh", r.Header.Get("X-New-Password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	err := a.ChangePassword(context.Background(), "team-x", "abcd", "efgh")

	assert.NoError(t, err)
}

func TestAdapterChangePassword_InvalidNewPasswordRejectedLocally(t *testing.T) {
	called := false
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	err := a.ChangePassword(context.Background(), "team-x", "abcd", "ab")

	assert.ErrorIs(t, err, validators.ErrInvalidPassword)
	assert.False(t, called)
}

func TestAdapterStatus_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status", r.URL.Path)
		assert.Empty(t, r.Header.Get("X-Password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.2.0","uptimeSeconds":7,"slugs":1,"files":2}`))
	})

	resp, err := a.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.0", resp.Version)
	assert.EqualValues(t, 7, resp.UptimeSeconds)
}
