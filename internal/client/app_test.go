package client

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vordan/ssh-tray/internal/adapter"
	"github.com/vordan/ssh-tray/internal/config"
	"github.com/vordan/ssh-tray/internal/logger"
	"github.com/vordan/ssh-tray/internal/menu"
	"github.com/vordan/ssh-tray/models"
)

type fakeFrontend struct {
	mu         sync.Mutex
	snapshots  []menu.Snapshot
	notices    []string
	selections chan menu.Item
	rendered   chan struct{}
}

func newFakeFrontend() *fakeFrontend {
	return &fakeFrontend{
		selections: make(chan menu.Item),
		rendered:   make(chan struct{}, 16),
	}
}

func (f *fakeFrontend) Render(snapshot menu.Snapshot) {
	f.mu.Lock()
	f.snapshots = append(f.snapshots, snapshot)
	f.mu.Unlock()

	select {
	case f.rendered <- struct{}{}:
	default:
	}
}

func (f *fakeFrontend) Selections() <-chan menu.Item { return f.selections }

func (f *fakeFrontend) Notify(title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, title+": "+message)
}

func (f *fakeFrontend) Close() error { return nil }

func (f *fakeFrontend) lastSnapshot() menu.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.snapshots) == 0 {
		return menu.Snapshot{}
	}
	return f.snapshots[len(f.snapshots)-1]
}

func (f *fakeFrontend) noticeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notices)
}

type fakeServerAdapter struct {
	uploadFn   func(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)
	downloadFn func(ctx context.Context, slug, password string) (models.DownloadResponse, error)
	statusFn   func(ctx context.Context) (models.StatusResponse, error)
}

func (f *fakeServerAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	return f.uploadFn(ctx, req)
}

func (f *fakeServerAdapter) Download(ctx context.Context, slug, password string) (models.DownloadResponse, error) {
	return f.downloadFn(ctx, slug, password)
}

func (f *fakeServerAdapter) CheckSlug(ctx context.Context, slug, password string) (models.CheckSlugResponse, error) {
	return models.CheckSlugResponse{}, nil
}

func (f *fakeServerAdapter) ChangePassword(ctx context.Context, slug, oldPassword, newPassword string) error {
	return nil
}

func (f *fakeServerAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	return f.statusFn(ctx)
}

func newTestApp(t *testing.T, frontend *fakeFrontend, server adapter.ServerAdapter) *App {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.TrayConfig{
		Terminal:      "xterm",
		SyncEnabled:   server != nil,
		BookmarksPath: filepath.Join(dir, ".ssh-bookmarks"),
		ConfigPath:    filepath.Join(dir, ".ssh-tray-config"),
	}

	watcher, err := NewBookmarkWatcher()
	require.NoError(t, err)

	return &App{
		cfg:      cfg,
		frontend: frontend,
		server:   server,
		watcher:  watcher,
		logger:   logger.Nop(),
	}
}

func writeBookmarks(t *testing.T, app *App, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(app.cfg.BookmarksPath, []byte(text), 0644))
}

func writeSyncState(t *testing.T, state *config.SyncState) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := config.SyncStatePath()
	require.NoError(t, err)
	require.NoError(t, config.SaveSyncState(path, state))

	return path
}

// ─────────────────────────────────────────────
// Menu building and reload
// ─────────────────────────────────────────────

func TestReload_RendersBookmarksAndControls(t *testing.T) {
	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, nil)
	writeBookmarks(t, app, "------ Work ------\nDev 1\troot@10.0.0.1\n")

	require.NoError(t, app.reload())

	snapshot := frontend.lastSnapshot()
	require.NotEmpty(t, snapshot.Items)

	assert.Equal(t, menu.ItemHeader, snapshot.Items[0].Kind)
	assert.Equal(t, "Work", snapshot.Items[0].Title)
	assert.Equal(t, menu.ItemLaunch, snapshot.Items[1].Kind)
	assert.Equal(t, "root@10.0.0.1", snapshot.Items[1].Target)

	last := snapshot.Items[len(snapshot.Items)-1]
	assert.Equal(t, menu.ActionQuit, last.Action)
}

func TestReload_MissingFileYieldsEmptyMenu(t *testing.T) {
	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, nil)

	require.NoError(t, app.reload())

	for _, item := range frontend.lastSnapshot().Items {
		assert.NotEqual(t, menu.ItemLaunch, item.Kind)
	}
}

// ─────────────────────────────────────────────
// Event loop
// ─────────────────────────────────────────────

func TestRun_QuitSelectionStopsLoop(t *testing.T) {
	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, nil)
	writeBookmarks(t, app, "Dev 1\troot@10.0.0.1\n")

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	frontend.selections <- menu.Item{Kind: menu.ItemAction, Action: menu.ActionQuit}

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after quit")
	}
}

func TestRun_ContextCancelStopsLoop(t *testing.T) {
	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, nil)
	writeBookmarks(t, app, "Dev 1\troot@10.0.0.1\n")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRun_FileChangeRebuildsMenu(t *testing.T) {
	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, nil)
	writeBookmarks(t, app, "Dev 1\troot@10.0.0.1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	// initial render
	select {
	case <-frontend.rendered:
	case <-time.After(2 * time.Second):
		t.Fatal("no initial render")
	}

	writeBookmarks(t, app, "Dev 1\troot@10.0.0.1\nDev 2\troot@10.0.0.2\n")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-frontend.rendered:
			launches := 0
			for _, item := range frontend.lastSnapshot().Items {
				if item.Kind == menu.ItemLaunch {
					launches++
				}
			}
			if launches == 2 {
				cancel()
				<-done
				return
			}
		case <-deadline:
			t.Fatal("menu was not rebuilt after the bookmark file changed")
		}
	}
}

// ─────────────────────────────────────────────
// Launch errors
// ─────────────────────────────────────────────

func TestHandleSelection_InvalidTargetSurfacedOnce(t *testing.T) {
	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, nil)

	quit := app.handleSelection(context.Background(),
		menu.Item{Kind: menu.ItemLaunch, Title: "Bad", Target: "host; rm -rf /"})

	assert.False(t, quit)
	assert.Equal(t, 1, frontend.noticeCount())
}

// ─────────────────────────────────────────────
// Sync flows
// ─────────────────────────────────────────────

func TestSyncUpload_Success(t *testing.T) {
	statePath := writeSyncState(t, &config.SyncState{
		UserID:   "team-x",
		Password: "abcd",
		SystemID: "user@host",
		LastSync: "2026-08-28T09:00:00Z",
	})

	var captured models.UploadRequest
	server := &fakeServerAdapter{
		uploadFn: func(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
			captured = req
			return models.UploadResponse{Timestamp: "2026-08-28T10:00:00Z"}, nil
		},
	}

	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, server)
	writeBookmarks(t, app, "Dev 1\troot@10.0.0.1\n")
	require.NoError(t, app.reload())

	app.syncUpload(context.Background())

	assert.Equal(t, "team-x", captured.Slug)
	assert.Equal(t, "2026-08-28T09:00:00Z", captured.LastKnownTimestamp)

	var payload bookmarkPayload
	require.NoError(t, json.Unmarshal(captured.Payload, &payload))
	assert.Contains(t, payload.Bookmarks, "Dev 1\troot@10.0.0.1")

	state, err := config.LoadSyncState(statePath)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28T10:00:00Z", state.LastSync)

	assert.Equal(t, 1, frontend.noticeCount())
}

func TestSyncUpload_NotConfigured(t *testing.T) {
	writeSyncState(t, &config.SyncState{})

	server := &fakeServerAdapter{
		uploadFn: func(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
			t.Fatal("upload must not be called without credentials")
			return models.UploadResponse{}, nil
		},
	}

	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, server)

	app.syncUpload(context.Background())

	assert.Equal(t, 1, frontend.noticeCount())
}

func TestSyncUpload_ConflictAdoptsServerTimestamp(t *testing.T) {
	statePath := writeSyncState(t, &config.SyncState{
		UserID:   "team-x",
		Password: "abcd",
		SystemID: "user@host",
		LastSync: "2026-08-28T09:00:00Z",
	})

	server := &fakeServerAdapter{
		uploadFn: func(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
			return models.UploadResponse{}, &adapter.ConflictError{
				Server: models.ConflictResponse{
					ServerData:      json.RawMessage(`{"bookmarks":""}`),
					ServerTimestamp: "2026-08-28T09:30:00Z",
					ServerSystemID:  "other@machine",
				},
			}
		},
	}

	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, server)
	writeBookmarks(t, app, "Dev 1\troot@10.0.0.1\n")
	require.NoError(t, app.reload())

	app.syncUpload(context.Background())

	state, err := config.LoadSyncState(statePath)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28T09:30:00Z", state.LastSync)

	require.Equal(t, 1, frontend.noticeCount())
	assert.Contains(t, frontend.notices[0], "other@machine")
}

func TestSyncDownload_WritesBookmarkFile(t *testing.T) {
	statePath := writeSyncState(t, &config.SyncState{
		UserID:   "team-x",
		Password: "abcd",
		SystemID: "user@host",
	})

	payload, err := json.Marshal(bookmarkPayload{
		Bookmarks: "------ Work ------\nDev 2\troot@10.0.0.2\n",
	})
	require.NoError(t, err)

	server := &fakeServerAdapter{
		downloadFn: func(ctx context.Context, slug, password string) (models.DownloadResponse, error) {
			return models.DownloadResponse{
				Data:      payload,
				Timestamp: "2026-08-28T10:00:00Z",
				SystemID:  "other@machine",
			}, nil
		},
	}

	frontend := newFakeFrontend()
	app := newTestApp(t, frontend, server)

	app.syncDownload(context.Background())

	data, err := os.ReadFile(app.cfg.BookmarksPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dev 2\troot@10.0.0.2")
	assert.Contains(t, string(data), "Work")

	state, err := config.LoadSyncState(statePath)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28T10:00:00Z", state.LastSync)
}

func TestTestConnection(t *testing.T) {
	frontend := newFakeFrontend()

	t.Run("sync disabled", func(t *testing.T) {
		app := newTestApp(t, frontend, nil)

		_, err := app.TestConnection(context.Background())
		assert.Error(t, err)
	})

	t.Run("reports server version", func(t *testing.T) {
		server := &fakeServerAdapter{
			statusFn: func(ctx context.Context) (models.StatusResponse, error) {
				return models.StatusResponse{Status: "ok", Version: "1.2.0"}, nil
			},
		}
		app := newTestApp(t, frontend, server)

		msg, err := app.TestConnection(context.Background())
		require.NoError(t, err)
		assert.Contains(t, msg, "1.2.0")
	})
}
