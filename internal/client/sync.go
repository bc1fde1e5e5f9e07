package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vordan/ssh-tray/internal/adapter"
	"github.com/vordan/ssh-tray/internal/bookmarks"
	"github.com/vordan/ssh-tray/internal/config"
	"github.com/vordan/ssh-tray/internal/system"
	"github.com/vordan/ssh-tray/models"
)

var errSyncDisabled = errors.New("sync is not enabled")

// bookmarkPayload is the JSON document stored on the sync server. The
// bookmark file text is the canonical format already, so it travels
// verbatim; downloads re-parse it with the usual lenient rules.
type bookmarkPayload struct {
	Bookmarks string `json:"bookmarks"`
}

// loadSyncState reads the persisted sync credentials. The returned state
// always has a SystemID.
func (a *App) loadSyncState() (*config.SyncState, string, error) {
	path, err := config.SyncStatePath()
	if err != nil {
		return nil, "", err
	}

	state, err := config.LoadSyncState(path)
	if err != nil {
		return nil, "", err
	}
	if state == nil {
		state = &config.SyncState{}
	}
	if state.SystemID == "" {
		state.SystemID = system.ID()
	}

	if state.UserID == "" || state.Password == "" {
		return nil, "", fmt.Errorf("sync is not configured: set user_id and password in %s", path)
	}

	return state, path, nil
}

func (a *App) syncUpload(ctx context.Context) {
	if a.server == nil {
		a.surfaceError("Upload failed", errSyncDisabled)
		return
	}

	state, statePath, err := a.loadSyncState()
	if err != nil {
		a.surfaceError("Upload failed", err)
		return
	}

	payload, err := json.Marshal(bookmarkPayload{Bookmarks: bookmarks.Serialize(a.entries)})
	if err != nil {
		a.surfaceError("Upload failed", err)
		return
	}

	resp, err := a.server.Upload(ctx, models.UploadRequest{
		Slug:               state.UserID,
		Password:           state.Password,
		SystemID:           state.SystemID,
		LastKnownTimestamp: state.LastSync,
		Payload:            payload,
	})
	if err != nil {
		var conflict *adapter.ConflictError
		if errors.As(err, &conflict) {
			// Adopt the server's timestamp so a deliberate re-upload wins;
			// the competing version is surfaced, never merged.
			state.LastSync = conflict.Server.ServerTimestamp
			if saveErr := config.SaveSyncState(statePath, state); saveErr != nil {
				a.logger.Warn().Err(saveErr).Msg("saving sync state after conflict")
			}
			a.frontend.Notify("Sync conflict",
				fmt.Sprintf("The server has a newer version from %s (%s). "+
					"Download it to fetch that version, or upload again to overwrite it.",
					conflict.Server.ServerSystemID, conflict.Server.ServerTimestamp))
			return
		}

		a.surfaceError("Upload failed", err)
		return
	}

	state.LastSync = resp.Timestamp
	if err := config.SaveSyncState(statePath, state); err != nil {
		a.surfaceError("Upload succeeded but saving sync state failed", err)
		return
	}

	a.logger.Info().Str("slug", state.UserID).Str("timestamp", resp.Timestamp).Msg("bookmarks uploaded")
	a.frontend.Notify("Sync", "Bookmarks uploaded.")
}

func (a *App) syncDownload(ctx context.Context) {
	if a.server == nil {
		a.surfaceError("Download failed", errSyncDisabled)
		return
	}

	state, statePath, err := a.loadSyncState()
	if err != nil {
		a.surfaceError("Download failed", err)
		return
	}

	resp, err := a.server.Download(ctx, state.UserID, state.Password)
	if err != nil {
		a.surfaceError("Download failed", err)
		return
	}

	var payload bookmarkPayload
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		a.surfaceError("Download failed", fmt.Errorf("decode server payload: %w", err))
		return
	}

	entries := bookmarks.Parse(payload.Bookmarks)
	if err := bookmarks.Save(a.cfg.BookmarksPath, entries); err != nil {
		a.surfaceError("Download failed", err)
		return
	}

	state.LastSync = resp.Timestamp
	if err := config.SaveSyncState(statePath, state); err != nil {
		a.logger.Warn().Err(err).Msg("saving sync state after download")
	}

	a.logger.Info().Str("slug", state.UserID).Str("timestamp", resp.Timestamp).Msg("bookmarks downloaded")
	a.frontend.Notify("Sync", fmt.Sprintf("Bookmarks downloaded (version from %s).", resp.SystemID))
}

// TestConnection checks the sync server and reports its version.
func (a *App) TestConnection(ctx context.Context) (string, error) {
	if a.server == nil {
		return "", errSyncDisabled
	}

	status, err := a.server.Status(ctx)
	if err != nil {
		return "", fmt.Errorf("connection failed: %w", err)
	}

	return fmt.Sprintf("Connected to sync server (v%s)", status.Version), nil
}
