// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// syncStateFileName inside the user config dir ("~/.config/ssh-tray").
const syncStateFileName = "sync.json"

// SyncState holds the client's sync credentials and the timestamp of the last
// successful sync. It is persisted as JSON in the user config dir, separate
// from the hand-editable legacy config file.
type SyncState struct {
	// UserID is the slug the bookmarks are stored under on the server.
	UserID string `json:"user_id"`

	// Password guards the slug on the server.
	Password string `json:"password"`

	// LastSync is the server timestamp returned by the last successful
	// upload or download, or empty before the first sync. Sent back as
	// X-Timestamp so the server can detect concurrent edits.
	LastSync string `json:"last_sync"`

	// SystemID is this machine's identity, "user@hostname".
	SystemID string `json:"system_id"`
}

// SyncStatePath returns the sync state file location in the user config dir.
func SyncStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "ssh-tray", syncStateFileName), nil
}

// LoadSyncState reads the sync state from path. A missing file yields a zero
// state, not an error.
func LoadSyncState(path string) (*SyncState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &SyncState{}, nil
		}
		return nil, fmt.Errorf("read sync state: %w", err)
	}

	state := &SyncState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("decode sync state: %w", err)
	}
	return state, nil
}

// SaveSyncState persists the sync state to path, creating parent directories
// as needed. Written 0600 since it holds the sync password.
func SaveSyncState(path string, state *SyncState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create sync state dir: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sync state: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write sync state: %w", err)
	}
	return nil
}
