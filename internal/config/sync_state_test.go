package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSyncState_MissingFile_ReturnsZeroState(t *testing.T) {
	state, err := LoadSyncState(filepath.Join(t.TempDir(), "sync.json"))

	require.NoError(t, err)
	assert.Equal(t, &SyncState{}, state)
}

func TestSyncState_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssh-tray", "sync.json")
	state := &SyncState{
		UserID:   "team-x",
		Password: "abcd",
		LastSync: "2026-08-28T10:00:00Z",
		SystemID: "vordan@workstation",
	}

	require.NoError(t, SaveSyncState(path, state))

	got, err := LoadSyncState(path)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestSaveSyncState_FileIsPrivate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.json")

	require.NoError(t, SaveSyncState(path, &SyncState{Password: "abcd"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadSyncState_CorruptFile_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := LoadSyncState(path)

	assert.Error(t, err)
}
