package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vordan/ssh-tray/internal/bookmarks"
)

func TestBuild_EmptyEntries_StillHasControls(t *testing.T) {
	snap := Build(nil, false)

	require.NotEmpty(t, snap.Items)
	assert.Equal(t, ItemSeparator, snap.Items[0].Kind)
	assert.Equal(t, ActionQuit, snap.Items[len(snap.Items)-1].Action)
}

func TestBuild_BookmarkOrderIsFileOrder(t *testing.T) {
	entries := []bookmarks.Entry{
		bookmarks.NewGroup("Dev"),
		bookmarks.NewBookmark("Dev 1", "root@10.10.10.98"),
		bookmarks.NewBookmark("Dev 2", "root@10.10.11.22"),
	}

	snap := Build(entries, false)

	require.GreaterOrEqual(t, len(snap.Items), 3)
	assert.Equal(t, Item{Kind: ItemHeader, Title: "Dev"}, snap.Items[0])
	assert.Equal(t, "Dev 1", snap.Items[1].Title)
	assert.Equal(t, "root@10.10.10.98", snap.Items[1].Target)
	assert.Equal(t, "Dev 2", snap.Items[2].Title)
}

func TestBuild_GroupsAreHeaders(t *testing.T) {
	snap := Build([]bookmarks.Entry{bookmarks.NewGroup("Prod")}, false)

	assert.Equal(t, ItemHeader, snap.Items[0].Kind)
	assert.Empty(t, snap.Items[0].Target)
}

func TestBuild_SyncDisabled_NoSyncActions(t *testing.T) {
	snap := Build(nil, false)

	for _, item := range snap.Items {
		assert.NotEqual(t, ActionSyncUpload, item.Action)
		assert.NotEqual(t, ActionSyncDownload, item.Action)
	}
}

func TestBuild_SyncEnabled_HasSyncActions(t *testing.T) {
	snap := Build(nil, true)

	actions := make(map[Action]bool)
	for _, item := range snap.Items {
		actions[item.Action] = true
	}
	assert.True(t, actions[ActionSyncUpload])
	assert.True(t, actions[ActionSyncDownload])
}

func TestBuild_SnapshotsAreIndependent(t *testing.T) {
	entries := []bookmarks.Entry{bookmarks.NewBookmark("a", "u@h")}

	first := Build(entries, false)
	entries[0].Label = "changed"
	second := Build(entries, false)

	assert.Equal(t, "a", first.Items[0].Title)
	assert.Equal(t, "changed", second.Items[0].Title)
}
