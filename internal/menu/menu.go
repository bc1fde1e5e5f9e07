// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

// Package menu models the tray menu as an immutable snapshot.
//
// A Snapshot is rebuilt from the bookmark file on every refresh and handed to
// the rendering frontend wholesale; menu items are never mutated in place.
// The actual tray toolkit lives behind the client's Frontend interface and is
// outside this package.
package menu

import "github.com/vordan/ssh-tray/internal/bookmarks"

// ItemKind discriminates the menu item variants.
type ItemKind int

const (
	// ItemLaunch opens an SSH connection when activated.
	ItemLaunch ItemKind = iota

	// ItemHeader is a disabled section header.
	ItemHeader

	// ItemSeparator is a visual divider.
	ItemSeparator

	// ItemAction triggers an application command (edit, sync, quit, ...).
	ItemAction
)

// Action identifies the application command behind an ItemAction item.
type Action string

const (
	ActionEdit         Action = "edit"
	ActionInstructions Action = "instructions"
	ActionSyncUpload   Action = "sync-upload"
	ActionSyncDownload Action = "sync-download"
	ActionQuit         Action = "quit"
)

// Item is one rendered menu entry.
type Item struct {
	Kind  ItemKind
	Title string

	// Target is set for ItemLaunch: the "user@host[:port]" to connect to.
	Target string

	// Action is set for ItemAction.
	Action Action
}

// Snapshot is a complete tray menu state. Frontends render it top to bottom.
type Snapshot struct {
	Items []Item
}

// Build constructs the menu snapshot for the given bookmark entries.
// Bookmark file order is display order. Control items are appended below the
// bookmarks; sync actions appear only when sync is enabled.
func Build(entries []bookmarks.Entry, syncEnabled bool) Snapshot {
	items := make([]Item, 0, len(entries)+7)

	for _, e := range entries {
		switch e.Kind {
		case bookmarks.KindGroup:
			items = append(items, Item{Kind: ItemHeader, Title: e.Name})
		case bookmarks.KindBookmark:
			items = append(items, Item{Kind: ItemLaunch, Title: e.Label, Target: e.Target})
		}
	}

	items = append(items, Item{Kind: ItemSeparator})
	items = append(items, Item{Kind: ItemAction, Title: "Edit bookmarks/config", Action: ActionEdit})
	items = append(items, Item{Kind: ItemAction, Title: "Show instructions", Action: ActionInstructions})

	if syncEnabled {
		items = append(items, Item{Kind: ItemAction, Title: "Upload bookmarks", Action: ActionSyncUpload})
		items = append(items, Item{Kind: ItemAction, Title: "Download bookmarks", Action: ActionSyncDownload})
	}

	items = append(items, Item{Kind: ItemSeparator})
	items = append(items, Item{Kind: ItemAction, Title: "Quit", Action: ActionQuit})

	return Snapshot{Items: items}
}
