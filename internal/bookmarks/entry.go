// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

// Package bookmarks implements the bookmark file format: an ordered, plain
// text list of SSH connection bookmarks and group headers.
//
// The file order is semantic. It is both the display order of the tray menu
// and the persisted order; nothing in this package ever sorts entries.
package bookmarks

// Kind discriminates the two entry variants stored in a bookmark file.
type Kind int

const (
	// KindBookmark is a launchable SSH target with a human label.
	KindBookmark Kind = iota

	// KindGroup is a non-interactive section header.
	KindGroup
)

// String returns a human-readable representation of the entry kind.
func (k Kind) String() string {
	switch k {
	case KindBookmark:
		return "bookmark"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Entry is one line of the bookmark file: either a bookmark or a group
// header, discriminated by Kind.
type Entry struct {
	Kind Kind

	// Label and Target are set for KindBookmark. Target has the form
	// "user@host" or "user@host:port".
	Label  string
	Target string

	// Name is set for KindGroup.
	Name string
}

// NewBookmark constructs a bookmark entry.
func NewBookmark(label, target string) Entry {
	return Entry{Kind: KindBookmark, Label: label, Target: target}
}

// NewGroup constructs a group header entry.
func NewGroup(name string) Entry {
	return Entry{Kind: KindGroup, Name: name}
}
