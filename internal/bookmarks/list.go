// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package bookmarks

import "slices"

// List is the in-memory, ordered bookmark sequence the editor operates on.
// All edit operations preserve the relative order of unaffected entries.
type List struct {
	entries []Entry
}

// NewList builds a List around the given entries. The slice is copied so the
// caller cannot mutate the list out from under the editor.
func NewList(entries []Entry) *List {
	return &List{entries: slices.Clone(entries)}
}

// Entries returns a copy of the current entry sequence in order.
func (l *List) Entries() []Entry {
	return slices.Clone(l.entries)
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Add appends an entry at the end of the list.
func (l *List) Add(e Entry) {
	l.entries = append(l.entries, e)
}

// Insert places an entry at index i, shifting later entries down. Indexes out
// of range are clamped to the list boundaries.
func (l *List) Insert(i int, e Entry) {
	if i < 0 {
		i = 0
	}
	if i > len(l.entries) {
		i = len(l.entries)
	}
	l.entries = slices.Insert(l.entries, i, e)
}

// Delete removes the entry at index i. Out-of-range indexes are a no-op.
func (l *List) Delete(i int) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	l.entries = slices.Delete(l.entries, i, i+1)
}

// MoveUp swaps the entry at index i with its predecessor and reports whether
// anything moved. The first entry cannot move up.
func (l *List) MoveUp(i int) bool {
	if i <= 0 || i >= len(l.entries) {
		return false
	}
	l.entries[i-1], l.entries[i] = l.entries[i], l.entries[i-1]
	return true
}

// MoveDown swaps the entry at index i with its successor and reports whether
// anything moved. The last entry cannot move down.
func (l *List) MoveDown(i int) bool {
	if i < 0 || i >= len(l.entries)-1 {
		return false
	}
	l.entries[i], l.entries[i+1] = l.entries[i+1], l.entries[i]
	return true
}

// Rename updates the visible text of the entry at index i: the label of a
// bookmark or the name of a group. Out-of-range indexes are a no-op.
func (l *List) Rename(i int, text string) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	switch l.entries[i].Kind {
	case KindBookmark:
		l.entries[i].Label = text
	case KindGroup:
		l.entries[i].Name = text
	}
}

// SetTarget updates the SSH target of the bookmark at index i. Group headers
// and out-of-range indexes are a no-op.
func (l *List) SetTarget(i int, target string) {
	if i < 0 || i >= len(l.entries) || l.entries[i].Kind != KindBookmark {
		return
	}
	l.entries[i].Target = target
}
