// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package bookmarks

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the bookmark file in the user's home directory.
const DefaultFileName = ".ssh-bookmarks"

// exampleFile is written on first run so the tray menu is never empty and the
// user has a template to edit.
const exampleFile = `# Example SSH bookmarks:
------ Dev Servers ------
Dev 1 [10.10.10.98]	root@10.10.10.98
Dev 2 [10.10.11.22]	root@10.10.11.22
------ Production ------
Prod DB	admin@192.168.1.5
`

// DefaultPath returns the bookmark file path in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads and parses the bookmark file at path. A missing file yields an
// empty entry list, not an error: the tray menu must always come up.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookmarks file: %w", err)
	}
	return Parse(string(data)), nil
}

// Save serializes entries and atomically replaces the bookmark file at path.
// The write-to-temp-then-rename dance keeps a crash mid-write from destroying
// the user's bookmarks.
func Save(path string, entries []Entry) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(Serialize(entries)), 0644); err != nil {
		return fmt.Errorf("write bookmarks file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace bookmarks file: %w", err)
	}
	return nil
}

// EnsureFile creates an example bookmark file at path when none exists.
// Reports whether the file was created (i.e. this is a first run).
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat bookmarks file: %w", err)
	}

	if err := os.WriteFile(path, []byte(exampleFile), 0644); err != nil {
		return false, fmt.Errorf("create bookmarks file: %w", err)
	}
	return true, nil
}
