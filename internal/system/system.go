// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

// Package system handles desktop integration for the tray application:
// system identity, .desktop files, login autostart, and uninstall cleanup.
package system

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

const desktopFileName = "ssh-tray.desktop"

// desktopEntry is the application menu launcher, also copied into the
// autostart directory when login autostart is enabled.
const desktopEntry = `[Desktop Entry]
Type=Application
Name=SSH Bookmark Manager
Exec=%s
Icon=network-server
Terminal=false
Categories=Utility;Network;
Comment=SSH tray bookmarks and launcher
`

// ID returns this machine's sync identity in the form "user@hostname".
// When either part cannot be determined it falls back to "unknown-system",
// matching what the server will see from misconfigured hosts.
func ID() string {
	u, err := user.Current()
	if err != nil {
		return "unknown-system"
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown-system"
	}
	return u.Username + "@" + host
}

// Paths resolves the desktop-integration file locations for the current user.
type Paths struct {
	DesktopFile   string
	AutostartFile string
}

// DefaultPaths returns the XDG locations for the launcher and autostart
// entries.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return Paths{
		DesktopFile:   filepath.Join(home, ".local", "share", "applications", desktopFileName),
		AutostartFile: filepath.Join(home, ".config", "autostart", desktopFileName),
	}, nil
}

// WriteDesktopFile creates the application menu launcher pointing at
// execPath.
func (p Paths) WriteDesktopFile(execPath string) error {
	if err := os.MkdirAll(filepath.Dir(p.DesktopFile), 0755); err != nil {
		return fmt.Errorf("create applications dir: %w", err)
	}
	contents := fmt.Sprintf(desktopEntry, execPath)
	if err := os.WriteFile(p.DesktopFile, []byte(contents), 0755); err != nil {
		return fmt.Errorf("write desktop file: %w", err)
	}
	return nil
}

// SetAutostart enables or disables launching the tray on login by creating or
// removing the autostart desktop entry.
func (p Paths) SetAutostart(enable bool, execPath string) error {
	if !enable {
		if err := os.Remove(p.AutostartFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove autostart file: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.AutostartFile), 0755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	contents := fmt.Sprintf(desktopEntry, execPath)
	if err := os.WriteFile(p.AutostartFile, []byte(contents), 0755); err != nil {
		return fmt.Errorf("write autostart file: %w", err)
	}
	return nil
}

// AutostartEnabled reports whether the autostart entry exists.
func (p Paths) AutostartEnabled() bool {
	_, err := os.Stat(p.AutostartFile)
	return err == nil
}

// Uninstall removes the desktop integration files. Configuration and
// bookmark files are left alone so a reinstall picks them up again.
func (p Paths) Uninstall() error {
	for _, path := range []string{p.DesktopFile, p.AutostartFile} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}
