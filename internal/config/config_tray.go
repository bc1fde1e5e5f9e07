// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vordan/ssh-tray/internal/bookmarks"
)

// DefaultConfigFileName is the legacy line-oriented config file in the user's
// home directory.
const DefaultConfigFileName = ".ssh-tray-config"

// TrayConfig is the merged configuration for the tray client.
type TrayConfig struct {
	// Terminal is the emulator command name or absolute path used to open
	// SSH sessions.
	// Env: TRAY_TERMINAL; legacy key: terminal
	Terminal string `env:"TERMINAL"`

	// SyncEnabled turns the sync menu actions on.
	// Env: TRAY_SYNC_ENABLED; legacy key: sync_enabled
	SyncEnabled bool `env:"SYNC_ENABLED"`

	// SyncServer is the sync server host.
	// Env: TRAY_SYNC_SERVER; legacy key: sync_server
	SyncServer string `env:"SYNC_SERVER"`

	// SyncPort is the sync server TCP port.
	// Env: TRAY_SYNC_PORT; legacy key: sync_port
	SyncPort int `env:"SYNC_PORT"`

	// BookmarksPath overrides the default ~/.ssh-bookmarks location.
	// Env: TRAY_BOOKMARKS
	BookmarksPath string `env:"BOOKMARKS"`

	// ConfigPath is where the legacy config file is read from. Populated
	// from flags or env before the file source runs.
	// Env: TRAY_CONFIG
	ConfigPath string `env:"CONFIG"`

	// ShowVersion and Uninstall come from the -version and -uninstall flags;
	// they select an alternate run mode instead of starting the tray.
	ShowVersion bool `env:"-"`
	Uninstall   bool `env:"-"`
}

// envPrefix for all TrayConfig lookups.
type trayEnvWrapper struct {
	Tray TrayConfig `envPrefix:"TRAY_"`
}

// GetTrayConfig loads and merges the tray client configuration.
// Priority: environment variables, then flags, then the legacy config file,
// then defaults.
func GetTrayConfig() (*TrayConfig, error) {
	cfg, err := newTrayBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if cfg.BookmarksPath == "" {
		if cfg.BookmarksPath, err = bookmarks.DefaultPath(); err != nil {
			return nil, err
		}
	}
	if cfg.ConfigPath == "" {
		if cfg.ConfigPath, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// DefaultConfigPath returns the legacy config file path in the user's home
// directory.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigFileName), nil
}

// trayDefaults are applied for any field left unset by the other sources.
func trayDefaults() *TrayConfig {
	return &TrayConfig{
		Terminal:   "mate-terminal",
		SyncServer: "localhost",
		SyncPort:   9182,
	}
}

func (cfg *TrayConfig) validate() error {
	if cfg.Terminal == "" {
		return ErrInvalidTerminalConfigs
	}
	if cfg.SyncEnabled && (cfg.SyncServer == "" || cfg.SyncPort <= 0) {
		return ErrInvalidSyncConfigs
	}
	return nil
}

// EnsureConfigFile writes a minimal default config file at path when none
// exists. Reports whether the file was created.
func EnsureConfigFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.WriteFile(path, []byte("terminal=mate-terminal\n"), 0644); err != nil {
		return false, fmt.Errorf("create config file: %w", err)
	}
	return true, nil
}
