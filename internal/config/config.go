// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package config

import (
	"time"
)

// ServerConfig is the top-level configuration for the sync server. It is
// populated by merging environment variables, command-line flags, and
// defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ServerConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the on-disk version store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// App holds application-level settings exposed via /status.
	App App `envPrefix:"APP_"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request deadline (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the file-backed version store.
type Storage struct {
	// DataDir is the directory that holds one subdirectory of version files
	// per slug. The server process owns this tree exclusively.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version reported by GET /status.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// GetServerConfig loads, merges, and validates the sync server configuration.
// Priority: environment variables, then flags, then defaults.
func GetServerConfig() (*ServerConfig, error) {
	return newServerBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
}

// serverDefaults are applied for any field left unset by env and flags.
func serverDefaults() *ServerConfig {
	return &ServerConfig{
		Server: Server{
			HTTPAddress:    ":9182",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DataDir: "data",
		},
		App: App{
			Version: "dev",
		},
	}
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DataDir == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}
