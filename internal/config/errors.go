package config

import "errors"

// Validation errors returned by the config builders when required settings
// are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid sync server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid version store settings
	// (for example, an empty data directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidTerminalConfigs indicates an empty terminal setting.
	ErrInvalidTerminalConfigs = errors.New("invalid terminal configuration")
	// ErrInvalidSyncConfigs indicates sync is enabled without a usable
	// server host and port.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
