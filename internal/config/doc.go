// Package config provides configuration loading, merging, and validation for
// both ssh-tray binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. The legacy line-oriented config file (tray only)
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] for the sync server and
// [GetTrayConfig] for the tray client. Client sync credentials and the
// last-sync timestamp live in a separate JSON state file, see [SyncState].
package config
