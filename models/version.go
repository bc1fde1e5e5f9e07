// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package models

import "encoding/json"

// MaxVersions is the number of version snapshots the server retains per slug.
// On every successful upload the oldest versions beyond this limit are pruned.
const MaxVersions = 5

// Version is one timestamped snapshot of a synced bookmark configuration.
// The server process exclusively owns the on-disk version files; nothing else
// is allowed to mutate them.
type Version struct {
	// Slug is the user-chosen identifier the configuration is stored under.
	Slug string `json:"slug"`

	// SystemID identifies the machine that produced this snapshot, in the
	// form "user@hostname".
	SystemID string `json:"system_id"`

	// Timestamp is the RFC 3339 server time at which the snapshot was stored.
	// It doubles as the version identity: the client remembers the timestamp
	// of its last successful sync and sends it back on the next upload.
	Timestamp string `json:"timestamp"`

	// Password guards the slug. Only the password of the latest stored
	// version is authoritative; passwords on older versions are historical.
	Password string `json:"password"`

	// Payload is the bookmark configuration exactly as the client sent it.
	// The server never inspects it.
	Payload json.RawMessage `json:"payload"`
}
