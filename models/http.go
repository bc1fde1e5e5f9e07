// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package models

import "encoding/json"

// UploadRequest carries everything the server needs to store a new version.
// On the wire the identity fields travel in HTTP headers (X-User-ID,
// X-Password, X-System-ID, X-Timestamp) and the payload is the request body;
// the handler assembles this struct from both.
type UploadRequest struct {
	// Slug is the identifier to store the payload under.
	Slug string `json:"slug"`

	// Password must match the latest stored version's password, unless no
	// version exists yet.
	Password string `json:"password"`

	// SystemID is the uploading machine, "user@hostname".
	SystemID string `json:"system_id"`

	// LastKnownTimestamp is the timestamp returned by the server on the
	// client's previous successful sync, or empty on first sync. A stale
	// value triggers conflict detection.
	LastKnownTimestamp string `json:"timestamp"`

	// Payload is the bookmark configuration being uploaded.
	Payload json.RawMessage `json:"payload"`
}

// UploadResponse is returned on a successful upload.
type UploadResponse struct {
	// Timestamp identifies the newly stored version. The client must remember
	// it and send it back as LastKnownTimestamp on the next upload.
	Timestamp string `json:"timestamp"`
}

// ConflictResponse is returned with HTTP 409 when the client's last-known
// timestamp no longer matches the server's latest version. It hands the
// competing snapshot to the client so a human can merge manually.
type ConflictResponse struct {
	// ServerData is the payload of the server's current latest version.
	ServerData json.RawMessage `json:"serverData"`

	// ServerTimestamp identifies the server's current latest version.
	ServerTimestamp string `json:"serverTimestamp"`

	// ServerSystemID is the machine that produced the server's latest
	// version, so the user can tell where the competing edit came from.
	ServerSystemID string `json:"serverSystemId"`
}

// DownloadResponse is returned for GET /download/{slug}.
type DownloadResponse struct {
	// Data is the latest stored payload, verbatim.
	Data json.RawMessage `json:"data"`

	// Timestamp identifies the returned version.
	Timestamp string `json:"timestamp"`

	// SystemID is the machine that uploaded the returned version.
	SystemID string `json:"systemId"`
}

// CheckSlugResponse reports whether a slug has stored versions and whether the
// supplied password matches the latest one. Only the latest version's password
// is consulted; historical passwords never authorize access.
type CheckSlugResponse struct {
	Exists     bool `json:"exists"`
	Authorized bool `json:"authorized"`
}

// StatusResponse is the unauthenticated health document for GET /status.
type StatusResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptimeSeconds"`

	// Slugs is the number of distinct slugs with at least one stored version.
	Slugs int `json:"slugs"`

	// Files is the total number of version files on disk.
	Files int `json:"files"`
}
