// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

// Package adapter provides the transport layer the tray application uses to
// talk to the sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the client core
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrAuth] for 401).
package adapter

import (
	"context"

	"github.com/vordan/ssh-tray/models"
)

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, credential
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Slug and password arguments are validated locally before any network call,
// so a malformed identifier fails fast with a wrapped
// [validators.ErrValidation].
type ServerAdapter interface {
	// Upload pushes a bookmark payload to the server. On success it returns
	// the new version timestamp, which the caller must remember and supply
	// as req.LastKnownTimestamp on the next upload. Returns a
	// [*ConflictError] (matching [ErrConflict]) when the server holds a
	// newer version, or [ErrAuth] on a password mismatch.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Download fetches the latest stored payload for slug. Returns
	// [ErrNotFound] when the slug has no versions or [ErrAuth] on a
	// password mismatch.
	Download(ctx context.Context, slug, password string) (models.DownloadResponse, error)

	// CheckSlug reports whether slug exists on the server and whether
	// password matches its latest version.
	CheckSlug(ctx context.Context, slug, password string) (models.CheckSlugResponse, error)

	// ChangePassword replaces the password on the server's latest version
	// of slug. Returns [ErrAuth] when oldPassword does not match or
	// [ErrNotFound] when the slug has no versions.
	ChangePassword(ctx context.Context, slug, oldPassword, newPassword string) error

	// Status fetches the server's unauthenticated health document. Used by
	// the connection test.
	Status(ctx context.Context) (models.StatusResponse, error)
}
