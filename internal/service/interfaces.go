// Package service implements the sync server's domain logic: storing
// uploaded bookmark snapshots, detecting concurrent edits, and answering
// slug/status queries. Handlers stay thin; every protocol rule lives here.
package service

import (
	"context"

	"github.com/vordan/ssh-tray/models"
)

// SyncService is the server-side sync protocol.
//
// Conflict detection is timestamp-only: the client's remembered last-sync
// timestamp is compared against the server's current latest. No content merge
// is attempted; on conflict the competing payload is handed back so a human
// can resolve it.
type SyncService interface {
	// Upload stores a new version for req.Slug and returns its timestamp.
	//
	// Fails with a wrapped [validators.ErrValidation] on a bad slug or
	// password, [ErrAuth] when req.Password does not match the latest stored
	// version's password, or a [*ConflictError] (matching [ErrConflict])
	// when req.LastKnownTimestamp is stale. The first upload to a slug
	// always succeeds regardless of the supplied timestamp.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Download returns the latest stored payload for slug, verbatim.
	// Fails with [ErrNotFound] when no version exists or [ErrAuth] on a
	// password mismatch.
	Download(ctx context.Context, slug, password string) (models.DownloadResponse, error)

	// CheckSlug reports whether slug has stored versions and whether
	// password matches the latest one. Only the latest version's password is
	// authoritative; historical passwords never authorize.
	CheckSlug(ctx context.Context, slug, password string) (models.CheckSlugResponse, error)

	// ChangePassword rewrites the latest version of slug with newPassword,
	// preserving payload and timestamp. Fails with [ErrNotFound] when no
	// version exists or [ErrAuth] when oldPassword does not match.
	ChangePassword(ctx context.Context, slug, oldPassword, newPassword string) error

	// Status reports server health, uptime, and store counters. No auth.
	Status(ctx context.Context) (models.StatusResponse, error)
}
