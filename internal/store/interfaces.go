// Package store persists sync version snapshots on the local filesystem.
//
// Each slug owns a subdirectory of the data dir holding one JSON file per
// stored version, at most [models.MaxVersions] of them. The server process is
// the only writer; there is no locking, so concurrent uploads to the same
// slug race read-modify-write. That window is an accepted limitation of the
// domain (personal bookmark lists, low write frequency).
package store

import (
	"context"

	"github.com/vordan/ssh-tray/models"
)

// VersionRepository is the storage contract for version snapshots.
type VersionRepository interface {
	// Latest returns the most recent version stored for slug, by timestamp
	// order. Returns [ErrNoVersions] when the slug has no stored versions.
	Latest(ctx context.Context, slug string) (models.Version, error)

	// Save stores v as a new version of v.Slug and prunes the oldest
	// versions beyond [models.MaxVersions].
	Save(ctx context.Context, v models.Version) error

	// ReplaceLatest overwrites the latest stored version of v.Slug with v,
	// keeping the version count unchanged. Used by password changes, which
	// must preserve the payload and timestamp. Returns [ErrNoVersions] when
	// the slug has no stored versions.
	ReplaceLatest(ctx context.Context, v models.Version) error

	// Stats reports the number of distinct slugs with at least one version
	// and the total number of version files, for the /status endpoint.
	Stats(ctx context.Context) (slugs, files int, err error)
}
