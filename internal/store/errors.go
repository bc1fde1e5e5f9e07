package store

import "errors"

var (
	// ErrNoVersions indicates that a slug has no stored versions.
	ErrNoVersions = errors.New("no versions stored for slug")

	// ErrReadingVersions indicates a failure while listing or decoding
	// version files.
	ErrReadingVersions = errors.New("error reading version files")

	// ErrSavingVersion indicates a failure while writing a version file.
	ErrSavingVersion = errors.New("error saving version file")
)
