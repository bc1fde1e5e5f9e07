package service

import (
	"errors"

	"github.com/vordan/ssh-tray/models"
)

var (
	// ErrAuth indicates a password mismatch against the latest stored
	// version.
	ErrAuth = errors.New("wrong password")

	// ErrConflict indicates a concurrent edit: the client's last-known
	// timestamp no longer matches the server's latest version.
	ErrConflict = errors.New("sync conflict")

	// ErrNotFound indicates that a slug has no stored versions.
	ErrNotFound = errors.New("no stored version for slug")
)

// ConflictError carries the server's competing snapshot alongside the
// [ErrConflict] kind, so the handler can return it in the 409 body.
type ConflictError struct {
	Server models.ConflictResponse
}

func (e *ConflictError) Error() string {
	return "sync conflict: server has version " + e.Server.ServerTimestamp +
		" from " + e.Server.ServerSystemID
}

// Unwrap makes errors.Is(err, ErrConflict) match.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
