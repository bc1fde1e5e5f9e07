package adapter

import (
	"errors"

	"github.com/vordan/ssh-tray/models"
)

var (
	// ErrNetwork indicates the request never produced an HTTP response
	// (connection refused, DNS failure, timeout).
	ErrNetwork = errors.New("sync server unreachable")

	// ErrBadRequest indicates the server rejected the request as malformed.
	ErrBadRequest = errors.New("bad request")

	// ErrAuth indicates a password mismatch on the server.
	ErrAuth = errors.New("wrong password")

	// ErrNotFound indicates the slug has no stored versions on the server.
	ErrNotFound = errors.New("no stored version for slug")

	// ErrConflict indicates the server holds a newer version than the one
	// the client last synced against.
	ErrConflict = errors.New("sync conflict")

	// ErrServer indicates an internal failure on the server side.
	ErrServer = errors.New("server error")
)

// ConflictError carries the server's competing snapshot alongside the
// [ErrConflict] kind, so the caller can show the user where the concurrent
// edit came from and what it contains.
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
