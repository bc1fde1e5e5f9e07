package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the base kind for all boundary validation failures.
// ErrInvalidSlug and ErrInvalidPassword wrap it, so callers that do not care
// which rule failed can match with errors.Is(err, ErrValidation).
var (
	ErrValidation = errors.New("validation error")

	// ErrInvalidSlug indicates a slug outside the allowed length or
	// character set.
	ErrInvalidSlug = fmt.Errorf("%w: invalid slug", ErrValidation)

	// ErrInvalidPassword indicates a password that is too short or contains
	// whitespace.
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", ErrValidation)
)
