// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

// Package validators holds the slug and password rules shared by the sync
// client and server. The client rejects bad values before any network call;
// the server re-checks them at the HTTP boundary.
package validators

import (
	"fmt"
	"regexp"
	"unicode"
)

const (
	// SlugMinLen and SlugMaxLen bound the slug length in characters.
	SlugMinLen = 3
	SlugMaxLen = 32

	// PasswordMinLen is the minimum password length in characters.
	PasswordMinLen = 4
)

// slugPattern permits alphanumerics plus hyphen and underscore.
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateSlug checks that slug is 3-32 characters of alphanumerics, hyphen,
// or underscore. Returns a wrapped [ErrInvalidSlug] otherwise.
func ValidateSlug(slug string) error {
	if len(slug) < SlugMinLen || len(slug) > SlugMaxLen {
		return fmt.Errorf("%w: must be %d-%d characters", ErrInvalidSlug, SlugMinLen, SlugMaxLen)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: only letters, digits, hyphen and underscore allowed", ErrInvalidSlug)
	}
	return nil
}

// ValidatePassword checks that password is at least 4 characters with no
// embedded whitespace. Returns a wrapped [ErrInvalidPassword] otherwise.
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLen {
		return fmt.Errorf("%w: must be at least %d characters", ErrInvalidPassword, PasswordMinLen)
	}
	for _, r := range password {
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: whitespace is not allowed", ErrInvalidPassword)
		}
	}
	return nil
}
