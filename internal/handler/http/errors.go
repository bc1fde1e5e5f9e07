// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package http

import "errors"

// Sentinel errors used by the request handlers when reading credential
// headers. Callers can match against them with [errors.Is].
var (
	// ErrMissingSlugHeader is returned when a request that requires a
	// bookmark-set identifier does not carry the "X-User-ID" header.
	ErrMissingSlugHeader = errors.New("missing `X-User-ID` header")

	// ErrMissingPasswordHeader is returned when a request that requires
	// authentication does not carry the "X-Password" header.
	ErrMissingPasswordHeader = errors.New("missing `X-Password` header")

	// ErrMissingSystemIDHeader is returned when an upload request does not
	// identify the machine it originates from via the "X-System-ID" header.
	ErrMissingSystemIDHeader = errors.New("missing `X-System-ID` header")

	// ErrMissingNewPasswordHeader is returned by the change-password handler
	// when the "X-New-Password" header is absent.
	ErrMissingNewPasswordHeader = errors.New("missing `X-New-Password` header")
)
