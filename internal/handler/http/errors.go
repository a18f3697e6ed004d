// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// session cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the
	// incoming request does not carry the session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrEmptySessionCookie is returned when the session cookie is present
	// but holds no token.
	ErrEmptySessionCookie = errors.New("empty session cookie")
)
