// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// scheme but the token value is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrTokenIsExpired is returned when the token's exp claim has passed.
	ErrTokenIsExpired = errors.New("token is expired")
)

// ErrValueNotLoaded is returned for keys that were not resolved at startup.
var ErrValueNotLoaded = errors.New("value was not loaded")
