// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Reason codes produced by the transport layer itself. The message of each
// error is sent to the caller as is.
var (
	// ErrAuthMissing is returned when the request has no "Authorization"
	// header, or when an admin-only route is reached without an identity.
	ErrAuthMissing = errors.New("AUTH_MISSING")

	// ErrAuthWrongType is returned when the authorization scheme is not
	// "Bearer" (case-insensitive).
	ErrAuthWrongType = errors.New("AUTH_WRONG_TYPE")

	// ErrAuthTokenMissing is returned when the scheme is present but the
	// token after it is empty.
	ErrAuthTokenMissing = errors.New("AUTH_TOKEN_MISSING")

	ErrNotAdmin = errors.New("NOT ADMIN")

	ErrInvalidPostID = errors.New("INVALID_POST_ID")
	ErrInvalidBody   = errors.New("INVALID_BODY")
	ErrBodyTooLarge  = errors.New("BODY_TOO_LARGE")
	ErrNotFound      = errors.New("NOT_FOUND")
)
