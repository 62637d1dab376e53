// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Reason codes of rejected input. The message of each error is returned to
// the API caller as is.
var (
	ErrInvalidName       = errors.New("INVALID_NAME")
	ErrInvalidEmail      = errors.New("INVALID_EMAIL")
	ErrInvalidPassword   = errors.New("INVALID_PASSWORD")
	ErrInvalidUserType   = errors.New("INVALID_USER_TYPE")
	ErrInvalidTitle      = errors.New("INVALID_TITLE")
	ErrInvalidContent    = errors.New("INVALID_CONTENT")
	ErrInvalidVisibility = errors.New("INVALID_VISIBILITY")
	ErrInvalidField      = errors.New("INVALID_FIELD")
	ErrNoFieldsToUpdate  = errors.New("NO_FIELDS_TO_UPDATE")
)
