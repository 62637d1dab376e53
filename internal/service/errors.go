// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)

// Reason codes returned to API callers as is.
var (
	ErrTokenInvalid             = errors.New("AUTH_TOKEN_INVALID")
	ErrNameAlreadyUsed          = errors.New("NAME_ALREADY_USED")
	ErrEmailAlreadyUsed         = errors.New("EMAIL_ALREADY_USED")
	ErrUserAlreadyExists        = errors.New("USER_ALREADY_EXISTS")
	ErrEmailOrPasswordIncorrect = errors.New("EMAIL_OR_PASSWORD_INCORRECT")
	ErrStorageUnavailable       = errors.New("STORAGE_UNAVAILABLE")
)
