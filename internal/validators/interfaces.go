// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// services. Rules are declared with `validate` struct tags on the models
// and every failure is reported as the reason code of the first broken
// field (INVALID_NAME, INVALID_EMAIL, ...).
package validators

import "context"

// Validator validates a value. When fields are given, only those struct
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
