// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authenticated
// [models.RequestIdentity] is stored in the request context.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.RequestIdentity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext retrieves the request identity stored by
// [WithIdentity].
//
// Returns ok == false when the value is missing or has an unexpected type.
//
// Example usage:
//
//	identity, ok := utils.IdentityFromContext(r.Context())
//	if !ok {
//	    // request was not authenticated
//	}
func IdentityFromContext(ctx context.Context) (models.RequestIdentity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.RequestIdentity)
	return identity, ok
}
