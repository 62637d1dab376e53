// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: request identity in context, password hashing, credential
// token signing and parsing, JSON responses, UUID generation and the
// pre-configured HTTP client.
package utils
