// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the blog's HTTP API.
//
// The primary abstraction is [ServerAdapter], which hides the REST details
// from the command-line client. Error bodies sent by the server
// ({"status": ..., "error": "REASON"}) are decoded into [*APIError], which
// unwraps to one of the sentinels defined in errors.go so that callers can
// use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter
