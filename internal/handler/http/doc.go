// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API under /api/v1. Request tracing, access logging, authentication and the
// admin restriction are handled in this package before requests are
// delegated to the service layer. Every failure is answered with a JSON
// body of the form {"status": <code>, "error": "<REASON>"}.
package http
