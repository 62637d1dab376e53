// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse carries the token issued on a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	// Status repeats the HTTP status code of the response.
	Status int `json:"status"`

	// Error is a machine-readable reason code such as "AUTH_MISSING".
	Error string `json:"error"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
