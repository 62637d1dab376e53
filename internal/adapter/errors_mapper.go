// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-blog/models"
)

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
// The reason is taken from the JSON error body when there is one.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	reason := ""
	if body, ok := resp.Error().(*models.ErrorResponse); ok && body != nil {
		reason = body.Error
	}
	if reason == "" {
		reason = strings.TrimSpace(string(resp.Body()))
	}
	if reason == "" {
		reason = http.StatusText(resp.StatusCode())
	}

	return &APIError{Status: resp.StatusCode(), Reason: reason}
}
