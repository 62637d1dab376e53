// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// decodeJSON reads the request body into dst. A body cut off by the size
// limit is reported as [ErrBodyTooLarge].
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

// postIDParam returns the {id} path parameter, which must be a UUID.
func postIDParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if !utils.IsUUID(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPostID, id)
	}
	return id, nil
}

// identity returns the identity attached by the auth middleware.
func identity(r *http.Request) (models.RequestIdentity, error) {
	id, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		return models.RequestIdentity{}, ErrAuthMissing
	}
	return id, nil
}

func writeAffected(w http.ResponseWriter, r *http.Request, affected int64) {
	writeJSON(w, r, []int64{affected}, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
