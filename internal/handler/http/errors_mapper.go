// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

const reasonInternal = "INTERNAL_SERVER_ERROR"

// errorMapping binds an error kind to a status. The reason code is the
// message of target unless reason overrides it.
type errorMapping struct {
	target error
	status int
	reason string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{target: ErrBodyTooLarge, status: http.StatusRequestEntityTooLarge},
	{target: ErrInvalidBody, status: http.StatusBadRequest},
	{target: ErrInvalidPostID, status: http.StatusBadRequest},
	{target: validators.ErrInvalidName, status: http.StatusBadRequest},
	{target: validators.ErrInvalidEmail, status: http.StatusBadRequest},
	{target: validators.ErrInvalidPassword, status: http.StatusBadRequest},
	{target: validators.ErrInvalidUserType, status: http.StatusBadRequest},
	{target: validators.ErrInvalidTitle, status: http.StatusBadRequest},
	{target: validators.ErrInvalidContent, status: http.StatusBadRequest},
	{target: validators.ErrInvalidVisibility, status: http.StatusBadRequest},
	{target: validators.ErrInvalidField, status: http.StatusBadRequest},
	{target: validators.ErrNoFieldsToUpdate, status: http.StatusBadRequest},
	{target: service.ErrNameAlreadyUsed, status: http.StatusBadRequest},
	{target: service.ErrEmailAlreadyUsed, status: http.StatusBadRequest},
	{target: service.ErrUserAlreadyExists, status: http.StatusBadRequest},
	{target: store.ErrInvalidValue, status: http.StatusBadRequest, reason: "INVALID_VALUE"},

	{target: ErrAuthMissing, status: http.StatusUnauthorized},
	{target: ErrAuthWrongType, status: http.StatusUnauthorized},
	{target: ErrAuthTokenMissing, status: http.StatusUnauthorized},
	{target: service.ErrTokenInvalid, status: http.StatusUnauthorized},
	{target: ErrNotAdmin, status: http.StatusUnauthorized},
	{target: service.ErrEmailOrPasswordIncorrect, status: http.StatusUnauthorized},

	{target: ErrNotFound, status: http.StatusNotFound},

	{target: service.ErrStorageUnavailable, status: http.StatusServiceUnavailable},
	{target: context.DeadlineExceeded, status: http.StatusGatewayTimeout, reason: "REQUEST_TIMEOUT"},
}

// errorResponse translates err into the body sent to the caller.
// Unknown errors become 500 INTERNAL_SERVER_ERROR.
func errorResponse(err error) models.ErrorResponse {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		reason := m.reason
		if reason == "" {
			reason = m.target.Error()
		}
		return models.ErrorResponse{Status: m.status, Error: reason}
	}

	return models.ErrorResponse{Status: http.StatusInternalServerError, Error: reasonInternal}
}

// writeError logs err with the request logger and answers with its JSON
// representation.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse(err)

	log := logger.FromRequest(r)
	if resp.Status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.Status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", resp.Status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, resp, resp.Status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
