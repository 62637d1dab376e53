// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

const bearerScheme = "bearer"

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The checks run in order and the first failure ends the request with
// HTTP 401:
//   - the "Authorization" header is absent ([ErrAuthMissing]);
//   - the scheme is not "Bearer", compared case-insensitively
//     ([ErrAuthWrongType]);
//   - the token after the scheme is empty ([ErrAuthTokenMissing]);
//   - the token does not verify or its owner no longer exists
//     ([service.ErrTokenInvalid]).
//
// On success the resolved [models.RequestIdentity] is stored in the request
// context, see [utils.IdentityFromContext].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrAuthMissing)
			return
		}

		scheme, token := utils.ParseAuthorizationHeader(authHeader)
		if !strings.EqualFold(scheme, bearerScheme) {
			writeError(w, r, ErrAuthWrongType)
			return
		}
		if token == "" {
			writeError(w, r, ErrAuthTokenMissing)
			return
		}

		identity, err := h.services.UserService.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Int64("user_id", identity.User.ID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// requireAdmin lets through only requests whose identity, resolved by auth,
// belongs to an admin. It must be installed after auth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrAuthMissing)
			return
		}
		if !identity.User.IsAdmin() {
			writeError(w, r, ErrNotAdmin)
			return
		}

		next.ServeHTTP(w, r)
	})
}
