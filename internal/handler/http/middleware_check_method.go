// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This handler answers such requests exactly like unknown
// paths, with a 404 JSON error, hiding the existence of the route from
// callers that use an unsupported method.
func CheckHTTPMethod() http.HandlerFunc {
	return notFound
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrNotFound)
}
