// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBodySize caps request bodies; posts are plain text.
const maxRequestBodySize = 1 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(middleware.RequestSize(maxRequestBodySize))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/health", h.health)
			r.Get("/version", h.getServerVersion)
			r.Post("/users/register", h.register)
			r.Post("/users/login", h.login)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users", h.listUsers)

			r.Post("/posts/create", h.createPost)
			r.Get("/posts", h.listOwnPosts)
			r.Get("/posts/getall", h.listPublicPosts)
			r.Put("/posts/{id}", h.updatePost)
			r.Put("/posts/visibility/{id}", h.updatePostVisibility)
			r.Delete("/posts/{id}", h.deleteOwnPost)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAdmin)

				r.Post("/users", h.createUser)
				r.Delete("/posts/deleteAdmin/{id}", h.deleteAnyPost)
			})
		})
	})

	return router
}
