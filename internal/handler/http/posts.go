// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreatePostRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.PostService.Create(r.Context(), caller.User.ID, req); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOwnPosts(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListOwn(r.Context(), caller.User.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePosts(w, r, posts)
}

func (h *Handler) listPublicPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPublic(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePosts(w, r, posts)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	postID, err := postIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdatePostRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	affected, err := h.services.PostService.Update(r.Context(), caller.User.ID, postID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAffected(w, r, affected)
}

func (h *Handler) updatePostVisibility(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	postID, err := postIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateVisibilityRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	affected, err := h.services.PostService.UpdateVisibility(r.Context(), caller.User.ID, postID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAffected(w, r, affected)
}

func (h *Handler) deleteOwnPost(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	postID, err := postIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	affected, err := h.services.PostService.DeleteOwn(r.Context(), caller.User.ID, postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAffected(w, r, affected)
}

// deleteAnyPost is reachable by admins only.
func (h *Handler) deleteAnyPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	affected, err := h.services.PostService.DeleteAny(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAffected(w, r, affected)
}

func writePosts(w http.ResponseWriter, r *http.Request, posts []models.Post) {
	if posts == nil {
		posts = []models.Post{}
	}
	writeJSON(w, r, posts, http.StatusOK)
}
