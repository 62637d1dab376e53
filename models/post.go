// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a blog entry written by exactly one user.
type Post struct {
	// ID is the UUID of the post, generated by the server on creation.
	ID string `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// AuthorID references the user who created the post.
	AuthorID int64 `json:"authorId"`

	// IsHidden hides the post from the public listing. It is supplied by
	// the author at creation time.
	IsHidden bool `json:"isHidden"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostUpdate describes a partial update of a single post.
// Only non-nil fields are written.
type PostUpdate struct {
	// ID is the post to update. Required.
	ID string

	// AuthorID scopes the update to posts of this author. When nil the
	// update applies regardless of the author.
	AuthorID *int64

	Title    *string
	Content  *string
	IsHidden *bool
}

// HasChanges reports whether at least one column would be written.
func (u PostUpdate) HasChanges() bool {
	return u.Title != nil || u.Content != nil || u.IsHidden != nil
}

// PostDelete describes the deletion of a single post.
type PostDelete struct {
	// ID is the post to delete. Required.
	ID string

	// AuthorID scopes the deletion to posts of this author. When nil the
	// post is deleted regardless of the author.
	AuthorID *int64
}
