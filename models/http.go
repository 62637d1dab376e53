// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /users/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=8,bcryptlen"`
}

// CreateUserRequest is the body of the admin-only POST /users.
// Unlike registration the caller chooses the role.
type CreateUserRequest struct {
	Type     UserType `json:"type" validate:"required,oneof=blogger admin"`
	Name     string   `json:"name" validate:"min=3"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"min=8,bcryptlen"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreatePostRequest is the body of POST /posts/create.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	IsHidden bool   `json:"isHidden"`
}

// UpdatePostRequest is the body of PUT /posts/{id}.
// Only provided fields are updated.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
}

// UpdateVisibilityRequest is the body of PUT /posts/visibility/{id}.
type UpdateVisibilityRequest struct {
	IsHidden *bool `json:"isHidden" validate:"required"`
}
