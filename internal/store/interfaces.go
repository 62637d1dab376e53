// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID.
	// A name or email conflict yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns [ErrNoUserWasFound] when no user has the id.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByEmail returns [ErrNoUserWasFound] when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUsersByNameOrEmail returns every user whose name equals name or
	// whose email equals email. The result is empty when there is none.
	FindUsersByNameOrEmail(ctx context.Context, name, email string) ([]models.User, error)

	// ListUsers returns all users matching filter ordered by id.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

// PostRepository persists and looks up blog posts.
type PostRepository interface {
	// CreatePost inserts post. A missing author yields [ErrAuthorNotFound].
	CreatePost(ctx context.Context, post models.Post) error

	// FindPostsByAuthor returns all posts of the author, hidden ones included.
	FindPostsByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)

	// FindPublicPosts returns all posts that are not hidden.
	FindPublicPosts(ctx context.Context) ([]models.Post, error)

	// UpdatePost writes the non-nil fields of update and returns the number
	// of affected rows.
	UpdatePost(ctx context.Context, update models.PostUpdate) (int64, error)

	// DeletePost removes the post and returns the number of affected rows.
	DeletePost(ctx context.Context, del models.PostDelete) (int64, error)
}

// ErrorClassificator maps a driver-specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
