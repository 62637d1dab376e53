// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the blog server. Implementations
// are responsible for serialisation, the Authorization header and mapping
// error responses to the values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates a blogger account.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login exchanges credentials for a token. On success the token is also
	// stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// ListUsers returns the users visible to the caller.
	ListUsers(ctx context.Context) ([]models.UserListItem, error)

	// CreateUser creates an account of any type. Admins only.
	CreateUser(ctx context.Context, req models.CreateUserRequest) error

	CreatePost(ctx context.Context, req models.CreatePostRequest) error
	ListOwnPosts(ctx context.Context) ([]models.Post, error)
	ListPublicPosts(ctx context.Context) ([]models.Post, error)

	// UpdatePost, UpdateVisibility, DeletePost and DeleteAnyPost return the
	// number of affected posts. Zero means nothing matched.
	UpdatePost(ctx context.Context, postID string, req models.UpdatePostRequest) (int64, error)
	UpdateVisibility(ctx context.Context, postID string, isHidden bool) (int64, error)
	DeletePost(ctx context.Context, postID string) (int64, error)
	DeleteAnyPost(ctx context.Context, postID string) (int64, error)

	// Health returns nil while the server and its storage are up.
	Health(ctx context.Context) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
