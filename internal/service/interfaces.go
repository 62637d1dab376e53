// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper,PostServiceWrapper

// CredentialService hashes passwords and issues and decodes credential
// tokens. All methods are safe for concurrent use.
type CredentialService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches hash. It never fails:
	// a malformed hash simply does not match.
	VerifyPassword(password, hash string) bool

	IssueToken(user models.User) (models.Token, error)

	// IsValid reports whether TryDecode would succeed for token.
	IsValid(token string) bool

	// TryDecode validates token and returns its claims, or ErrTokenInvalid.
	TryDecode(token string) (models.TokenClaims, error)
}

type UserService interface {
	// Register creates a blogger account.
	Register(ctx context.Context, req models.RegisterRequest) error

	// CreateUser creates an account of the requested type. Admin only.
	CreateUser(ctx context.Context, req models.CreateUserRequest) error

	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// ListUsers returns the accounts visible to caller.
	ListUsers(ctx context.Context, caller models.User) ([]models.UserListItem, error)

	// Authenticate resolves a bearer token into the identity of its owner.
	Authenticate(ctx context.Context, token string) (models.RequestIdentity, error)
}

// PostService manages posts on behalf of an author. Mutations scoped to an
// author return the number of affected posts; zero means no post of that
// author has the given id.
type PostService interface {
	Create(ctx context.Context, authorID int64, req models.CreatePostRequest) (models.Post, error)

	ListOwn(ctx context.Context, authorID int64) ([]models.Post, error)
	ListPublic(ctx context.Context) ([]models.Post, error)

	Update(ctx context.Context, authorID int64, postID string, req models.UpdatePostRequest) (int64, error)
	UpdateVisibility(ctx context.Context, authorID int64, postID string, req models.UpdateVisibilityRequest) (int64, error)

	DeleteOwn(ctx context.Context, authorID int64, postID string) (int64, error)
	DeleteAny(ctx context.Context, postID string) (int64, error)
}

type HealthService interface {
	// Check returns ErrStorageUnavailable if the storage cannot be reached.
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// PostServiceWrapper defines middleware composition for PostService.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

// Pinger is anything that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IDGenerator produces identifiers for new posts.
type IDGenerator interface {
	Generate() string
}
