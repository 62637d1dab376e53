// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-blog/internal/config"
	httphandler "github.com/MKhiriev/go-blog/internal/handler/http"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

type blogEnv struct {
	url      string
	storages *store.Storages
}

// startBlog runs the whole server stack over an in-memory sqlite database.
func startBlog(t *testing.T) blogEnv {
	t.Helper()
	ctx := context.Background()

	cfg := &config.StructuredConfig{
		App: config.App{
			Version:          "0.1.0",
			TokenSignKey:     "e2e-sign-key",
			TokenIssuer:      "go-blog",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
		},
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		}},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("v0.1.0-e2e", "", ""), logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(httphandler.NewHandler(services, cfg.Server, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return blogEnv{url: srv.URL, storages: storages}
}

// seedAdmin stores an admin directly, the way an operator would.
func (e blogEnv) seedAdmin(t *testing.T, name, email, password string) {
	t.Helper()

	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = e.storages.UserRepository.CreateUser(context.Background(), models.User{
		Name: name, Email: email, PasswordHash: hash, Type: models.Admin,
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
}

func (e blogEnv) client(t *testing.T) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Client{Address: e.url, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func reasonOf(t *testing.T, err error) string {
	t.Helper()
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr.Reason
}

func TestE2E_RegisterLoginAndPost(t *testing.T) {
	ctx := context.Background()
	alice := startBlog(t).client(t)

	require.NoError(t, alice.Register(ctx, models.RegisterRequest{
		Name: "alice123", Email: "a@x.com", Password: "longpass1",
	}))

	token, err := alice.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "longpass1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	posts, err := alice.ListOwnPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	require.NoError(t, alice.CreatePost(ctx, models.CreatePostRequest{Title: "t", Content: "c", IsHidden: false}))

	posts, err = alice.ListOwnPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "t", posts[0].Title)
	assert.True(t, utils.IsUUID(posts[0].ID))
}

func TestE2E_Registration(t *testing.T) {
	ctx := context.Background()
	c := startBlog(t).client(t)

	require.NoError(t, c.Register(ctx, models.RegisterRequest{Name: "alice123", Email: "a@x.com", Password: "longpass1"}))

	tests := []struct {
		name   string
		req    models.RegisterRequest
		reason string
	}{
		{name: "both taken reports name", req: models.RegisterRequest{Name: "alice123", Email: "a@x.com", Password: "longpass1"}, reason: "NAME_ALREADY_USED"},
		{name: "email taken", req: models.RegisterRequest{Name: "bob12", Email: "a@x.com", Password: "longpass1"}, reason: "EMAIL_ALREADY_USED"},
		{name: "short name", req: models.RegisterRequest{Name: "al", Email: "b@x.com", Password: "longpass1"}, reason: "INVALID_NAME"},
		{name: "bad email", req: models.RegisterRequest{Name: "bob12", Email: "nope", Password: "longpass1"}, reason: "INVALID_EMAIL"},
		{name: "short password", req: models.RegisterRequest{Name: "bob12", Email: "b@x.com", Password: "short"}, reason: "INVALID_PASSWORD"},
		{name: "password over 72 bytes", req: models.RegisterRequest{Name: "bob12", Email: "b@x.com", Password: strings.Repeat("é", 40)}, reason: "INVALID_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Register(ctx, tt.req)
			assert.ErrorIs(t, err, ErrBadRequest)
			assert.Equal(t, tt.reason, reasonOf(t, err))
		})
	}

	// 36 two-byte runes are exactly 72 bytes
	multibyte := strings.Repeat("é", 36)
	require.NoError(t, c.Register(ctx, models.RegisterRequest{Name: "carol", Email: "c@x.com", Password: multibyte}))
	_, err := c.Login(ctx, models.LoginRequest{Email: "c@x.com", Password: multibyte})
	assert.NoError(t, err)
}

func TestE2E_LoginDoesNotTellWhichPartIsWrong(t *testing.T) {
	ctx := context.Background()
	c := startBlog(t).client(t)
	require.NoError(t, c.Register(ctx, models.RegisterRequest{Name: "alice123", Email: "a@x.com", Password: "longpass1"}))

	_, unknownEmail := c.Login(ctx, models.LoginRequest{Email: "ghost@x.com", Password: "longpass1"})
	_, wrongPassword := c.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "longpass2"})

	assert.ErrorIs(t, unknownEmail, ErrUnauthorized)
	assert.Equal(t, unknownEmail.Error(), wrongPassword.Error())
}

func TestE2E_AuthFailures(t *testing.T) {
	ctx := context.Background()
	c := startBlog(t).client(t)

	_, err := c.ListOwnPosts(ctx)
	assert.Equal(t, "AUTH_MISSING", reasonOf(t, err))

	c.SetToken("not-a-jwt")
	_, err = c.ListOwnPosts(ctx)
	assert.Equal(t, "AUTH_TOKEN_INVALID", reasonOf(t, err))
}

func TestE2E_PostOwnershipAndAdmin(t *testing.T) {
	ctx := context.Background()
	env := startBlog(t)
	env.seedAdmin(t, "root", "root@x.com", "rootpass1")

	alice, bob, admin := env.client(t), env.client(t), env.client(t)
	require.NoError(t, alice.Register(ctx, models.RegisterRequest{Name: "alice", Email: "a@x.com", Password: "longpass1"}))
	require.NoError(t, bob.Register(ctx, models.RegisterRequest{Name: "bob12", Email: "b@x.com", Password: "longpass1"}))
	_, err := alice.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "longpass1"})
	require.NoError(t, err)
	_, err = bob.Login(ctx, models.LoginRequest{Email: "b@x.com", Password: "longpass1"})
	require.NoError(t, err)
	_, err = admin.Login(ctx, models.LoginRequest{Email: "root@x.com", Password: "rootpass1"})
	require.NoError(t, err)

	require.NoError(t, alice.CreatePost(ctx, models.CreatePostRequest{Title: "hidden", Content: "c", IsHidden: true}))
	own, err := alice.ListOwnPosts(ctx)
	require.NoError(t, err)
	require.Len(t, own, 1)
	postID := own[0].ID

	// hidden posts stay out of the public feed
	public, err := bob.ListPublicPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)

	// bob cannot touch alice's post, and that is not an error
	title := "hacked"
	n, err := bob.UpdatePost(ctx, postID, models.UpdatePostRequest{Title: &title})
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = bob.DeletePost(ctx, postID)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = bob.UpdatePost(ctx, postID, models.UpdatePostRequest{})
	assert.Equal(t, "NO_FIELDS_TO_UPDATE", reasonOf(t, err))

	n, err = alice.UpdateVisibility(ctx, postID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	public, err = bob.ListPublicPosts(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "hidden", public[0].Title)

	// user listings
	bloggerView, err := bob.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, bloggerView, 2)
	for _, u := range bloggerView {
		assert.Nil(t, u.ID)
		assert.NotEqual(t, "root", u.Name)
	}

	adminView, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, adminView, 3)
	for _, u := range adminView {
		assert.NotNil(t, u.ID)
	}

	// admin-only operations
	_, err = bob.DeleteAnyPost(ctx, postID)
	assert.Equal(t, "NOT ADMIN", reasonOf(t, err))
	err = bob.CreateUser(ctx, models.CreateUserRequest{Type: models.Admin, Name: "mallory", Email: "m@x.com", Password: "longpass1"})
	assert.Equal(t, "NOT ADMIN", reasonOf(t, err))

	require.NoError(t, admin.CreateUser(ctx, models.CreateUserRequest{
		Type: models.Admin, Name: "second", Email: "s@x.com", Password: "longpass1",
	}))

	n, err = admin.DeleteAnyPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	own, err = alice.ListOwnPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, own)

	_, err = admin.DeleteAnyPost(ctx, "not-a-uuid")
	assert.Equal(t, "INVALID_POST_ID", reasonOf(t, err))
}

func TestE2E_HealthAndVersion(t *testing.T) {
	ctx := context.Background()
	c := startBlog(t).client(t)

	assert.NoError(t, c.Health(ctx))

	v, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v0.1.0-e2e", v)
}
