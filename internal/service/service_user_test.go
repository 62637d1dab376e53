// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type userServiceDeps struct {
	users       *mock.MockUserRepository
	credentials *mock.MockCredentialService
}

func newTestUserService(t *testing.T) (*userService, userServiceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := userServiceDeps{
		users:       mock.NewMockUserRepository(ctrl),
		credentials: mock.NewMockCredentialService(ctrl),
	}

	s := NewUserService(deps.users, deps.credentials, logger.Nop()).(*userService)
	s.now = func() time.Time { return testNow }
	return s, deps
}

// ─────────────────────────────────────────────
// Register / CreateUser
// ─────────────────────────────────────────────

func TestUserService_Register_Success(t *testing.T) {
	s, deps := newTestUserService(t)
	ctx := context.Background()

	gomock.InOrder(
		deps.users.EXPECT().FindUsersByNameOrEmail(ctx, "roman", "roman@example.com").Return([]models.User{}, nil),
		deps.credentials.EXPECT().HashPassword("password").Return("hashed", nil),
		deps.users.EXPECT().CreateUser(ctx, models.User{
			Name:         "roman",
			Email:        "roman@example.com",
			PasswordHash: "hashed",
			Type:         models.Blogger,
			CreatedAt:    testNow,
			UpdatedAt:    testNow,
		}).Return(models.User{ID: 1}, nil),
	)

	err := s.Register(ctx, models.RegisterRequest{Name: "roman", Email: "roman@example.com", Password: "password"})
	assert.NoError(t, err)
}

func TestUserService_CreateUser_KeepsRequestedType(t *testing.T) {
	s, deps := newTestUserService(t)
	ctx := context.Background()

	deps.users.EXPECT().FindUsersByNameOrEmail(ctx, "root", "root@example.com").Return(nil, nil)
	deps.credentials.EXPECT().HashPassword("password").Return("hashed", nil)
	deps.users.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.Admin, user.Type)
			user.ID = 2
			return user, nil
		})

	err := s.CreateUser(ctx, models.CreateUserRequest{
		Type: models.Admin, Name: "root", Email: "root@example.com", Password: "password",
	})
	assert.NoError(t, err)
}

func TestUserService_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		existing []models.User
		wantErr  error
	}{
		{
			name:     "name taken",
			existing: []models.User{{Name: "roman", Email: "other@example.com"}},
			wantErr:  ErrNameAlreadyUsed,
		},
		{
			name:     "email taken",
			existing: []models.User{{Name: "other", Email: "roman@example.com"}},
			wantErr:  ErrEmailAlreadyUsed,
		},
		{
			name: "both taken by different users reports name",
			existing: []models.User{
				{Name: "other", Email: "roman@example.com"},
				{Name: "roman", Email: "else@example.com"},
			},
			wantErr: ErrNameAlreadyUsed,
		},
		{
			name:     "both taken by one user reports name",
			existing: []models.User{{Name: "roman", Email: "roman@example.com"}},
			wantErr:  ErrNameAlreadyUsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, deps := newTestUserService(t)
			ctx := context.Background()

			deps.users.EXPECT().FindUsersByNameOrEmail(ctx, "roman", "roman@example.com").Return(tt.existing, nil)

			err := s.Register(ctx, models.RegisterRequest{Name: "roman", Email: "roman@example.com", Password: "password"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_Register_LostRace(t *testing.T) {
	s, deps := newTestUserService(t)
	ctx := context.Background()

	gomock.InOrder(
		deps.users.EXPECT().FindUsersByNameOrEmail(ctx, "roman", "roman@example.com").Return(nil, nil),
		deps.credentials.EXPECT().HashPassword("password").Return("hashed", nil),
		deps.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists),
		deps.users.EXPECT().FindUsersByNameOrEmail(ctx, "roman", "roman@example.com").
			Return([]models.User{{Name: "x", Email: "roman@example.com"}}, nil),
	)

	err := s.Register(ctx, models.RegisterRequest{Name: "roman", Email: "roman@example.com", Password: "password"})
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestUserService_Register_Errors(t *testing.T) {
	t.Run("lookup fails", func(t *testing.T) {
		s, deps := newTestUserService(t)
		dbErr := errors.New("db down")
		deps.users.EXPECT().FindUsersByNameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

		err := s.Register(context.Background(), models.RegisterRequest{Name: "roman", Email: "r@e.com", Password: "password"})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("hashing fails", func(t *testing.T) {
		s, deps := newTestUserService(t)
		hashErr := errors.New("too long")
		deps.users.EXPECT().FindUsersByNameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		deps.credentials.EXPECT().HashPassword(gomock.Any()).Return("", hashErr)

		err := s.Register(context.Background(), models.RegisterRequest{Name: "roman", Email: "r@e.com", Password: "password"})
		assert.ErrorIs(t, err, hashErr)
	})

	t.Run("insert fails", func(t *testing.T) {
		s, deps := newTestUserService(t)
		deps.users.EXPECT().FindUsersByNameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		deps.credentials.EXPECT().HashPassword(gomock.Any()).Return("hashed", nil)
		deps.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingStatement)

		err := s.Register(context.Background(), models.RegisterRequest{Name: "roman", Email: "r@e.com", Password: "password"})
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestUserService_Login(t *testing.T) {
	user := models.User{ID: 3, Email: "roman@example.com", PasswordHash: "hashed", Type: models.Blogger}
	token := models.Token{SignedString: "signed"}

	tests := []struct {
		name    string
		setup   func(deps userServiceDeps)
		want    models.Token
		wantErr error
	}{
		{
			name: "success",
			setup: func(deps userServiceDeps) {
				deps.users.EXPECT().FindUserByEmail(gomock.Any(), "roman@example.com").Return(user, nil)
				deps.credentials.EXPECT().VerifyPassword("password", "hashed").Return(true)
				deps.credentials.EXPECT().IssueToken(user).Return(token, nil)
			},
			want: token,
		},
		{
			name: "unknown email",
			setup: func(deps userServiceDeps) {
				deps.users.EXPECT().FindUserByEmail(gomock.Any(), "roman@example.com").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrEmailOrPasswordIncorrect,
		},
		{
			name: "wrong password",
			setup: func(deps userServiceDeps) {
				deps.users.EXPECT().FindUserByEmail(gomock.Any(), "roman@example.com").Return(user, nil)
				deps.credentials.EXPECT().VerifyPassword("password", "hashed").Return(false)
			},
			wantErr: ErrEmailOrPasswordIncorrect,
		},
		{
			name: "storage failure",
			setup: func(deps userServiceDeps) {
				deps.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrScanningRow)
			},
			wantErr: store.ErrScanningRow,
		},
		{
			name: "token failure",
			setup: func(deps userServiceDeps) {
				deps.users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
				deps.credentials.EXPECT().VerifyPassword(gomock.Any(), gomock.Any()).Return(true)
				deps.credentials.EXPECT().IssueToken(user).Return(models.Token{}, ErrTokenCreationFailed)
			},
			wantErr: ErrTokenCreationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, deps := newTestUserService(t)
			tt.setup(deps)

			got, err := s.Login(context.Background(), models.LoginRequest{Email: "roman@example.com", Password: "password"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// ListUsers
// ─────────────────────────────────────────────

func TestUserService_ListUsers(t *testing.T) {
	stored := []models.User{
		{ID: 1, Name: "alice", Email: "alice@example.com", Type: models.Blogger},
		{ID: 2, Name: "bob", Email: "bob@example.com", Type: models.Blogger},
	}

	t.Run("admin sees ids of everyone", func(t *testing.T) {
		s, deps := newTestUserService(t)
		deps.users.EXPECT().ListUsers(gomock.Any(), models.UserFilter{}).Return(stored, nil)

		items, err := s.ListUsers(context.Background(), models.User{ID: 9, Type: models.Admin})
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, items[0].ID)
		assert.Equal(t, int64(1), *items[0].ID)
		assert.Equal(t, "bob@example.com", items[1].Email)
	})

	t.Run("blogger sees non-admins without ids", func(t *testing.T) {
		s, deps := newTestUserService(t)
		admin := models.Admin
		deps.users.EXPECT().ListUsers(gomock.Any(), models.UserFilter{ExcludeType: &admin}).Return(stored, nil)

		items, err := s.ListUsers(context.Background(), models.User{ID: 1, Type: models.Blogger})
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, item := range items {
			assert.Nil(t, item.ID)
		}
		assert.Equal(t, "alice", items[0].Name)
	})

	t.Run("empty listing is not nil", func(t *testing.T) {
		s, deps := newTestUserService(t)
		deps.users.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return([]models.User{}, nil)

		items, err := s.ListUsers(context.Background(), models.User{Type: models.Blogger})
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("storage failure", func(t *testing.T) {
		s, deps := newTestUserService(t)
		deps.users.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

		_, err := s.ListUsers(context.Background(), models.User{Type: models.Blogger})
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestUserService_Authenticate(t *testing.T) {
	// the role in the token is stale, storage is authoritative
	claims := models.TokenClaims{UserID: 4, Type: models.Blogger}
	stored := models.User{ID: 4, Name: "roman", Type: models.Admin}

	tests := []struct {
		name    string
		setup   func(deps userServiceDeps)
		want    models.RequestIdentity
		wantErr error
	}{
		{
			name: "success",
			setup: func(deps userServiceDeps) {
				deps.credentials.EXPECT().TryDecode("tok").Return(claims, nil)
				deps.users.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(stored, nil)
			},
			want: models.RequestIdentity{Token: "tok", User: stored},
		},
		{
			name: "invalid token",
			setup: func(deps userServiceDeps) {
				deps.credentials.EXPECT().TryDecode("tok").Return(models.TokenClaims{}, ErrTokenInvalid)
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name: "owner deleted",
			setup: func(deps userServiceDeps) {
				deps.credentials.EXPECT().TryDecode("tok").Return(claims, nil)
				deps.users.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrTokenInvalid,
		},
		{
			name: "storage failure",
			setup: func(deps userServiceDeps) {
				deps.credentials.EXPECT().TryDecode("tok").Return(claims, nil)
				deps.users.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{}, store.ErrScanningRow)
			},
			wantErr: store.ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, deps := newTestUserService(t)
			tt.setup(deps)

			got, err := s.Authenticate(context.Background(), "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.User.IsAdmin())
		})
	}
}
