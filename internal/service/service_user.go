// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	credentials    CredentialService

	now    func() time.Time
	logger *logger.Logger
}

// NewUserService constructs a UserService that persists accounts through
// userRepository and delegates hashing and tokens to credentials.
func NewUserService(userRepository store.UserRepository, credentials CredentialService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		credentials:    credentials,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *userService) Register(ctx context.Context, req models.RegisterRequest) error {
	return s.create(ctx, req.Name, req.Email, req.Password, models.Blogger)
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	return s.create(ctx, req.Name, req.Email, req.Password, req.Type)
}

// create stores a new account. A taken name is reported before a taken
// email when both conflict.
func (s *userService) create(ctx context.Context, name, email, password string, userType models.UserType) error {
	log := logger.FromContext(ctx)

	if err := s.checkConflicts(ctx, name, email); err != nil {
		return err
	}

	hash, err := s.credentials.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "userService.create").Msg("error hashing password")
		return err
	}

	now := s.now()
	created, err := s.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Type:         userType,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		// lost a race with a concurrent registration
		if conflictErr := s.checkConflicts(ctx, name, email); conflictErr != nil {
			return conflictErr
		}
		return ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "userService.create").Str("name", name).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.ID).Str("type", string(userType)).Msg("user created")
	return nil
}

func (s *userService) checkConflicts(ctx context.Context, name, email string) error {
	users, err := s.userRepository.FindUsersByNameOrEmail(ctx, name, email)
	if err != nil {
		return fmt.Errorf("error checking name and email uniqueness: %w", err)
	}

	emailUsed := false
	for _, user := range users {
		if user.Name == name {
			return ErrNameAlreadyUsed
		}
		if user.Email == email {
			emailUsed = true
		}
	}
	if emailUsed {
		return ErrEmailAlreadyUsed
	}

	return nil
}

// Login verifies the credentials and issues a token. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("func", "userService.Login").Msg("unknown email")
		return models.Token{}, ErrEmailOrPasswordIncorrect
	}
	if err != nil {
		log.Err(err).Str("func", "userService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !s.credentials.VerifyPassword(req.Password, user.PasswordHash) {
		log.Debug().Str("func", "userService.Login").Int64("user_id", user.ID).Msg("wrong password")
		return models.Token{}, ErrEmailOrPasswordIncorrect
	}

	token, err := s.credentials.IssueToken(user)
	if err != nil {
		log.Err(err).Str("func", "userService.Login").Int64("user_id", user.ID).Msg("error issuing token")
		return models.Token{}, err
	}

	return token, nil
}

// ListUsers returns every account with its id to admins. Other callers get
// names and emails of non-admin accounts only.
func (s *userService) ListUsers(ctx context.Context, caller models.User) ([]models.UserListItem, error) {
	filter := models.UserFilter{}
	if !caller.IsAdmin() {
		admin := models.Admin
		filter.ExcludeType = &admin
	}

	users, err := s.userRepository.ListUsers(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	items := make([]models.UserListItem, 0, len(users))
	for _, user := range users {
		item := models.UserListItem{Name: user.Name, Email: user.Email}
		if caller.IsAdmin() {
			id := user.ID
			item.ID = &id
		}
		items = append(items, item)
	}

	return items, nil
}

// Authenticate decodes token and loads its owner. The role of the returned
// user comes from storage, not from the token claims.
func (s *userService) Authenticate(ctx context.Context, token string) (models.RequestIdentity, error) {
	log := logger.FromContext(ctx)

	claims, err := s.credentials.TryDecode(token)
	if err != nil {
		log.Debug().Err(err).Str("func", "userService.Authenticate").Msg("token rejected")
		return models.RequestIdentity{}, ErrTokenInvalid
	}

	user, err := s.userRepository.FindUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("func", "userService.Authenticate").Int64("user_id", claims.UserID).Msg("token owner no longer exists")
		return models.RequestIdentity{}, ErrTokenInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "userService.Authenticate").Msg("user search by id failed")
		return models.RequestIdentity{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return models.RequestIdentity{Token: token, User: user}, nil
}
