// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// UserValidationService rejects malformed request bodies before they reach
// the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{
		validator: validator,
	}
}

func (v *UserValidationService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during register request validation: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *UserValidationService) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during create user request validation: %w", err)
	}

	return v.inner.CreateUser(ctx, req)
}

func (v *UserValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("error during login request validation: %w", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *UserValidationService) ListUsers(ctx context.Context, caller models.User) ([]models.UserListItem, error) {
	return v.inner.ListUsers(ctx, caller)
}

func (v *UserValidationService) Authenticate(ctx context.Context, token string) (models.RequestIdentity, error) {
	return v.inner.Authenticate(ctx, token)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
