// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// PostValidationService rejects malformed request bodies before they reach
// the wrapped PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService(validator validators.Validator) PostServiceWrapper {
	return &PostValidationService{
		validator: validator,
	}
}

func (v *PostValidationService) Create(ctx context.Context, authorID int64, req models.CreatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("error during post validation before saving: %w", err)
	}

	return v.inner.Create(ctx, authorID, req)
}

func (v *PostValidationService) ListOwn(ctx context.Context, authorID int64) ([]models.Post, error) {
	return v.inner.ListOwn(ctx, authorID)
}

func (v *PostValidationService) ListPublic(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPublic(ctx)
}

func (v *PostValidationService) Update(ctx context.Context, authorID int64, postID string, req models.UpdatePostRequest) (int64, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("error during post update validation: %w", err)
	}

	return v.inner.Update(ctx, authorID, postID, req)
}

func (v *PostValidationService) UpdateVisibility(ctx context.Context, authorID int64, postID string, req models.UpdateVisibilityRequest) (int64, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("error during post visibility validation: %w", err)
	}

	return v.inner.UpdateVisibility(ctx, authorID, postID, req)
}

func (v *PostValidationService) DeleteOwn(ctx context.Context, authorID int64, postID string) (int64, error) {
	return v.inner.DeleteOwn(ctx, authorID, postID)
}

func (v *PostValidationService) DeleteAny(ctx context.Context, postID string) (int64, error) {
	return v.inner.DeleteAny(ctx, postID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
