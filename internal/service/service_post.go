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
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository
	ids            IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, ids IDGenerator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		ids:            ids,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// Create stores a new post of authorID under a freshly generated id.
func (s *postService) Create(ctx context.Context, authorID int64, req models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	post := models.Post{
		ID:        s.ids.Generate(),
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		IsHidden:  req.IsHidden,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.postRepository.CreatePost(ctx, post)
	if errors.Is(err, store.ErrAuthorNotFound) {
		// the account was removed after the token was checked
		return models.Post{}, ErrTokenInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "postService.Create").Int64("author_id", authorID).Msg("error creating post")
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	log.Info().Str("post_id", post.ID).Int64("author_id", authorID).Msg("post created")
	return post, nil
}

func (s *postService) ListOwn(ctx context.Context, authorID int64) ([]models.Post, error) {
	posts, err := s.postRepository.FindPostsByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("error listing posts of author: %w", err)
	}
	return posts, nil
}

func (s *postService) ListPublic(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepository.FindPublicPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing public posts: %w", err)
	}
	return posts, nil
}

// Update changes title and/or content of a post of authorID.
func (s *postService) Update(ctx context.Context, authorID int64, postID string, req models.UpdatePostRequest) (int64, error) {
	update := models.PostUpdate{
		ID:       postID,
		AuthorID: &authorID,
		Title:    req.Title,
		Content:  req.Content,
	}
	if !update.HasChanges() {
		return 0, validators.ErrNoFieldsToUpdate
	}

	return s.update(ctx, update)
}

func (s *postService) UpdateVisibility(ctx context.Context, authorID int64, postID string, req models.UpdateVisibilityRequest) (int64, error) {
	if req.IsHidden == nil {
		return 0, validators.ErrInvalidVisibility
	}

	return s.update(ctx, models.PostUpdate{
		ID:       postID,
		AuthorID: &authorID,
		IsHidden: req.IsHidden,
	})
}

func (s *postService) update(ctx context.Context, update models.PostUpdate) (int64, error) {
	affected, err := s.postRepository.UpdatePost(ctx, update)
	if err != nil {
		return 0, fmt.Errorf("error updating post: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("post_id", update.ID).
		Int64("affected", affected).
		Msg("post updated")
	return affected, nil
}

func (s *postService) DeleteOwn(ctx context.Context, authorID int64, postID string) (int64, error) {
	return s.delete(ctx, models.PostDelete{ID: postID, AuthorID: &authorID})
}

// DeleteAny removes a post regardless of its author. Admin only.
func (s *postService) DeleteAny(ctx context.Context, postID string) (int64, error) {
	return s.delete(ctx, models.PostDelete{ID: postID})
}

func (s *postService) delete(ctx context.Context, del models.PostDelete) (int64, error) {
	affected, err := s.postRepository.DeletePost(ctx, del)
	if err != nil {
		return 0, fmt.Errorf("error deleting post: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("post_id", del.ID).
		Int64("affected", affected).
		Msg("post deleted")
	return affected, nil
}
