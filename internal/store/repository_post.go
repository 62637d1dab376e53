// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the database/sql implementation of [PostRepository].
// It executes all post CRUD operations against the "posts" table using the
// embedded [*DB] connection.
type postRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreatePost inserts post as is. ID and timestamps are assigned by the caller.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("failed to create query")
		return err
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Int64("author_id", post.AuthorID).
			Str("post_id", post.ID).
			Msg("failed to insert post")

		switch p.classify(err) {
		case ForeignKeyViolation:
			return ErrAuthorNotFound
		case InvalidInput:
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// FindPostsByAuthor returns every post of authorID, newest first.
func (p *postRepository) FindPostsByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPostsByAuthorQuery(p.builder, authorID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindPostsByAuthor").Msg("failed to create query")
		return nil, err
	}

	posts, err := p.findMany(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.FindPostsByAuthor").
			Int64("author_id", authorID).
			Msg("failed to get posts of author")
		return nil, err
	}

	return posts, nil
}

// FindPublicPosts returns every post that is not hidden, newest first.
func (p *postRepository) FindPublicPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPublicPostsQuery(p.builder)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindPublicPosts").Msg("failed to create query")
		return nil, err
	}

	posts, err := p.findMany(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindPublicPosts").Msg("failed to get public posts")
		return nil, err
	}

	return posts, nil
}

// UpdatePost applies update in a single statement and returns the number of
// affected rows. Zero means no post matched the id (and author, if set).
func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(p.builder, update, p.now())
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Msg("failed to create query")
		return 0, err
	}

	affected, err := p.exec(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.UpdatePost").
			Str("post_id", update.ID).
			Msg("failed to update post")
		return 0, err
	}

	return affected, nil
}

// DeletePost removes the post and returns the number of affected rows.
func (p *postRepository) DeletePost(ctx context.Context, del models.PostDelete) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(p.builder, del)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Msg("failed to create query")
		return 0, err
	}

	affected, err := p.exec(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.DeletePost").
			Str("post_id", del.ID).
			Msg("failed to delete post")
		return 0, err
	}

	return affected, nil
}

func (p *postRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if p.classify(err) == InvalidInput {
			return 0, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAffectedRows, err)
	}

	return affected, nil
}

func (p *postRepository) findMany(ctx context.Context, query string, args []any) ([]models.Post, error) {
	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post

		scanErr := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.AuthorID,
			&post.IsHidden,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
