// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

const selectPostsSQL = `SELECT id, title, content, author_id, is_hidden, created_at, updated_at FROM posts`

var postRowColumns = []string{"id", "title", "content", "author_id", "is_hidden", "created_at", "updated_at"}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewPostRepository(newDBFromSQL(db), logger.Nop()).(*postRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func ptr[T any](v T) *T {
	return &v
}

func toDriverValues(args []any) []driver.Value {
	values := make([]driver.Value, 0, len(args))
	for _, a := range args {
		values = append(values, a)
	}
	return values
}

func TestCreatePost(t *testing.T) {
	post := models.Post{
		ID:        "0190c3a0-0000-7000-8000-000000000001",
		Title:     "title",
		Content:   "content",
		AuthorID:  4,
		IsHidden:  true,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
	insertSQL := `INSERT INTO posts (id,title,content,author_id,is_hidden,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7)`

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "success"},
		{name: "unknown author", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrAuthorNotFound},
		{name: "malformed value", dbErr: pgError(pgerrcode.InvalidTextRepresentation), wantErr: ErrInvalidValue},
		{name: "driver error", dbErr: errors.New("connection reset"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t)

			expectation := mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
				WithArgs(post.ID, post.Title, post.Content, post.AuthorID, post.IsHidden, post.CreatedAt, post.UpdatedAt)
			if tt.dbErr != nil {
				expectation.WillReturnError(tt.dbErr)
			} else {
				expectation.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.CreatePost(context.Background(), post)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindPostsByAuthor(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPostsSQL+" WHERE author_id = $1 ORDER BY created_at DESC, id")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(postRowColumns).
			AddRow("p2", "second", "c2", int64(4), true, fixedNow, fixedNow).
			AddRow("p1", "first", "c1", int64(4), false, fixedNow, fixedNow))

	posts, err := repo.FindPostsByAuthor(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, models.Post{
		ID: "p2", Title: "second", Content: "c2", AuthorID: 4, IsHidden: true,
		CreatedAt: fixedNow, UpdatedAt: fixedNow,
	}, posts[0])
	assert.False(t, posts[1].IsHidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPublicPosts(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPostsSQL+" WHERE is_hidden = $1 ORDER BY created_at DESC, id")).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows(postRowColumns))

	posts, err := repo.FindPublicPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPublicPosts_Errors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectQuery("SELECT id").WillReturnError(errors.New("db failure"))

		_, err := repo.FindPublicPosts(context.Background())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectQuery("SELECT id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))

		_, err := repo.FindPublicPosts(context.Background())
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestUpdatePost(t *testing.T) {
	tests := []struct {
		name     string
		update   models.PostUpdate
		query    string
		args     []any
		affected int64
	}{
		{
			name:     "title and content of own post",
			update:   models.PostUpdate{ID: "p1", AuthorID: ptr(int64(4)), Title: ptr("t"), Content: ptr("c")},
			query:    `UPDATE posts SET title = $1, content = $2, updated_at = $3 WHERE id = $4 AND author_id = $5`,
			args:     []any{"t", "c", fixedNow, "p1", int64(4)},
			affected: 1,
		},
		{
			name:     "visibility of own post",
			update:   models.PostUpdate{ID: "p1", AuthorID: ptr(int64(4)), IsHidden: ptr(true)},
			query:    `UPDATE posts SET is_hidden = $1, updated_at = $2 WHERE id = $3 AND author_id = $4`,
			args:     []any{true, fixedNow, "p1", int64(4)},
			affected: 1,
		},
		{
			name:     "post of another author matches nothing",
			update:   models.PostUpdate{ID: "p1", AuthorID: ptr(int64(5)), Title: ptr("t")},
			query:    `UPDATE posts SET title = $1, updated_at = $2 WHERE id = $3 AND author_id = $4`,
			args:     []any{"t", fixedNow, "p1", int64(5)},
			affected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t)

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(toDriverValues(tt.args)...).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			affected, err := repo.UpdatePost(context.Background(), tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdatePost_Errors(t *testing.T) {
	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectExec("UPDATE posts").WillReturnError(errors.New("db failure"))

		_, err := repo.UpdatePost(context.Background(), models.PostUpdate{ID: "p1", Title: ptr("t")})
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})

	t.Run("rows affected error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectExec("UPDATE posts").
			WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))

		_, err := repo.UpdatePost(context.Background(), models.PostUpdate{ID: "p1", Title: ptr("t")})
		assert.ErrorIs(t, err, ErrAffectedRows)
	})

	t.Run("invalid id", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectExec("UPDATE posts").WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

		_, err := repo.UpdatePost(context.Background(), models.PostUpdate{ID: "nope", Title: ptr("t")})
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestDeletePost(t *testing.T) {
	tests := []struct {
		name     string
		del      models.PostDelete
		query    string
		args     []any
		affected int64
	}{
		{
			name:     "own post",
			del:      models.PostDelete{ID: "p1", AuthorID: ptr(int64(4))},
			query:    `DELETE FROM posts WHERE id = $1 AND author_id = $2`,
			args:     []any{"p1", int64(4)},
			affected: 1,
		},
		{
			name:     "any post",
			del:      models.PostDelete{ID: "p1"},
			query:    `DELETE FROM posts WHERE id = $1`,
			args:     []any{"p1"},
			affected: 1,
		},
		{
			name:     "missing post",
			del:      models.PostDelete{ID: "p9"},
			query:    `DELETE FROM posts WHERE id = $1`,
			args:     []any{"p9"},
			affected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t)

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(toDriverValues(tt.args)...).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			affected, err := repo.DeletePost(context.Background(), tt.del)
			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
