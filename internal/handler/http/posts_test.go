// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreatePost(t *testing.T) {
	t.Run("success answers 204", func(t *testing.T) {
		h, m := newTestHandler(t)
		authenticateAs(m, testBlogger)
		m.posts.EXPECT().Create(gomock.Any(), testBlogger.ID, models.CreatePostRequest{
			Title: "hello", Content: "world", IsHidden: true,
		}).Return(models.Post{ID: testPostID}, nil)

		rec := serve(h, http.MethodPost, "/api/v1/posts/create",
			`{"title":"hello","content":"world","isHidden":true}`, testToken)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("author vanished", func(t *testing.T) {
		h, m := newTestHandler(t)
		authenticateAs(m, testBlogger)
		m.posts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.Post{}, service.ErrTokenInvalid)

		rec := serve(h, http.MethodPost, "/api/v1/posts/create", `{"title":"t","content":"c"}`, testToken)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTH_TOKEN_INVALID", decodeErrorBody(t, rec).Error)
	})

	t.Run("body is not json", func(t *testing.T) {
		h, m := newTestHandler(t)
		authenticateAs(m, testBlogger)

		rec := serve(h, http.MethodPost, "/api/v1/posts/create", `title=t`, testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_BODY", decodeErrorBody(t, rec).Error)
	})
}

func TestListPosts(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	post := models.Post{
		ID: testPostID, Title: "hello", Content: "world", AuthorID: 7,
		CreatedAt: created, UpdatedAt: created,
	}
	wantOne := `[{"id":"` + testPostID + `","title":"hello","content":"world","authorId":7,"isHidden":false,` +
		`"createdAt":"2026-03-01T12:00:00Z","updatedAt":"2026-03-01T12:00:00Z"}]`

	tests := []struct {
		name     string
		path     string
		setup    func(m testServices)
		wantBody string
	}{
		{
			name: "own posts",
			path: "/api/v1/posts",
			setup: func(m testServices) {
				m.posts.EXPECT().ListOwn(gomock.Any(), testBlogger.ID).Return([]models.Post{post}, nil)
			},
			wantBody: wantOne,
		},
		{
			name: "no own posts",
			path: "/api/v1/posts",
			setup: func(m testServices) {
				m.posts.EXPECT().ListOwn(gomock.Any(), testBlogger.ID).Return(nil, nil)
			},
			wantBody: `[]`,
		},
		{
			name: "public posts",
			path: "/api/v1/posts/getall",
			setup: func(m testServices) {
				m.posts.EXPECT().ListPublic(gomock.Any()).Return([]models.Post{post}, nil)
			},
			wantBody: wantOne,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			authenticateAs(m, testBlogger)
			tt.setup(m)

			rec := serve(h, http.MethodGet, tt.path, "", testToken)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestUpdatePost(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		setup      func(m testServices)
		wantStatus int
		wantBody   string
		wantReason string
	}{
		{
			name: "title only",
			path: "/api/v1/posts/" + testPostID,
			body: `{"title":"new"}`,
			setup: func(m testServices) {
				m.posts.EXPECT().Update(gomock.Any(), testBlogger.ID, testPostID,
					models.UpdatePostRequest{Title: ptr("new")}).Return(int64(1), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[1]`,
		},
		{
			name: "post of someone else",
			path: "/api/v1/posts/" + testPostID,
			body: `{"content":"new"}`,
			setup: func(m testServices) {
				m.posts.EXPECT().Update(gomock.Any(), testBlogger.ID, testPostID, gomock.Any()).Return(int64(0), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[0]`,
		},
		{
			name: "nothing to update",
			path: "/api/v1/posts/" + testPostID,
			body: `{}`,
			setup: func(m testServices) {
				m.posts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), validators.ErrNoFieldsToUpdate)
			},
			wantStatus: http.StatusBadRequest,
			wantReason: "NO_FIELDS_TO_UPDATE",
		},
		{
			name:       "id is not a uuid",
			path:       "/api/v1/posts/42",
			body:       `{"title":"new"}`,
			wantStatus: http.StatusBadRequest,
			wantReason: "INVALID_POST_ID",
		},
		{
			name: "visibility",
			path: "/api/v1/posts/visibility/" + testPostID,
			body: `{"isHidden":false}`,
			setup: func(m testServices) {
				m.posts.EXPECT().UpdateVisibility(gomock.Any(), testBlogger.ID, testPostID,
					models.UpdateVisibilityRequest{IsHidden: ptr(false)}).Return(int64(1), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[1]`,
		},
		{
			name: "visibility flag missing",
			path: "/api/v1/posts/visibility/" + testPostID,
			body: `{}`,
			setup: func(m testServices) {
				m.posts.EXPECT().UpdateVisibility(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), validators.ErrInvalidVisibility)
			},
			wantStatus: http.StatusBadRequest,
			wantReason: "INVALID_VISIBILITY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			authenticateAs(m, testBlogger)
			if tt.setup != nil {
				tt.setup(m)
			}

			rec := serve(h, http.MethodPut, tt.path, tt.body, testToken)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, decodeErrorBody(t, rec).Error)
				return
			}
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDeletePost(t *testing.T) {
	t.Run("own post", func(t *testing.T) {
		h, m := newTestHandler(t)
		authenticateAs(m, testBlogger)
		m.posts.EXPECT().DeleteOwn(gomock.Any(), testBlogger.ID, testPostID).Return(int64(1), nil)

		rec := serve(h, http.MethodDelete, "/api/v1/posts/"+testPostID, "", testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[1]`, rec.Body.String())
	})

	t.Run("admin deletes any post", func(t *testing.T) {
		h, m := newTestHandler(t)
		authenticateAs(m, testAdmin)
		m.posts.EXPECT().DeleteAny(gomock.Any(), testPostID).Return(int64(1), nil)

		rec := serve(h, http.MethodDelete, "/api/v1/posts/deleteAdmin/"+testPostID, "", testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[1]`, rec.Body.String())
	})

	t.Run("admin delete of missing post", func(t *testing.T) {
		h, m := newTestHandler(t)
		authenticateAs(m, testAdmin)
		m.posts.EXPECT().DeleteAny(gomock.Any(), testPostID).Return(int64(0), nil)

		rec := serve(h, http.MethodDelete, "/api/v1/posts/deleteAdmin/"+testPostID, "", testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[0]`, rec.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		h, m := newTestHandler(t)
		authenticateAs(m, testAdmin)

		rec := serve(h, http.MethodDelete, "/api/v1/posts/deleteAdmin/not-a-uuid", "", testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_POST_ID", decodeErrorBody(t, rec).Error)
	})
}
