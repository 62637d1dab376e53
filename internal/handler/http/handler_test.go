// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
)

const (
	testToken  = "test-token"
	testPostID = "0190c3a0-0000-7000-8000-000000000001"
)

var (
	testBlogger = models.User{ID: 7, Name: "roman", Email: "roman@example.com", Type: models.Blogger}
	testAdmin   = models.User{ID: 1, Name: "root", Email: "root@example.com", Type: models.Admin}
)

type testServices struct {
	users   *mock.MockUserService
	posts   *mock.MockPostService
	health  *mock.MockHealthService
	appInfo *mock.MockAppInfoService
}

func newTestServices(t *testing.T) (*service.Services, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testServices{
		users:   mock.NewMockUserService(ctrl),
		posts:   mock.NewMockPostService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	return &service.Services{
		UserService:    m.users,
		PostService:    m.posts,
		HealthService:  m.health,
		AppInfoService: m.appInfo,
	}, m
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	svcs, m := newTestServices(t)
	return NewHandler(svcs, config.Server{}, logger.Nop()), m
}

// authenticateAs makes testToken resolve to user.
func authenticateAs(m testServices, user models.User) {
	m.users.EXPECT().Authenticate(gomock.Any(), testToken).
		Return(models.RequestIdentity{Token: testToken, User: user}, nil).
		AnyTimes()
}

// serve runs a request through the full router. An empty token sends no
// Authorization header.
func serve(h *Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// headerCountingRecorder counts the WriteHeader calls that reach the
// connection level writer.
type headerCountingRecorder struct {
	*httptest.ResponseRecorder
	writeHeaderCalls int
}

func (r *headerCountingRecorder) WriteHeader(code int) {
	r.writeHeaderCalls++
	r.ResponseRecorder.WriteHeader(code)
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	assert.Equal(t, rec.Code, resp.Status)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return resp
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, config.Server{RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
