package handlers

import (
	"context"
	"net/http"

	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser models.PublicUser
	registerErr  error
	loginRes     service.LoginResult
	loginErr     error
	meUser       models.PublicUser
	meErr        error
	parseID      int64
	parseErr     error

	lastRegUsername   string
	lastRegPassword   string
	lastLoginUsername string
	lastLoginPassword string
	lastAuthHeader    string
}

func (m *mockAuth) Register(_ context.Context, username, password string) (models.PublicUser, error) {
	m.lastRegUsername = username
	m.lastRegPassword = password
	return m.registerUser, m.registerErr
}
func (m *mockAuth) Login(_ context.Context, username, password string) (service.LoginResult, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginRes, m.loginErr
}
func (m *mockAuth) CurrentUser(_ context.Context, authorization string) (models.PublicUser, error) {
	m.lastAuthHeader = authorization
	return m.meUser, m.meErr
}
func (m *mockAuth) CurrentUserID(_ context.Context, authorization string) (int64, error) {
	m.lastAuthHeader = authorization
	return m.parseID, m.parseErr
}

type mockPosts struct {
	page      service.PostPage
	latest    *models.Post
	post      models.Post
	createID  int64
	err       error
	lastQuery service.PostQuery
	lastID    int64
	lastPatch models.PostPatch
	deleted   int
}

func (m *mockPosts) List(_ context.Context, q service.PostQuery) (service.PostPage, error) {
	m.lastQuery = q
	return m.page, m.err
}
func (m *mockPosts) Latest(context.Context) (*models.Post, error) { return m.latest, m.err }
func (m *mockPosts) Get(_ context.Context, id int64) (models.Post, error) {
	m.lastID = id
	return m.post, m.err
}
func (m *mockPosts) Create(_ context.Context, in models.PostPatch) (int64, error) {
	m.lastPatch = in
	return m.createID, m.err
}
func (m *mockPosts) Update(_ context.Context, id int64, in models.PostPatch) error {
	m.lastID = id
	m.lastPatch = in
	return m.err
}
func (m *mockPosts) Delete(_ context.Context, id int64) error {
	m.lastID = id
	m.deleted++
	return m.err
}

type mockProjects struct {
	list       []models.Project
	project    models.Project
	createID   int64
	err        error
	lastStatus string
	lastID     int64
	lastPatch  models.ProjectPatch
}

func (m *mockProjects) List(_ context.Context, status string) ([]models.Project, error) {
	m.lastStatus = status
	return m.list, m.err
}
func (m *mockProjects) Get(_ context.Context, id int64) (models.Project, error) {
	m.lastID = id
	return m.project, m.err
}
func (m *mockProjects) Create(_ context.Context, in models.ProjectPatch) (int64, error) {
	m.lastPatch = in
	return m.createID, m.err
}
func (m *mockProjects) Update(_ context.Context, id int64, in models.ProjectPatch) error {
	m.lastID = id
	m.lastPatch = in
	return m.err
}
func (m *mockProjects) Delete(_ context.Context, id int64) error {
	m.lastID = id
	return m.err
}

type mockSettings struct {
	all       map[string]string
	setting   models.Setting
	err       error
	lastKey   string
	lastValue *string
}

func (m *mockSettings) All(context.Context) (map[string]string, error) { return m.all, m.err }
func (m *mockSettings) Get(_ context.Context, key string) (models.Setting, error) {
	m.lastKey = key
	return m.setting, m.err
}
func (m *mockSettings) Put(_ context.Context, key string, value *string) error {
	m.lastKey = key
	m.lastValue = value
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts...)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
