package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentServices() (*service.Service, *mockAuth, *mockPosts, *mockProjects, *mockSettings) {
	auth := &mockAuth{parseID: 1}
	posts := &mockPosts{}
	projects := &mockProjects{}
	settings := &mockSettings{}
	return &service.Service{
		Authorization: auth,
		Posts:         posts,
		Projects:      projects,
		Settings:      settings,
	}, auth, posts, projects, settings
}

func TestPosts_ListPassesQuery(t *testing.T) {
	s, _, posts, _, _ := contentServices()
	posts.page = service.PostPage{
		Data:       []models.Post{{ID: 1, Title: "a", Tags: []string{}}},
		Pagination: models.Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2},
	}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/posts?page=2&limit=5&status=all", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, service.PostQuery{Page: 2, Limit: 5, Status: "all"}, posts.lastQuery)

	var out struct {
		Data       []models.Post `json:"data"`
		Pagination map[string]int `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, 2, out.Pagination["totalPages"])
}

func TestPosts_ListPagingDefaults(t *testing.T) {
	s, _, posts, _, _ := contentServices()
	r := newTestRouter(s)

	doRequest(r, http.MethodGet, "/posts", "", nil)
	assert.Equal(t, service.PostQuery{Page: 1, Limit: 10}, posts.lastQuery)

	// Garbage values are handed on as 0 and clamped by the service.
	doRequest(r, http.MethodGet, "/posts?page=x&limit=y", "", nil)
	assert.Equal(t, service.PostQuery{Page: 0, Limit: 0}, posts.lastQuery)
}

func TestPosts_GetAndBadID(t *testing.T) {
	s, _, posts, _, _ := contentServices()
	posts.post = models.Post{ID: 9, Title: "nine", Content: "body"}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/posts/9", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(9), posts.lastID)
	assert.Contains(t, w.Body.String(), `"content":"body"`)

	for _, id := range []string{"abc", "0", "-3"} {
		w = doRequest(r, http.MethodGet, "/posts/"+id, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}

	posts.err = &service.Error{Kind: service.KindNotFound, Message: "post not found"}
	w = doRequest(r, http.MethodGet, "/posts/10", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "post not found", decodeError(t, w).Error)
}

func TestPosts_WritesRequireToken(t *testing.T) {
	s, auth, posts, _, _ := contentServices()
	auth.parseErr = &service.Error{Kind: service.KindMissingToken, Message: "authentication token not provided"}
	r := newTestRouter(s)

	cases := []struct{ method, path, body string }{
		{http.MethodPost, "/posts", `{"title":"t"}`},
		{http.MethodPut, "/posts/1", `{"title":"t"}`},
		{http.MethodDelete, "/posts/1", ""},
		{http.MethodPost, "/api/projects", `{"title":"t"}`},
		{http.MethodPut, "/settings/site_title", `{"value":"x"}`},
	}
	for _, tc := range cases {
		w := doRequest(r, tc.method, tc.path, tc.body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
	assert.Zero(t, posts.deleted)
}

func TestPosts_CreateUpdateDelete(t *testing.T) {
	s, _, posts, _, _ := contentServices()
	posts.createID = 5
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/posts", `{"title":"Hi","tags":["go","pixel"]}`, authHeader("t"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(5), created.ID)
	require.NotNil(t, posts.lastPatch.Tags)
	assert.Equal(t, []string{"go", "pixel"}, *posts.lastPatch.Tags)

	w = doRequest(r, http.MethodPut, "/posts/5", `{"status":"published"}`, authHeader("t"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), posts.lastID)
	assert.Nil(t, posts.lastPatch.Title)
	require.NotNil(t, posts.lastPatch.Status)
	assert.Equal(t, "published", *posts.lastPatch.Status)

	w = doRequest(r, http.MethodDelete, "/posts/5", "", authHeader("t"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, posts.deleted)

	w = doRequest(r, http.MethodPost, "/posts", `{"title":`, authHeader("t"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjects_Handlers(t *testing.T) {
	s, _, _, projects, _ := contentServices()
	projects.list = []models.Project{{ID: 1, Title: "Pixel", TechStack: []string{"go"}}}
	projects.createID = 2
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/projects?status=archived", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "archived", projects.lastStatus)
	assert.Contains(t, w.Body.String(), `"tech_stack":["go"]`)

	w = doRequest(r, http.MethodPost, "/projects", `{"title":"New","display_order":3}`, authHeader("t"))
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, projects.lastPatch.DisplayOrder)
	assert.Equal(t, 3, *projects.lastPatch.DisplayOrder)

	w = doRequest(r, http.MethodPut, "/projects/2", `{"icon":"star"}`, authHeader("t"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), projects.lastID)

	w = doRequest(r, http.MethodDelete, "/projects/2", "", authHeader("t"))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSettings_Handlers(t *testing.T) {
	s, _, _, _, settings := contentServices()
	settings.all = map[string]string{"site_title": "Pixel World"}
	settings.setting = models.Setting{Key: "site_title", Value: "Pixel World"}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"site_title":"Pixel World"}}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/settings/site_title", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "site_title", settings.lastKey)

	w = doRequest(r, http.MethodPut, "/settings/site_title", `{"value":"New"}`, authHeader("t"))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, settings.lastValue)
	assert.Equal(t, "New", *settings.lastValue)

	settings.lastValue = nil
	settings.err = &service.Error{Kind: service.KindValidation, Message: "value is required"}
	w = doRequest(r, http.MethodPut, "/settings/site_title", `{}`, authHeader("t"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, settings.lastValue)
}
