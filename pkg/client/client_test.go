package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"pixel_portfolio/internal/handlers"
	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/repository"
	"pixel_portfolio/internal/repository/db"
	"pixel_portfolio/internal/service"
	"pixel_portfolio/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	codec, err := token.New([]byte("client-test-secret-0123"))
	require.NoError(t, err)

	s := service.NewService(repository.NewRepository(conn), codec, service.WithBcryptCost(bcrypt.MinCost))
	srv := httptest.NewServer(handlers.NewHandler(s, nil).InitRoutes())
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_AuthFlow(t *testing.T) {
	srv := newAPIServer(t)
	ctx := context.Background()
	c := New(srv.URL + "/api")

	assert.False(t, c.IsLoggedIn())
	assert.Nil(t, c.StoredUser())

	_, err := c.Me(ctx)
	require.ErrorIs(t, err, ErrNotLoggedIn)

	sess, err := c.RegisterAndLogin(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.True(t, c.IsLoggedIn())
	require.NotNil(t, c.StoredUser())
	assert.Equal(t, "alice", c.StoredUser().Username)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, me.ID)

	_, err = c.Register(ctx, "alice", "secret1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "username already exists", apiErr.Message)

	require.NoError(t, c.Logout())
	assert.False(t, c.IsLoggedIn())
	assert.Nil(t, c.StoredUser())
}

func TestClient_WrongPasswordLeavesStoreEmpty(t *testing.T) {
	srv := newAPIServer(t)
	ctx := context.Background()
	c := New(srv.URL)

	_, err := c.Register(ctx, "bob", "secret1")
	require.NoError(t, err)

	_, err = c.Login(ctx, "bob", "wrong-pw")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.False(t, c.IsLoggedIn())
}

func TestClient_PublicReads(t *testing.T) {
	srv := newAPIServer(t)
	ctx := context.Background()
	c := New(srv.URL + "/api/")

	h, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)

	list, err := c.Posts(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, list.Data)
	assert.Equal(t, 1, list.Pagination.Page)

	latest, err := c.LatestPost(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	projects, err := c.Projects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	settings, err := c.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pixel World", settings["site_title"])

	st, err := c.Setting(ctx, "site_title")
	require.NoError(t, err)
	assert.Equal(t, models.Setting{Key: "site_title", Value: "Pixel World"}, st)

	_, err = c.Post(ctx, 404)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	_, err = c.Project(ctx, 1)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Health(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "request failed", apiErr.Message)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	fs := NewFileStore(path)

	s, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, s.Token)

	want := Session{Token: "abc.def.ghi", User: models.PublicUser{ID: 3, Username: "carol"}}
	require.NoError(t, fs.Save(want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, fs.Clear())
	require.NoError(t, fs.Clear())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
}

func TestClient_WithFileStoreSurvivesRestart(t *testing.T) {
	srv := newAPIServer(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	first := New(srv.URL, WithStore(NewFileStore(path)))
	_, err := first.RegisterAndLogin(ctx, "dave", "secret1")
	require.NoError(t, err)

	second := New(srv.URL, WithStore(NewFileStore(path)), WithHTTPClient(srv.Client()))
	me, err := second.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dave", me.Username)
}
