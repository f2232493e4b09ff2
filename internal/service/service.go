package service

import (
	"context"

	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/repository"
	"pixel_portfolio/internal/token"
)

// Authorization covers account creation, login and identifying the caller
// from an Authorization header.
type Authorization interface {
	Register(ctx context.Context, username, password string) (models.PublicUser, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
	CurrentUser(ctx context.Context, authorization string) (models.PublicUser, error)
	CurrentUserID(ctx context.Context, authorization string) (int64, error)
}

// Posts is the blog CRUD surface.
type Posts interface {
	List(ctx context.Context, q PostQuery) (PostPage, error)
	Latest(ctx context.Context) (*models.Post, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Create(ctx context.Context, in models.PostPatch) (int64, error)
	Update(ctx context.Context, id int64, in models.PostPatch) error
	Delete(ctx context.Context, id int64) error
}

// Projects is the portfolio CRUD surface.
type Projects interface {
	List(ctx context.Context, status string) ([]models.Project, error)
	Get(ctx context.Context, id int64) (models.Project, error)
	Create(ctx context.Context, in models.ProjectPatch) (int64, error)
	Update(ctx context.Context, id int64, in models.ProjectPatch) error
	Delete(ctx context.Context, id int64) error
}

// Settings is the site key/value surface.
type Settings interface {
	All(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (models.Setting, error)
	Put(ctx context.Context, key string, value *string) error
}

// Service aggregates all sub-services for the HTTP layer.
type Service struct {
	Authorization
	Posts    Posts
	Projects Projects
	Settings Settings
}

// NewService wires the repository layer and the token codec into concrete services.
func NewService(repos *repository.Repository, tokens *token.Codec, opts ...AuthOption) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, tokens, opts...),
		Posts:         NewPostService(repos.Posts),
		Projects:      NewProjectService(repos.Projects),
		Settings:      NewSettingsService(repos.Settings),
	}
}

var (
	_ Authorization = (*AuthService)(nil)
	_ Posts         = (*PostService)(nil)
	_ Projects      = (*ProjectService)(nil)
	_ Settings      = (*SettingsService)(nil)
)
