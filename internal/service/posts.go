package service

import (
	"context"
	"errors"
	"strings"

	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50

	// StatusAll disables the status filter on list endpoints.
	StatusAll = "all"

	msgTitleRequired  = "title is required"
	msgNoFields       = "no fields to update"
	msgPostNotFound   = "post not found"
	msgInvalidStatus  = "invalid status"
	msgLoadPostsError = "failed to load posts"
)

// PostQuery selects one page of posts. Page and Limit go through ClampPaging.
type PostQuery struct {
	Page   int
	Limit  int
	Status string // "" means published, "all" disables the filter
}

// PostPage is the list response body.
type PostPage struct {
	Data       []models.Post     `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// ClampPaging forces page >= 1 and 1 <= limit <= 50.
func ClampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// DefaultPaging is used when the query string omits page/limit.
func DefaultPaging() (int, int) { return defaultPage, defaultLimit }

type PostService struct {
	repo repository.PostRepo
}

func NewPostService(repo repository.PostRepo) *PostService {
	return &PostService{repo: repo}
}

func postStatusFilter(status string) (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(status)); s {
	case "":
		return models.PostStatusPublished, nil
	case StatusAll:
		return "", nil
	case models.PostStatusDraft, models.PostStatusPublished:
		return s, nil
	default:
		return "", validationError(msgInvalidStatus)
	}
}

func validPostStatus(s string) bool {
	return s == models.PostStatusDraft || s == models.PostStatusPublished
}

func (s *PostService) List(ctx context.Context, q PostQuery) (PostPage, error) {
	status, err := postStatusFilter(q.Status)
	if err != nil {
		return PostPage{}, err
	}
	page, limit := ClampPaging(q.Page, q.Limit)

	total, err := s.repo.Count(ctx, status)
	if err != nil {
		return PostPage{}, internalError(msgLoadPostsError, err)
	}
	posts, err := s.repo.List(ctx, status, limit, (page-1)*limit)
	if err != nil {
		return PostPage{}, internalError(msgLoadPostsError, err)
	}
	return PostPage{
		Data: posts,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

// Latest returns the newest published post, or nil when there is none.
func (s *PostService) Latest(ctx context.Context) (*models.Post, error) {
	posts, err := s.repo.List(ctx, models.PostStatusPublished, 1, 0)
	if err != nil {
		return nil, internalError(msgLoadPostsError, err)
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

func (s *PostService) Get(ctx context.Context, id int64) (models.Post, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Post{}, notFoundOrInternal(err, msgPostNotFound, "failed to load post")
	}
	return p, nil
}

// Create inserts a post. Only the title is required; status defaults to draft.
func (s *PostService) Create(ctx context.Context, in models.PostPatch) (int64, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return 0, validationError(msgTitleRequired)
	}
	p := models.Post{
		Title:      *in.Title,
		Content:    deref(in.Content),
		Excerpt:    deref(in.Excerpt),
		CoverImage: deref(in.CoverImage),
		Category:   deref(in.Category),
		Tags:       []string{},
		Status:     models.PostStatusDraft,
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.Status != nil {
		if !validPostStatus(*in.Status) {
			return 0, validationError(msgInvalidStatus)
		}
		p.Status = *in.Status
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, internalError("failed to create post", err)
	}
	return id, nil
}

// Update applies a partial update.
func (s *PostService) Update(ctx context.Context, id int64, in models.PostPatch) error {
	if in.Empty() {
		return validationError(msgNoFields)
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return validationError(msgTitleRequired)
	}
	if in.Status != nil && !validPostStatus(*in.Status) {
		return validationError(msgInvalidStatus)
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		return notFoundOrInternal(err, msgPostNotFound, "failed to update post")
	}
	return nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOrInternal(err, msgPostNotFound, "failed to delete post")
	}
	return nil
}

func notFoundOrInternal(err error, notFoundMsg, internalMsg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return newError(KindNotFound, notFoundMsg)
	}
	return internalError(internalMsg, err)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
