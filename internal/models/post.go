package models

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Post is a blog entry. Content is left out of list responses.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content,omitempty"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"cover_image"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	Status     string    `json:"status"` // draft | published
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PostPatch carries the fields of a create or partial update; nil means "not sent".
type PostPatch struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Excerpt    *string   `json:"excerpt"`
	CoverImage *string   `json:"cover_image"`
	Category   *string   `json:"category"`
	Tags       *[]string `json:"tags"`
	Status     *string   `json:"status"`
}

// Empty reports whether no field was supplied.
func (p PostPatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Excerpt == nil && p.CoverImage == nil &&
		p.Category == nil && p.Tags == nil && p.Status == nil
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
