package models

import "time"

const (
	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"

	DefaultProjectIcon = "code"
)

type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	TechStack    []string  `json:"tech_stack"`
	Icon         string    `json:"icon"`
	Link         string    `json:"link"`
	Status       string    `json:"status"` // active | archived
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProjectPatch struct {
	Title        *string   `json:"title"`
	Subtitle     *string   `json:"subtitle"`
	Description  *string   `json:"description"`
	TechStack    *[]string `json:"tech_stack"`
	Icon         *string   `json:"icon"`
	Link         *string   `json:"link"`
	Status       *string   `json:"status"`
	DisplayOrder *int      `json:"display_order"`
}

func (p ProjectPatch) Empty() bool {
	return p.Title == nil && p.Subtitle == nil && p.Description == nil && p.TechStack == nil &&
		p.Icon == nil && p.Link == nil && p.Status == nil && p.DisplayOrder == nil
}
