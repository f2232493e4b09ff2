package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pixel_portfolio/internal/models"
)

type ProjectSQLite struct {
	db *sql.DB
}

func NewProjectSQLite(db *sql.DB) *ProjectSQLite { return &ProjectSQLite{db: db} }

var _ ProjectRepo = (*ProjectSQLite)(nil)

const (
	projectColumns    = `id, title, subtitle, description, tech_stack, icon, link, status, display_order, created_at`
	selectProjectsSQL = `SELECT ` + projectColumns + ` FROM projects`
	selectProjectSQL  = `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	insertProjectSQL  = `INSERT INTO projects (title, subtitle, description, tech_stack, icon, link, status, display_order) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	deleteProjectSQL  = `DELETE FROM projects WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(s rowScanner) (models.Project, error) {
	var (
		p    models.Project
		tech sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Description, &tech, &p.Icon, &p.Link, &p.Status, &p.DisplayOrder, &p.CreatedAt); err != nil {
		return models.Project{}, err
	}
	p.TechStack = decodeStringList(tech)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

// List returns projects ordered for display: display_order, then newest first.
func (r *ProjectSQLite) List(ctx context.Context, status string) ([]models.Project, error) {
	where, args := statusFilter(status)
	q := selectProjectsSQL + where + " ORDER BY display_order ASC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]models.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

func (r *ProjectSQLite) Get(ctx context.Context, id int64) (models.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, selectProjectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, fmt.Errorf("select project %d: %w", id, err)
	}
	return p, nil
}

func (r *ProjectSQLite) Create(ctx context.Context, p models.Project) (int64, error) {
	tech, err := encodeStringList(p.TechStack)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, insertProjectSQL,
		p.Title, p.Subtitle, p.Description, tech, p.Icon, p.Link, p.Status, p.DisplayOrder)
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for project: %w", err)
	}
	return id, nil
}

func (r *ProjectSQLite) Update(ctx context.Context, id int64, patch models.ProjectPatch) error {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Subtitle != nil {
		add("subtitle", *patch.Subtitle)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Icon != nil {
		add("icon", *patch.Icon)
	}
	if patch.Link != nil {
		add("link", *patch.Link)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.DisplayOrder != nil {
		add("display_order", *patch.DisplayOrder)
	}
	if patch.TechStack != nil {
		tech, err := encodeStringList(*patch.TechStack)
		if err != nil {
			return err
		}
		add("tech_stack", tech)
	}
	if len(sets) == 0 {
		return errors.New("update project: no fields")
	}

	q := "UPDATE projects SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update project %d: %w", id, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("update project %d: %w", id, err)
	}
	return nil
}

func (r *ProjectSQLite) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteProjectSQL, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}
