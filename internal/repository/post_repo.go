package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pixel_portfolio/internal/models"
)

type PostSQLite struct {
	db *sql.DB
}

func NewPostSQLite(db *sql.DB) *PostSQLite { return &PostSQLite{db: db} }

var _ PostRepo = (*PostSQLite)(nil)

const (
	selectPostListSQL = `SELECT id, title, excerpt, cover_image, category, tags, status, created_at, updated_at FROM posts`
	countPostsSQL     = `SELECT COUNT(*) FROM posts`
	selectPostSQL     = `SELECT id, title, content, excerpt, cover_image, category, tags, status, created_at, updated_at FROM posts WHERE id = ?`
	insertPostSQL     = `INSERT INTO posts (title, content, excerpt, cover_image, category, tags, status) VALUES (?, ?, ?, ?, ?, ?, ?)`
	deletePostSQL     = `DELETE FROM posts WHERE id = ?`
)

// statusFilter returns the WHERE fragment for an optional status; "" means all.
func statusFilter(status string) (string, []any) {
	if status == "" {
		return "", nil
	}
	return " WHERE status = ?", []any{status}
}

// List returns one page of posts, newest first. Content is not loaded.
func (r *PostSQLite) List(ctx context.Context, status string, limit, offset int) ([]models.Post, error) {
	where, args := statusFilter(status)
	q := selectPostListSQL + where + " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, limit)
	for rows.Next() {
		var (
			p    models.Post
			tags sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.CoverImage, &p.Category, &tags, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		p.Tags = decodeStringList(tags)
		p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return out, nil
}

func (r *PostSQLite) Count(ctx context.Context, status string) (int, error) {
	where, args := statusFilter(status)
	var n int
	if err := r.db.QueryRowContext(ctx, countPostsSQL+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

func (r *PostSQLite) Get(ctx context.Context, id int64) (models.Post, error) {
	var (
		p    models.Post
		tags sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectPostSQL, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.CoverImage, &p.Category, &tags, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("select post %d: %w", id, err)
	}
	p.Tags = decodeStringList(tags)
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return p, nil
}

func (r *PostSQLite) Create(ctx context.Context, p models.Post) (int64, error) {
	tags, err := encodeStringList(p.Tags)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, insertPostSQL, p.Title, p.Content, p.Excerpt, p.CoverImage, p.Category, tags, p.Status)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post: %w", err)
	}
	return id, nil
}

// Update applies the non-nil fields of patch and bumps updated_at.
func (r *PostSQLite) Update(ctx context.Context, id int64, patch models.PostPatch) error {
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
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.Excerpt != nil {
		add("excerpt", *patch.Excerpt)
	}
	if patch.CoverImage != nil {
		add("cover_image", *patch.CoverImage)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Tags != nil {
		tags, err := encodeStringList(*patch.Tags)
		if err != nil {
			return err
		}
		add("tags", tags)
	}
	if len(sets) == 0 {
		return errors.New("update post: no fields")
	}

	q := "UPDATE posts SET " + strings.Join(sets, ", ") + ", updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update post %d: %w", id, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("update post %d: %w", id, err)
	}
	return nil
}

func (r *PostSQLite) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deletePostSQL, id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
