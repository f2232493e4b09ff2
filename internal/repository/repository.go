package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pixel_portfolio/internal/models"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when a row addressed by id or key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert hits a UNIQUE constraint.
	ErrDuplicate = errors.New("duplicate")
)

// Authorization is the credential store. Lookups return (nil, nil) when the
// user does not exist.
type Authorization interface {
	Create(ctx context.Context, username, hash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type PostRepo interface {
	List(ctx context.Context, status string, limit, offset int) ([]models.Post, error)
	Count(ctx context.Context, status string) (int, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Create(ctx context.Context, p models.Post) (int64, error)
	Update(ctx context.Context, id int64, patch models.PostPatch) error
	Delete(ctx context.Context, id int64) error
}

type ProjectRepo interface {
	List(ctx context.Context, status string) ([]models.Project, error)
	Get(ctx context.Context, id int64) (models.Project, error)
	Create(ctx context.Context, p models.Project) (int64, error)
	Update(ctx context.Context, id int64, patch models.ProjectPatch) error
	Delete(ctx context.Context, id int64) error
}

type SettingsRepo interface {
	All(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
}

type Repository struct {
	Auth     Authorization
	Posts    PostRepo
	Projects ProjectRepo
	Settings SettingsRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(db),
		Posts:    NewPostSQLite(db),
		Projects: NewProjectSQLite(db),
		Settings: NewSettingsSQLite(db),
	}
}

// isUniqueViolation recognizes SQLite UNIQUE/PK failures. The message check
// covers drivers that do not surface *sqlite.Error (sqlmock in tests).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// affectedOrNotFound turns a zero-row UPDATE/DELETE into ErrNotFound.
func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
