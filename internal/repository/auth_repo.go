package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pixel_portfolio/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username, password_hash, created_at FROM users WHERE id = ?`
)

// Create inserts a new user and returns its ID. A taken username yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", username, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return lastID, nil
}

// GetByUsername fetches a user by exact (case-sensitive) username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := r.scanOne(ctx, selectUserByUsernameSQL, username)
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByID fetches a user by primary key.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := r.scanOne(ctx, selectUserByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return u, nil
}

func (r *UserRepository) scanOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}
