package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite { return &SettingsSQLite{db: db} }

var _ SettingsRepo = (*SettingsSQLite)(nil)

const (
	selectSettingsSQL = `SELECT setting_key, setting_value FROM settings`
	selectSettingSQL  = `SELECT setting_value FROM settings WHERE setting_key = ?`
	upsertSettingSQL  = `INSERT INTO settings (setting_key, setting_value) VALUES (?, ?)
		ON CONFLICT(setting_key) DO UPDATE SET setting_value = excluded.setting_value`
)

func (r *SettingsSQLite) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, selectSettingsSQL)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k string
		var v sql.NullString
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out[k] = v.String
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settings: %w", err)
	}
	return out, nil
}

func (r *SettingsSQLite) Get(ctx context.Context, key string) (string, error) {
	var v sql.NullString
	if err := r.db.QueryRowContext(ctx, selectSettingSQL, key).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("select setting %q: %w", key, err)
	}
	return v.String, nil
}

// Upsert creates the key or overwrites its value.
func (r *SettingsSQLite) Upsert(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertSettingSQL, key, value); err != nil {
		return fmt.Errorf("upsert setting %q: %w", key, err)
	}
	return nil
}
