package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestOpen_InMemoryCreatesSchema(t *testing.T) {
	ctx := testCtx(t)
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"users", "posts", "projects", "settings"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
		require.Equal(t, table, name)
	}

	var title string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT setting_value FROM settings WHERE setting_key = 'site_title'`).Scan(&title))
	require.Equal(t, "Pixel World", title)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	ctx := testCtx(t)
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db))
}

func TestMigrate_PropagatesGooseError(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })
	gooseUp = func(context.Context, *sql.DB, string) error { return errors.New("boom") }

	_, err := Open(testCtx(t), ":memory:")
	require.Error(t, err)
	require.Contains(t, err.Error(), "run migrations")
}

func TestOpen_UsernameIsCaseSensitiveAndUnique(t *testing.T) {
	ctx := testCtx(t)
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `INSERT INTO users (username, password_hash) VALUES ('alice', 'h')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO users (username, password_hash) VALUES ('Alice', 'h')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO users (username, password_hash) VALUES ('alice', 'h2')`)
	require.Error(t, err)
}
