// Package sqlite implements the repository interfaces on SQLite.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which needs a C compiler and makes
// cross-compilation painful. modernc.org/sqlite is a pure Go translation of
// SQLite — works everywhere Go works.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and implements the repository interfaces.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the database at dbPath and runs migrations.
// Use ":memory:" in tests for a fresh throwaway database.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// SQLite allows one writer at a time, and a ":memory:" database exists
	// per connection. A single pooled connection avoids SQLITE_BUSY under
	// concurrent writes and keeps tests on the database they migrated.
	conn.SetMaxOpenConns(1)

	// Force an immediate connection so a bad path fails here, not on the
	// first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL allows concurrent reads while a write is in progress — important
	// for a web server where requests hit the DB in parallel.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite. The schema relies on them:
	// comments and likes cascade away with their post.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Always defer this next to New().
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps it idempotent.
func (db *DB) migrate() error {
	// email is nullable AND unique: OAuth-less rows always have one, but the
	// model allows its absence. SQLite treats NULLs as distinct in UNIQUE
	// indexes, so multiple email-less rows are fine.
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id         TEXT PRIMARY KEY,
			name       TEXT,
			email      TEXT UNIQUE,
			password   TEXT,
			image      TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS posts (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL DEFAULT '',
			image_url  TEXT,
			author_id  TEXT NOT NULL REFERENCES users(id),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id);
		CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating posts table: %w", err)
	}

	// ON DELETE CASCADE: deleting a post takes its comments with it. The
	// application never has to clean these up by hand.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS comments (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL,
			post_id    TEXT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			author_id  TEXT NOT NULL REFERENCES users(id),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id);
	`)
	if err != nil {
		return fmt.Errorf("creating comments table: %w", err)
	}

	// UNIQUE(post_id, user_id) is the whole point: the at-most-one-like
	// invariant lives in the store, so the toggle's insert side cannot race
	// itself into duplicates.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS likes (
			id      TEXT PRIMARY KEY,
			post_id TEXT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL REFERENCES users(id),
			UNIQUE(post_id, user_id)
		);
	`)
	if err != nil {
		return fmt.Errorf("creating likes table: %w", err)
	}

	return nil
}

// nullable converts a Go empty string to a SQL NULL on the write path.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// exists reports whether a row with the given id is present in table.
// Used to tell 404 from 403 after a conditional owner-gated write touched
// zero rows. The table name is always a compile-time constant here, never
// user input.
func (db *DB) exists(ctx context.Context, table, id string) (bool, error) {
	var one int
	err := db.conn.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT 1 FROM %s WHERE id = ?`, table), id,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite: checking %s %s: %w", table, id, err)
	}
	return true, nil
}
