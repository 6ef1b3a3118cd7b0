// Package cache persists identity lookup answers in a local SQLite database
// so repeated consolidation runs do not hammer the metadata services.
// Negative answers are cached too.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS lookup_cache (
    kind        TEXT    NOT NULL,
    query_title TEXT    NOT NULL,
    query_year  INTEGER NOT NULL,
    found       INTEGER NOT NULL,
    title       TEXT    NOT NULL DEFAULT '',
    year        INTEGER NOT NULL DEFAULT 0,
    external_id TEXT    NOT NULL DEFAULT '',
    created_at  TEXT    NOT NULL,
    PRIMARY KEY (kind, query_title, query_year)
);`

// Entry is one cached lookup answer. Found=false records a confirmed miss.
type Entry struct {
	Title string
	Year  int
	ID    string
	Found bool
}

// Store manages the lookup cache database.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database at path, creating
// parent directories as needed.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("cache path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached answer for a query, or nil when no answer has been
// recorded yet.
func (s *Store) Get(ctx context.Context, kind, title string, year int) (*Entry, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT found, title, year, external_id FROM lookup_cache
         WHERE kind = ? AND query_title = ? AND query_year = ?`,
		kind, normalizeQuery(title), year,
	)

	var entry Entry
	var found int
	if err := row.Scan(&found, &entry.Title, &entry.Year, &entry.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache entry: %w", err)
	}
	entry.Found = found != 0
	return &entry, nil
}

// Put records the answer for a query, replacing any previous answer.
func (s *Store) Put(ctx context.Context, kind, title string, year int, entry Entry) error {
	found := 0
	if entry.Found {
		found = 1
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO lookup_cache
            (kind, query_title, query_year, found, title, year, external_id, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		kind, normalizeQuery(title), year, found, entry.Title, entry.Year, entry.ID,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

func normalizeQuery(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
