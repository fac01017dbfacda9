package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database and hands out repositories.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas, and creates any missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns the LLM event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &sqliteRepo{db: s.db}
}

// ActivityRepo returns the activity/progress repository backed by this store.
func (s *Store) ActivityRepo() ActivityRepo {
	return &sqliteRepo{db: s.db}
}

// AssessmentRepo returns the assessment repository backed by this store.
func (s *Store) AssessmentRepo() AssessmentRepo {
	return &sqliteRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEVELCHECK_DB environment variable
// 2. $XDG_DATA_HOME/levelcheck/levelcheck.db
// 3. ~/.local/share/levelcheck/levelcheck.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEVELCHECK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "levelcheck", "levelcheck.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
