package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS weekly_records (
		user_id      TEXT PRIMARY KEY,
		week_start   TEXT NOT NULL,
		week_end     TEXT NOT NULL,
		foods        TEXT NOT NULL DEFAULT '[]',
		total_points INTEGER NOT NULL DEFAULT 0,
		streak_count INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS daily_records (
		user_id   TEXT NOT NULL,
		date      TEXT NOT NULL,
		water     INTEGER NOT NULL DEFAULT 0,
		colors    TEXT NOT NULL DEFAULT '[]',
		fermented INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, date)
	);

	CREATE TABLE IF NOT EXISTS archived_weeks (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id       TEXT NOT NULL,
		week_start    TEXT NOT NULL,
		week_end      TEXT NOT NULL,
		total_points  INTEGER NOT NULL DEFAULT 0,
		goal_achieved INTEGER NOT NULL DEFAULT 0,
		UNIQUE(user_id, week_start)
	);

	CREATE INDEX IF NOT EXISTS idx_archived_user ON archived_weeks(user_id);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	INSERT OR IGNORE INTO settings (key, value) VALUES
		('user', 'default');
	`
	_, err := s.db.Exec(ddl)
	return err
}

// Clear removes all records of all kinds and restores settings
// defaults. Intended for tests and the occasional fresh start.
func (s *Store) Clear() error {
	tables := []string{"weekly_records", "daily_records", "archived_weeks", "settings"}
	for _, tbl := range tables {
		if _, err := s.db.Exec("DELETE FROM " + tbl); err != nil {
			return fmt.Errorf("clear %s: %w", tbl, err)
		}
	}
	_, err := s.db.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES ('user', 'default')`)
	return err
}

// DefaultDBPath returns ~/.config/plants/plants.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "plants", "plants.db"), nil
}
