package store

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	_ "modernc.org/sqlite"
)

// Store is the persistence gateway. Every top-level record (foods, drinks,
// targets, draft, history) is one JSON document in the records table,
// written wholesale in a single statement: last write wins per record.
type Store struct {
	db   *sql.DB
	path string
	log  hclog.Logger
}

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "records",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS records (
  name TEXT PRIMARY KEY,
  body TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "store",
		Output: os.Stderr,
		Level:  hclog.Warn,
	})
	return &Store{db: db, path: path, log: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Migrate() error {
	if _, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := s.db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}
	return nil
}

func (s *Store) getRecord(name string) (string, bool, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM records WHERE name = ?`, name).Scan(&body)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read record %q: %w", name, err)
	}
	return body, true, nil
}

func (s *Store) putRecord(name, body string) error {
	_, err := s.db.Exec(`
INSERT INTO records(name, body, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(name) DO UPDATE SET body=excluded.body, updated_at=excluded.updated_at
`, name, body)
	if err != nil {
		return fmt.Errorf("write record %q: %w", name, err)
	}
	return nil
}
