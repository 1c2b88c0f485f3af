package tracker

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on open. IF NOT EXISTS makes it safe to
// run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS completed (
    date         TEXT PRIMARY KEY,
    commits      INTEGER NOT NULL,
    completed_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore persists the ledger in a local SQLite database. It keeps the
// same whole-ledger load/save contract as FileStore so the tracker logic is
// backend-agnostic.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the ledger database at path. A single
// connection is enough here: SQLite has one writer and the core is
// single-process by design.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("tracker: open ledger database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("tracker: enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("tracker: create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the whole ledger. Query failures degrade to an empty ledger,
// matching the file store's corruption policy.
func (s *SQLiteStore) Load() (Ledger, error) {
	ledger := NewLedger()

	rows, err := s.db.Query("SELECT date, commits, completed_at FROM completed")
	if err != nil {
		return NewLedger(), nil
	}
	defer rows.Close()

	for rows.Next() {
		var date, completedAt string
		var commits int
		if err := rows.Scan(&date, &commits, &completedAt); err != nil {
			return NewLedger(), nil
		}
		ts, err := time.Parse(time.RFC3339, completedAt)
		if err != nil {
			ts = time.Time{}
		}
		ledger.Completed[date] = Entry{Commits: commits, CompletedAt: ts}
	}
	if err := rows.Err(); err != nil {
		return NewLedger(), nil
	}

	var lastRun string
	err = s.db.QueryRow("SELECT value FROM meta WHERE key = 'last_run'").Scan(&lastRun)
	if err == nil {
		if ts, perr := time.Parse(time.RFC3339, lastRun); perr == nil {
			ledger.LastRun = &ts
		}
	}
	return ledger, nil
}

// Save replaces the stored ledger with the given one in a single
// transaction.
func (s *SQLiteStore) Save(ledger Ledger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("tracker: begin ledger tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec("DELETE FROM completed"); err != nil {
		return fmt.Errorf("tracker: clear completed: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO completed (date, commits, completed_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("tracker: prepare insert: %w", err)
	}
	defer stmt.Close()

	for date, e := range ledger.Completed {
		if _, err := stmt.Exec(date, e.Commits, e.CompletedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("tracker: insert %s: %w", date, err)
		}
	}

	if ledger.LastRun != nil {
		const q = `
			INSERT INTO meta (key, value) VALUES ('last_run', ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`
		if _, err := tx.Exec(q, ledger.LastRun.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("tracker: save last run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tracker: commit ledger: %w", err)
	}
	return nil
}

// Reset deletes every ledger row.
func (s *SQLiteStore) Reset() error {
	if _, err := s.db.Exec("DELETE FROM completed"); err != nil {
		return fmt.Errorf("tracker: reset completed: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM meta"); err != nil {
		return fmt.Errorf("tracker: reset meta: %w", err)
	}
	return nil
}
