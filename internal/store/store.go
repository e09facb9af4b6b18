package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a referenced request id does not exist.
var ErrNotFound = errors.New("request not found")

// Store manages request and history persistence.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at the given path and ensures
// the schema is current.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One writer; also keeps :memory: databases on a single connection.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS requests (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL DEFAULT '',
			url        TEXT NOT NULL DEFAULT '',
			method     TEXT NOT NULL DEFAULT 'GET',
			headers    TEXT NOT NULL DEFAULT '',
			body       TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS request_history (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id       INTEGER NOT NULL REFERENCES requests(id),
			url              TEXT NOT NULL,
			method           TEXT NOT NULL,
			headers          TEXT NOT NULL DEFAULT '',
			request_body     TEXT NOT NULL DEFAULT '',
			status_code      INTEGER NOT NULL,
			response_time_ms INTEGER NOT NULL,
			response_body    TEXT NOT NULL,
			created_at       TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_request ON request_history(request_id, created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// migrate brings databases created by the earliest schema version (a bare
// requests(id, url) table) up to the current column set. Adding a column
// that already exists is the only failure mode, so missing columns are
// checked first; the whole step is idempotent.
func migrate(db *sql.DB) error {
	cols, err := tableColumns(db, "requests")
	if err != nil {
		return err
	}

	missing := map[string]string{
		"name":       "TEXT NOT NULL DEFAULT ''",
		"method":     "TEXT NOT NULL DEFAULT 'GET'",
		"headers":    "TEXT NOT NULL DEFAULT ''",
		"body":       "TEXT NOT NULL DEFAULT ''",
		"created_at": "TEXT NOT NULL DEFAULT ''",
	}
	for _, c := range cols {
		delete(missing, c)
	}

	for col, def := range missing {
		if _, err := db.Exec(fmt.Sprintf("ALTER TABLE requests ADD COLUMN %s %s", col, def)); err != nil {
			return fmt.Errorf("migrating requests table: %w", err)
		}
	}
	return nil
}

func tableColumns(db *sql.DB, table string) ([]string, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("reading schema for %s: %w", table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return nil, fmt.Errorf("scanning schema row: %w", err)
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
