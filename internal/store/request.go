package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Request is a stored, reusable definition of an HTTP call.
type Request struct {
	ID        int64
	Name      string
	URL       string
	Method    string
	Headers   string // JSON-encoded header map
	Body      string
	CreatedAt time.Time
}

// CreateRequest inserts a new request with the given name. URL, headers
// and body start empty; the method defaults to GET.
func (s *Store) CreateRequest(name string) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO requests (name, url, method, headers, body, created_at)
		VALUES (?, '', 'GET', '', '', ?)`,
		name, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting request: %w", err)
	}
	return result.LastInsertId()
}

// Request fetches a single request by id.
func (s *Store) Request(id int64) (Request, error) {
	row := s.db.QueryRow(`
		SELECT id, name, url, method, headers, body, created_at
		FROM requests WHERE id = ?`, id)

	var r Request
	var ts string
	err := row.Scan(&r.ID, &r.Name, &r.URL, &r.Method, &r.Headers, &r.Body, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return Request{}, fmt.Errorf("request %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Request{}, fmt.Errorf("fetching request: %w", err)
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, ts)
	return r, nil
}

// Requests returns all stored requests, newest first.
func (s *Store) Requests() ([]Request, error) {
	rows, err := s.db.Query(`
		SELECT id, name, url, method, headers, body, created_at
		FROM requests
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		var r Request
		var ts string
		if err := rows.Scan(&r.ID, &r.Name, &r.URL, &r.Method, &r.Headers, &r.Body, &ts); err != nil {
			return nil, fmt.Errorf("scanning request row: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, ts)
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// UpdateRequest overwrites the mutable fields of the request with the
// given id. ID and created_at are never touched.
func (s *Store) UpdateRequest(id int64, r Request) error {
	result, err := s.db.Exec(`
		UPDATE requests SET name = ?, url = ?, method = ?, headers = ?, body = ?
		WHERE id = ?`,
		r.Name, r.URL, r.Method, r.Headers, r.Body, id,
	)
	if err != nil {
		return fmt.Errorf("updating request: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating request: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("request %d: %w", id, ErrNotFound)
	}
	return nil
}
