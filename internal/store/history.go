package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// HistoryEntry is an immutable record of one execution of a request. It
// snapshots what was actually sent, independent of later edits to the
// owning request.
type HistoryEntry struct {
	ID           int64
	RequestID    int64
	URL          string
	Method       string
	Headers      string // JSON-encoded request headers as sent
	RequestBody  string
	StatusCode   int
	Duration     time.Duration // persisted with millisecond granularity
	ResponseBody string
	CreatedAt    time.Time
}

// AddHistory appends an execution record. History rows are never updated
// or deleted.
func (s *Store) AddHistory(e HistoryEntry) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO request_history
			(request_id, url, method, headers, request_body, status_code, response_time_ms, response_body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RequestID, e.URL, e.Method, e.Headers, e.RequestBody,
		e.StatusCode, e.Duration.Milliseconds(), e.ResponseBody,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting history: %w", err)
	}
	return result.LastInsertId()
}

// History returns all execution records for a request, newest first. A
// request with no executions yields an empty slice.
func (s *Store) History(requestID int64) ([]HistoryEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, request_id, url, method, headers, request_body, status_code, response_time_ms, response_body, created_at
		FROM request_history
		WHERE request_id = ?
		ORDER BY created_at DESC, id DESC`, requestID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		e, err := scanHistory(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LatestHistory returns the most recent execution record for a request,
// or nil when the request has never been run.
func (s *Store) LatestHistory(requestID int64) (*HistoryEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, request_id, url, method, headers, request_body, status_code, response_time_ms, response_body, created_at
		FROM request_history
		WHERE request_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, requestID)

	e, err := scanHistory(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanHistory(scan func(...any) error) (HistoryEntry, error) {
	var e HistoryEntry
	var ms int64
	var ts string
	err := scan(&e.ID, &e.RequestID, &e.URL, &e.Method, &e.Headers, &e.RequestBody,
		&e.StatusCode, &ms, &e.ResponseBody, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return HistoryEntry{}, err
	}
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("scanning history row: %w", err)
	}
	e.Duration = time.Duration(ms) * time.Millisecond
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, ts)
	return e, nil
}
