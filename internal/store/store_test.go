package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRequestLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateRequest("users")
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Error("expected non-zero ID")
	}

	req, err := s.Request(id)
	if err != nil {
		t.Fatal(err)
	}
	if req.Name != "users" {
		t.Errorf("expected name %q, got %q", "users", req.Name)
	}
	if req.Method != "GET" {
		t.Errorf("expected default method GET, got %q", req.Method)
	}
	if req.URL != "" {
		t.Errorf("expected empty URL, got %q", req.URL)
	}
	if req.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	// Update overwrites every mutable field but not id or created_at.
	req.Name = "list users"
	req.URL = "https://api.example.com/users"
	req.Method = "POST"
	req.Headers = `{"Authorization":"Bearer tok"}`
	req.Body = `{"page":1}`
	if err := s.UpdateRequest(id, req); err != nil {
		t.Fatal(err)
	}

	got, err := s.Request(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != id {
		t.Errorf("update changed id: %d != %d", got.ID, id)
	}
	if !got.CreatedAt.Equal(req.CreatedAt) {
		t.Errorf("update changed created_at: %v != %v", got.CreatedAt, req.CreatedAt)
	}
	if got.URL != req.URL || got.Method != "POST" || got.Headers != req.Headers || got.Body != req.Body {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestRequestNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Request(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateRequest(42, Request{Name: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRequestsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	var ids []int64
	for _, name := range []string{"first", "second", "third"} {
		id, err := s.CreateRequest(name)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	requests, err := s.Requests()
	if err != nil {
		t.Fatal(err)
	}
	if len(requests) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(requests))
	}
	if requests[0].ID != ids[2] || requests[2].ID != ids[0] {
		t.Errorf("expected newest first, got ids %d, %d, %d",
			requests[0].ID, requests[1].ID, requests[2].ID)
	}
}

func TestHistoryAppendAndList(t *testing.T) {
	s := newTestStore(t)

	reqID, err := s.CreateRequest("ping")
	if err != nil {
		t.Fatal(err)
	}

	var histIDs []int64
	for i, code := range []int{200, 500, 404} {
		id, err := s.AddHistory(HistoryEntry{
			RequestID:    reqID,
			URL:          "https://example.com/ping",
			Method:       "GET",
			StatusCode:   code,
			Duration:     time.Duration(i+1) * 100 * time.Millisecond,
			ResponseBody: "pong",
		})
		if err != nil {
			t.Fatal(err)
		}
		histIDs = append(histIDs, id)
	}

	entries, err := s.History(reqID)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Newest first
	if entries[0].ID != histIDs[2] {
		t.Errorf("expected most recent first, got id %d", entries[0].ID)
	}
	if entries[0].StatusCode != 404 {
		t.Errorf("expected status 404, got %d", entries[0].StatusCode)
	}
	if entries[2].Duration != 100*time.Millisecond {
		t.Errorf("expected duration 100ms, got %v", entries[2].Duration)
	}

	latest, err := s.LatestHistory(reqID)
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.ID != histIDs[2] {
		t.Errorf("expected latest entry id %d, got %+v", histIDs[2], latest)
	}
}

func TestHistoryEmpty(t *testing.T) {
	s := newTestStore(t)

	reqID, err := s.CreateRequest("never run")
	if err != nil {
		t.Fatal(err)
	}

	entries, err := s.History(reqID)
	if err != nil {
		t.Fatal(err)
	}
	if entries == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}

	latest, err := s.LatestHistory(reqID)
	if err != nil {
		t.Fatal(err)
	}
	if latest != nil {
		t.Errorf("expected nil latest, got %+v", latest)
	}
}

func TestHistoryScopedToRequest(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.CreateRequest("a")
	b, _ := s.CreateRequest("b")

	if _, err := s.AddHistory(HistoryEntry{RequestID: a, Method: "GET", StatusCode: 200}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddHistory(HistoryEntry{RequestID: b, Method: "GET", StatusCode: 201}); err != nil {
		t.Fatal(err)
	}

	entries, err := s.History(a)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].StatusCode != 200 {
		t.Errorf("expected only request a's history, got %+v", entries)
	}
}

func TestMigrateLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	// Simulate a database created before requests grew its extra columns.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE requests (id INTEGER PRIMARY KEY AUTOINCREMENT, url TEXT NOT NULL)`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO requests (url) VALUES ('https://old.example.com')`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	s, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	requests, err := s.Requests()
	if err != nil {
		t.Fatal(err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 migrated request, got %d", len(requests))
	}
	if requests[0].URL != "https://old.example.com" {
		t.Errorf("existing row lost during migration: %+v", requests[0])
	}

	// Opening again must be a no-op.
	s2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen after migration: %v", err)
	}
	s2.Close()
}
