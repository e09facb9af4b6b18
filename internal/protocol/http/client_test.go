package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sadopc/reqdeck/internal/protocol"
)

func TestClient_GET(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Error("expected Accept header to be sent")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := New()
	resp, err := client.Execute(context.Background(), &protocol.Request{
		Method:  "GET",
		URL:     server.URL + "/test",
		Headers: map[string]string{"Accept": "application/json"},
	})

	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.ContentType != "application/json" {
		t.Errorf("expected application/json, got %s", resp.ContentType)
	}
	if resp.Duration == 0 {
		t.Error("duration should be > 0")
	}
	if resp.Size != int64(len(resp.Body)) {
		t.Errorf("size %d does not match body length %d", resp.Size, len(resp.Body))
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("body unmarshal failed: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status=ok, got %s", body["status"])
	}
}

func TestClient_POST(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		var data map[string]string
		json.Unmarshal(body, &data)
		if data["name"] != "test" {
			t.Errorf("expected name=test, got %s", data["name"])
		}
		w.WriteHeader(201)
		w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	client := New()
	resp, err := client.Execute(context.Background(), &protocol.Request{
		Method:  "POST",
		URL:     server.URL + "/users",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    []byte(`{"name":"test"}`),
	})

	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestClient_ErrorStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := New()
	resp, err := client.Execute(context.Background(), &protocol.Request{
		Method: "GET",
		URL:    server.URL,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "boom" {
		t.Errorf("expected error body to be readable, got %q", resp.Body)
	}
}

func TestClient_Validate(t *testing.T) {
	client := New()

	if err := client.Validate(&protocol.Request{Method: "GET"}); err == nil {
		t.Error("expected error for missing URL")
	}
	if err := client.Validate(&protocol.Request{URL: "https://example.com"}); err == nil {
		t.Error("expected error for missing method")
	}
	if err := client.Validate(&protocol.Request{Method: "GET", URL: "https://example.com"}); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer server.Close()

	client := New()
	_, err := client.Execute(context.Background(), &protocol.Request{
		Method:  "GET",
		URL:     server.URL,
		Timeout: 20 * time.Millisecond,
	})
	if err == nil {
		t.Error("expected timeout error")
	}
}

func TestClient_RedirectLimit(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL, http.StatusFound)
	}))
	defer server.Close()

	client := New()
	_, err := client.Execute(context.Background(), &protocol.Request{
		Method: "GET",
		URL:    server.URL,
	})
	if err == nil {
		t.Error("expected redirect loop to fail")
	}
}
