package editor

import (
	"testing"

	"github.com/sadopc/reqdeck/internal/store"
	"github.com/sadopc/reqdeck/internal/ui/theme"
)

func TestHeadersToLines(t *testing.T) {
	got := headersToLines(`{"Content-Type":"application/json","Accept":"text/html"}`)
	want := "Accept: text/html\nContent-Type: application/json"
	if got != want {
		t.Errorf("headersToLines = %q, want %q", got, want)
	}

	if headersToLines("") != "" {
		t.Error("empty input should yield empty output")
	}
	if headersToLines("{broken") != "" {
		t.Error("malformed input should yield empty output")
	}
}

func TestLinesToHeaders(t *testing.T) {
	got := linesToHeaders("Accept: text/html\n\nX-Token: abc:def\nno colon line\n: empty key\n")
	want := `{"Accept":"text/html","X-Token":"abc:def"}`
	if got != want {
		t.Errorf("linesToHeaders = %q, want %q", got, want)
	}

	if linesToHeaders("") != "" {
		t.Error("empty input should yield empty output")
	}
	if linesToHeaders("junk without separator") != "" {
		t.Error("input with no usable lines should yield empty output")
	}
}

func TestHeaderLinesRoundTrip(t *testing.T) {
	encoded := `{"Accept":"application/json","Authorization":"Bearer tok"}`
	if got := linesToHeaders(headersToLines(encoded)); got != encoded {
		t.Errorf("round trip changed encoding: %q", got)
	}
}

func TestLoadRequestAndFields(t *testing.T) {
	m := New(theme.NewStyles(theme.Default()))
	m.LoadRequest(store.Request{
		ID:      7,
		Name:    "list users",
		URL:     "https://api.example.com/users",
		Method:  "POST",
		Headers: `{"Accept":"application/json"}`,
		Body:    `{"page":1}`,
	})

	if m.RequestID() != 7 {
		t.Errorf("RequestID = %d, want 7", m.RequestID())
	}
	if m.Dirty() {
		t.Error("freshly loaded request should not be dirty")
	}

	fields := m.Fields()
	if fields.Name != "list users" || fields.URL != "https://api.example.com/users" {
		t.Errorf("fields not loaded: %+v", fields)
	}
	if fields.Method != "POST" {
		t.Errorf("method = %q, want POST", fields.Method)
	}
	if fields.Headers != `{"Accept":"application/json"}` {
		t.Errorf("headers = %q", fields.Headers)
	}
	if fields.Body != `{"page":1}` {
		t.Errorf("body = %q", fields.Body)
	}
}
