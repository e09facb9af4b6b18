package export

import (
	"strings"
	"testing"

	"github.com/sadopc/reqdeck/internal/protocol"
	"github.com/sadopc/reqdeck/internal/runner"
	"github.com/sadopc/reqdeck/internal/store"
)

func TestAsCurl_GET(t *testing.T) {
	cmd := AsCurl(&protocol.Request{
		Method: "GET",
		URL:    "https://api.example.com/users",
	})
	if cmd != "curl 'https://api.example.com/users'" {
		t.Errorf("unexpected command: %s", cmd)
	}
}

func TestAsCurl_POST(t *testing.T) {
	cmd := AsCurl(&protocol.Request{
		Method:  "POST",
		URL:     "https://api.example.com/users",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    []byte(`{"name":"test"}`),
	})

	if !strings.HasPrefix(cmd, "curl -X POST") {
		t.Errorf("expected explicit method flag: %s", cmd)
	}
	if !strings.Contains(cmd, "-H 'Content-Type: application/json'") {
		t.Errorf("missing header flag: %s", cmd)
	}
	if !strings.Contains(cmd, `-d '{"name":"test"}'`) {
		t.Errorf("missing body flag: %s", cmd)
	}
	if !strings.HasSuffix(cmd, "'https://api.example.com/users'") {
		t.Errorf("URL should be last: %s", cmd)
	}
}

func TestAsCurl_StoredRequest(t *testing.T) {
	cmd := AsCurl(runner.Prepare(store.Request{
		URL:     "https://api.example.com/users",
		Method:  "POST",
		Headers: runner.EncodeHeaders(map[string]string{"X-Token": "abc"}),
		Body:    `{"name":"test"}`,
	}))

	if !strings.Contains(cmd, "-H 'X-Token: abc'") {
		t.Errorf("stored header missing from export: %s", cmd)
	}
	if !strings.Contains(cmd, "-H 'Content-Type: application/json'") {
		t.Errorf("export must carry the forced POST content type: %s", cmd)
	}
	if !strings.Contains(cmd, `-d '{"name":"test"}'`) {
		t.Errorf("stored body missing from export: %s", cmd)
	}
}

func TestAsCurl_EscapesSingleQuotes(t *testing.T) {
	cmd := AsCurl(&protocol.Request{
		Method: "POST",
		URL:    "https://example.com",
		Body:   []byte(`{"note":"it's fine"}`),
	})
	if !strings.Contains(cmd, `it'\''s fine`) {
		t.Errorf("single quote not escaped: %s", cmd)
	}
}
