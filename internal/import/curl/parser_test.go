package curl

import (
	"strings"
	"testing"
)

func TestParse_SimpleGET(t *testing.T) {
	req, err := Parse(`curl https://api.example.com/users`)
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != "GET" {
		t.Errorf("expected GET, got %s", req.Method)
	}
	if req.URL != "https://api.example.com/users" {
		t.Errorf("expected URL, got %s", req.URL)
	}
	if req.Name != "GET api.example.com/users" {
		t.Errorf("unexpected default name %q", req.Name)
	}
}

func TestParse_POSTWithBody(t *testing.T) {
	req, err := Parse(`curl -X POST -H 'Content-Type: application/json' -d '{"name":"test"}' https://api.example.com/users`)
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != "POST" {
		t.Errorf("expected POST, got %s", req.Method)
	}
	if req.Body != `{"name":"test"}` {
		t.Errorf("unexpected body: %s", req.Body)
	}
	if !strings.Contains(req.Headers, `"Content-Type":"application/json"`) {
		t.Errorf("expected Content-Type header, got %s", req.Headers)
	}
}

func TestParse_DataImpliesPost(t *testing.T) {
	req, err := Parse(`curl -d 'a=1' https://example.com`)
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != "POST" {
		t.Errorf("expected -d to imply POST, got %s", req.Method)
	}
	if req.Body != "a=1" {
		t.Errorf("unexpected body %q", req.Body)
	}
}

func TestParse_UnsupportedMethodFoldsToGet(t *testing.T) {
	req, err := Parse(`curl -X PATCH -d '{"v":1}' https://example.com`)
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != "GET" {
		t.Errorf("expected PATCH to fold to GET, got %s", req.Method)
	}
	if req.Body != "" {
		t.Errorf("GET must not carry a body, got %q", req.Body)
	}
}

func TestParse_BasicAuth(t *testing.T) {
	req, err := Parse(`curl -u admin:secret https://api.example.com/private`)
	if err != nil {
		t.Fatal(err)
	}
	// admin:secret base64-encoded
	if !strings.Contains(req.Headers, `"Authorization":"Basic YWRtaW46c2VjcmV0"`) {
		t.Errorf("expected basic auth header, got %s", req.Headers)
	}
}

func TestParse_MultipleHeaders(t *testing.T) {
	req, err := Parse(`curl -H "Accept: application/json" -H "Authorization: Bearer token123" https://api.example.com`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(req.Headers, `"Accept":"application/json"`) {
		t.Errorf("missing Accept header: %s", req.Headers)
	}
	if !strings.Contains(req.Headers, `"Authorization":"Bearer token123"`) {
		t.Errorf("missing Authorization header: %s", req.Headers)
	}
}

func TestParse_LineContinuations(t *testing.T) {
	req, err := Parse("curl -X DELETE \\\n  https://api.example.com/users/1")
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != "DELETE" || req.URL != "https://api.example.com/users/1" {
		t.Errorf("continuation not handled: %+v", req)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := Parse("curl -v"); err == nil {
		t.Error("expected error for missing URL")
	}
}
