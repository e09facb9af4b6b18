package export

import (
	"fmt"
	"strings"

	"github.com/sadopc/reqdeck/internal/protocol"
)

// AsCurl converts a request to a curl command string.
func AsCurl(req *protocol.Request) string {
	var parts []string
	parts = append(parts, "curl")

	if req.Method != "GET" {
		parts = append(parts, "-X", req.Method)
	}

	for k, v := range req.Headers {
		parts = append(parts, "-H", fmt.Sprintf("'%s: %s'", k, v))
	}

	if len(req.Body) > 0 {
		body := strings.ReplaceAll(string(req.Body), "'", "'\\''")
		parts = append(parts, "-d", fmt.Sprintf("'%s'", body))
	}

	parts = append(parts, fmt.Sprintf("'%s'", req.URL))

	return strings.Join(parts, " ")
}
