package curl

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sadopc/reqdeck/internal/runner"
	"github.com/sadopc/reqdeck/internal/store"
)

// Parse converts a curl command string into a storable request. Methods
// outside the supported set fold to GET; basic auth credentials become
// an Authorization header since that is how requests carry them.
func Parse(input string) (store.Request, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return store.Request{}, fmt.Errorf("empty input")
	}

	// Handle line continuations
	input = strings.ReplaceAll(input, "\\\r\n", " ")
	input = strings.ReplaceAll(input, "\\\n", " ")

	args := tokenize(input)
	if len(args) == 0 {
		return store.Request{}, fmt.Errorf("empty command")
	}
	if strings.ToLower(args[0]) == "curl" {
		args = args[1:]
	}

	method := "GET"
	headers := map[string]string{}
	var body, rawURL string

	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "-X" || arg == "--request":
			i++
			if i < len(args) {
				method = strings.ToUpper(args[i])
			}
		case arg == "-H" || arg == "--header":
			i++
			if i < len(args) {
				key, val := parseHeader(args[i])
				if key != "" {
					headers[key] = val
				}
			}
		case arg == "-d" || arg == "--data" || arg == "--data-raw" || arg == "--data-binary":
			i++
			if i < len(args) {
				body = args[i]
				if method == "GET" {
					method = "POST"
				}
			}
		case arg == "-u" || arg == "--user":
			i++
			if i < len(args) {
				cred := base64.StdEncoding.EncodeToString([]byte(args[i]))
				headers["Authorization"] = "Basic " + cred
			}
		case arg == "-A" || arg == "--user-agent":
			i++
			if i < len(args) {
				headers["User-Agent"] = args[i]
			}
		case arg == "--compressed" || arg == "-k" || arg == "--insecure" ||
			arg == "-v" || arg == "--verbose" || arg == "-s" || arg == "--silent" ||
			arg == "-S" || arg == "--show-error" || arg == "-L" || arg == "--location" ||
			arg == "-i" || arg == "--include" || arg == "-o" || arg == "--output":
			if arg == "-o" || arg == "--output" {
				i++ // skip the output filename
			}
		case !strings.HasPrefix(arg, "-"):
			// Positional argument = URL
			if rawURL == "" {
				rawURL = arg
			}
		}
		i++
	}

	if rawURL == "" {
		return store.Request{}, fmt.Errorf("no URL found in curl command")
	}

	m, _ := runner.ParseMethod(method)
	req := store.Request{
		Name:    requestName(m.String(), rawURL),
		URL:     rawURL,
		Method:  m.String(),
		Headers: runner.EncodeHeaders(headers),
	}
	if m.HasBody() {
		req.Body = body
	}
	return req, nil
}

// requestName derives a readable default name from the method and URL.
func requestName(method, rawURL string) string {
	name := rawURL
	name = strings.TrimPrefix(name, "https://")
	name = strings.TrimPrefix(name, "http://")
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	return method + " " + name
}

// tokenize splits a shell command into tokens, handling single and double quotes.
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inSingle := false
	inDouble := false
	escaped := false

	for _, r := range input {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}

		if r == '\\' && !inSingle {
			escaped = true
			continue
		}

		if r == '\'' && !inDouble {
			inSingle = !inSingle
			continue
		}

		if r == '"' && !inSingle {
			inDouble = !inDouble
			continue
		}

		if (r == ' ' || r == '\t' || r == '\n') && !inSingle && !inDouble {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			continue
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// parseHeader parses "Key: Value" into key and value.
func parseHeader(s string) (string, string) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return s, ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
