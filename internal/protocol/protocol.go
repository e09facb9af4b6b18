package protocol

import (
	"context"
	"net/http"
	"time"
)

// Dispatcher performs a single outbound call.
type Dispatcher interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
	Validate(req *Request) error
}

// Request describes one outbound HTTP call.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte

	// Timeout overrides the client default when non-zero.
	Timeout time.Duration
}

// Response is the outcome of a dispatched call.
type Response struct {
	StatusCode  int
	Status      string
	Headers     http.Header
	Body        []byte
	ContentType string
	Duration    time.Duration
	Size        int64
}
