package runner

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sadopc/reqdeck/internal/protocol"
	"github.com/sadopc/reqdeck/internal/store"
)

// DispatchError reports a failed outbound call. No history record exists
// for the attempt.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string { return "dispatching request: " + e.Err.Error() }
func (e *DispatchError) Unwrap() error { return e.Err }

// RecordError reports a failed history write after a successful call.
// The response was received; only its record is missing.
type RecordError struct {
	Err error
}

func (e *RecordError) Error() string { return "recording history: " + e.Err.Error() }
func (e *RecordError) Unwrap() error { return e.Err }

// Runner executes stored requests and records the outcome.
type Runner struct {
	store      *store.Store
	dispatcher protocol.Dispatcher
	timeout    time.Duration
}

// Result holds the outcome of one execution.
type Result struct {
	HistoryID   int64
	StatusCode  int
	Status      string
	Body        []byte
	ContentType string
	Duration    time.Duration
	Size        int64
}

// New creates a runner backed by the given store and dispatcher.
func New(st *store.Store, d protocol.Dispatcher, timeout time.Duration) *Runner {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Runner{store: st, dispatcher: d, timeout: timeout}
}

// SetTimeout overrides the per-request timeout.
func (r *Runner) SetTimeout(d time.Duration) {
	r.timeout = d
}

// Run loads the request with the given id, dispatches it, and appends a
// history record snapshotting what was actually sent.
//
// A transport failure returns a *DispatchError and writes no history
// row. When the call succeeds but the history write fails, the response
// is returned alongside a *RecordError so the caller can still use it.
func (r *Runner) Run(ctx context.Context, requestID int64) (*Result, error) {
	req, err := r.store.Request(requestID)
	if err != nil {
		return nil, err
	}

	out := Prepare(req)
	out.Timeout = r.timeout

	resp, err := r.dispatcher.Execute(ctx, out)
	if err != nil {
		return nil, &DispatchError{Err: err}
	}

	sentHeaders, _ := json.Marshal(out.Headers)
	result := &Result{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		Body:        resp.Body,
		ContentType: resp.ContentType,
		Duration:    resp.Duration,
		Size:        resp.Size,
	}

	historyID, err := r.store.AddHistory(store.HistoryEntry{
		RequestID:    requestID,
		URL:          out.URL,
		Method:       out.Method,
		Headers:      string(sentHeaders),
		RequestBody:  string(out.Body),
		StatusCode:   resp.StatusCode,
		Duration:     resp.Duration,
		ResponseBody: string(resp.Body),
	})
	if err != nil {
		return result, &RecordError{Err: err}
	}
	result.HistoryID = historyID

	return result, nil
}

// Prepare builds the outbound call for a stored request: the method
// folds onto the supported set, the body attaches only when the method
// carries one, and POST forces the JSON content type regardless of the
// stored header set. Run dispatches exactly what Prepare returns, so
// callers exporting a request go through it too.
func Prepare(req store.Request) *protocol.Request {
	method, _ := ParseMethod(req.Method)

	headers := DecodeHeaders(req.Headers)
	var body []byte
	if method.HasBody() && req.Body != "" {
		body = []byte(req.Body)
	}
	if method == MethodPost {
		headers["Content-Type"] = "application/json"
	}

	return &protocol.Request{
		Method:  method.String(),
		URL:     req.URL,
		Headers: headers,
		Body:    body,
	}
}

// DecodeHeaders parses a JSON-encoded header map. Empty or malformed
// input yields an empty map rather than an error; a stored request with
// unusable headers still dispatches.
func DecodeHeaders(s string) map[string]string {
	headers := map[string]string{}
	if s == "" {
		return headers
	}
	if err := json.Unmarshal([]byte(s), &headers); err != nil {
		return map[string]string{}
	}
	return headers
}

// EncodeHeaders serializes a header map for storage.
func EncodeHeaders(headers map[string]string) string {
	if len(headers) == 0 {
		return ""
	}
	data, err := json.Marshal(headers)
	if err != nil {
		return ""
	}
	return string(data)
}
