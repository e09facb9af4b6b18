package api

import (
	"context"
	"fmt"

	"github.com/sadopc/reqdeck/internal/runner"
	"github.com/sadopc/reqdeck/internal/store"
)

// API is the command surface exposed to the front-end. Each method is a
// single stateless request/response; errors come back as plain text for
// the front-end to display verbatim.
type API struct {
	store  *store.Store
	runner *runner.Runner
}

// New creates the command surface.
func New(st *store.Store, r *runner.Runner) *API {
	return &API{store: st, runner: r}
}

// AddRequest creates a new named request and returns its id alongside
// a confirmation.
func (a *API) AddRequest(name string) (int64, string, error) {
	id, err := a.store.CreateRequest(name)
	if err != nil {
		return 0, "", err
	}
	return id, fmt.Sprintf("Added request: %s", name), nil
}

// Requests returns all stored requests, newest first.
func (a *API) Requests() ([]store.Request, error) {
	return a.store.Requests()
}

// UpdateRequest overwrites the mutable fields of a stored request.
func (a *API) UpdateRequest(id int64, fields store.Request) (string, error) {
	if err := a.store.UpdateRequest(id, fields); err != nil {
		return "", err
	}
	return fmt.Sprintf("Updated request %d", id), nil
}

// MakeRequest executes a stored request and returns the raw response
// body text.
func (a *API) MakeRequest(ctx context.Context, id int64) (string, error) {
	result, err := a.runner.Run(ctx, id)
	if err != nil {
		return "", err
	}
	return string(result.Body), nil
}

// RequestHistory returns the execution history for a request, newest
// first. A never-run request yields an empty slice.
func (a *API) RequestHistory(id int64) ([]store.HistoryEntry, error) {
	return a.store.History(id)
}

// LatestHistory returns the most recent execution record, or nil when
// the request has never been run.
func (a *API) LatestHistory(id int64) (*store.HistoryEntry, error) {
	return a.store.LatestHistory(id)
}
