package msgs

import (
	"time"

	"github.com/sadopc/reqdeck/internal/store"
)

// PanelFocus identifies the panel holding keyboard focus.
type PanelFocus int

const (
	FocusSidebar PanelFocus = iota
	FocusEditor
	FocusResponse
)

// FocusPanelMsg requests focus change to a specific panel.
type FocusPanelMsg struct {
	Panel PanelFocus
}

// RequestsLoadedMsg carries the stored request list.
type RequestsLoadedMsg struct {
	Requests []store.Request
	Err      error
}

// RequestSelectedMsg is emitted when a request is selected in the sidebar.
type RequestSelectedMsg struct {
	RequestID int64
}

// NewRequestMsg opens the new-request name prompt.
type NewRequestMsg struct{}

// CreateRequestMsg creates a request with the entered name.
type CreateRequestMsg struct {
	Name string
}

// SaveRequestMsg persists the editor form into the selected request.
type SaveRequestMsg struct{}

// SendRequestMsg triggers executing the selected request.
type SendRequestMsg struct{}

// RequestSentMsg is emitted when an execution completes.
type RequestSentMsg struct {
	RequestID   int64
	StatusCode  int
	Status      string
	Body        []byte
	ContentType string
	Duration    time.Duration
	Size        int64
	Err         error
}

// HistoryLoadedMsg carries the execution history of a request.
type HistoryLoadedMsg struct {
	RequestID int64
	Entries   []store.HistoryEntry
	Err       error
}

// HistorySelectedMsg is emitted when a history entry is selected.
type HistorySelectedMsg struct {
	Entry store.HistoryEntry
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification. Display time is derived from
// severity.
type ToastMsg struct {
	Text    string
	IsError bool
}

// CopyAsCurlMsg copies the selected request as a cURL command.
type CopyAsCurlMsg struct{}

// CopyBodyMsg copies the displayed response body to the clipboard.
type CopyBodyMsg struct{}
