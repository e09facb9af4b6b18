package app

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reqdeck/internal/api"
	"github.com/sadopc/reqdeck/internal/config"
	"github.com/sadopc/reqdeck/internal/export"
	"github.com/sadopc/reqdeck/internal/protocol"
	"github.com/sadopc/reqdeck/internal/runner"
	"github.com/sadopc/reqdeck/internal/store"
	"github.com/sadopc/reqdeck/internal/ui/components"
	"github.com/sadopc/reqdeck/internal/ui/layout"
	"github.com/sadopc/reqdeck/internal/ui/msgs"
	"github.com/sadopc/reqdeck/internal/ui/panels/editor"
	"github.com/sadopc/reqdeck/internal/ui/panels/response"
	"github.com/sadopc/reqdeck/internal/ui/panels/sidebar"
	"github.com/sadopc/reqdeck/internal/ui/theme"
)

// App is the root Bubble Tea model.
type App struct {
	sidebar  sidebar.Model
	editor   editor.Model
	response response.Model

	statusBar components.StatusBar
	toast     components.Toast
	prompt    components.Prompt

	api    *api.API
	runner *runner.Runner

	requests []store.Request

	focus          msgs.PanelFocus
	sidebarVisible bool
	layout         layout.PanelLayout
	keys           KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model.
func New(a *api.API, r *runner.Runner, cfg config.Config) App {
	t := theme.ByName(cfg.Theme)
	s := theme.NewStyles(t)

	app := App{
		sidebar:  sidebar.New(t, s),
		editor:   editor.New(s),
		response: response.New(t, s),

		statusBar: components.NewStatusBar(t, s),
		toast:     components.NewToast(t, s),
		prompt:    components.NewPrompt(t, s),

		api:    a,
		runner: r,

		focus:          msgs.FocusSidebar,
		sidebarVisible: true,
		keys:           DefaultKeyMap(),

		theme:  t,
		styles: s,
	}
	app.updateFocus()
	return app
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadRequests(), a.response.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.Calculate(msg.Width, msg.Height, a.sidebarVisible)
		a.resizePanels()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		if a.prompt.Visible {
			var cmd tea.Cmd
			a.prompt, cmd = a.prompt.Update(msg)
			return a, cmd
		}

		if a.focus == msgs.FocusEditor && a.editor.Editing() {
			var cmd tea.Cmd
			a.editor, cmd = a.editor.Update(msg)
			return a, cmd
		}

		if cmd := a.handleGlobalKey(msg); cmd != nil {
			return a, cmd
		}
		return a.handlePanelKey(msg)

	case msgs.RequestsLoadedMsg:
		if msg.Err != nil {
			return a, a.toast.Show(components.ToastError, "Load failed: "+msg.Err.Error())
		}
		a.requests = msg.Requests
		a.sidebar.SetRequests(msg.Requests)
		return a, nil

	case msgs.RequestSelectedMsg:
		return a.handleRequestSelected(msg.RequestID)

	case msgs.NewRequestMsg:
		return a, a.prompt.Open("New Request")

	case msgs.CreateRequestMsg:
		return a.createRequest(msg.Name)

	case msgs.SaveRequestMsg:
		return a.saveRequest()

	case msgs.SendRequestMsg:
		return a.sendRequest()

	case msgs.RequestSentMsg:
		return a.handleRequestSent(msg)

	case msgs.HistoryLoadedMsg:
		if msg.Err == nil && msg.RequestID == a.editor.RequestID() {
			a.response.SetHistory(msg.Entries)
		}
		return a, nil

	case msgs.HistorySelectedMsg:
		a.response.ShowHistoryEntry(msg.Entry)
		a.statusBar.SetStatus(msg.Entry.StatusCode, msg.Entry.Duration,
			int64(len(msg.Entry.ResponseBody)), "")
		return a, nil

	case msgs.CopyAsCurlMsg:
		return a.copyAsCurl()

	case msgs.CopyBodyMsg:
		return a.copyBody()

	case msgs.StatusMsg:
		a.statusBar.SetMessage(msg.Text)
		if msg.Duration > 0 {
			return a, tea.Tick(msg.Duration, func(time.Time) tea.Msg {
				return msgs.StatusMsg{Text: ""}
			})
		}
		return a, nil

	case msgs.ToastMsg:
		level := components.ToastInfo
		if msg.IsError {
			level = components.ToastError
		}
		return a, a.toast.Show(level, msg.Text)

	case msgs.FocusPanelMsg:
		a.focus = msg.Panel
		a.updateFocus()
		return a, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	cmds = append(cmds, cmd)
	a.response, cmd = a.response.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.SendRequest):
		return func() tea.Msg { return msgs.SendRequestMsg{} }
	case key.Matches(msg, a.keys.NewRequest):
		return func() tea.Msg { return msgs.NewRequestMsg{} }
	case key.Matches(msg, a.keys.SaveRequest):
		return func() tea.Msg { return msgs.SaveRequestMsg{} }
	}
	return nil
}

func (a App) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.CycleFocus):
		a.cycleFocus(false)
		return a, nil
	case key.Matches(msg, a.keys.CycleFocusRev):
		a.cycleFocus(true)
		return a, nil
	case key.Matches(msg, a.keys.FocusSidebar):
		a.focus = msgs.FocusSidebar
		a.updateFocus()
		return a, nil
	case key.Matches(msg, a.keys.FocusEditor):
		a.focus = msgs.FocusEditor
		a.updateFocus()
		return a, nil
	case key.Matches(msg, a.keys.FocusResponse):
		a.focus = msgs.FocusResponse
		a.updateFocus()
		return a, nil
	case key.Matches(msg, a.keys.ToggleSidebar):
		a.sidebarVisible = !a.sidebarVisible
		a.layout = layout.Calculate(a.width, a.height, a.sidebarVisible)
		a.resizePanels()
		return a, nil
	case key.Matches(msg, a.keys.CopyAsCurl):
		if a.focus == msgs.FocusEditor {
			return a, func() tea.Msg { return msgs.CopyAsCurlMsg{} }
		}
	case key.Matches(msg, a.keys.CopyBody):
		if a.focus == msgs.FocusResponse {
			return a, func() tea.Msg { return msgs.CopyBodyMsg{} }
		}
	}

	var cmd tea.Cmd
	switch a.focus {
	case msgs.FocusSidebar:
		a.sidebar, cmd = a.sidebar.Update(msg)
	case msgs.FocusEditor:
		a.editor, cmd = a.editor.Update(msg)
	case msgs.FocusResponse:
		a.response, cmd = a.response.Update(msg)
	}
	return a, cmd
}

func (a *App) cycleFocus(reverse bool) {
	panels := []msgs.PanelFocus{msgs.FocusSidebar, msgs.FocusEditor, msgs.FocusResponse}
	if !a.sidebarVisible {
		panels = []msgs.PanelFocus{msgs.FocusEditor, msgs.FocusResponse}
	}

	idx := 0
	for i, p := range panels {
		if p == a.focus {
			idx = i
			break
		}
	}
	if reverse {
		idx = (idx - 1 + len(panels)) % len(panels)
	} else {
		idx = (idx + 1) % len(panels)
	}

	a.focus = panels[idx]
	a.updateFocus()
}

func (a *App) updateFocus() {
	a.sidebar.SetFocused(a.focus == msgs.FocusSidebar)
	a.editor.SetFocused(a.focus == msgs.FocusEditor)
	a.response.SetFocused(a.focus == msgs.FocusResponse)
}

func (a *App) resizePanels() {
	l := a.layout
	a.sidebar.SetSize(l.SidebarWidth, l.ContentHeight)
	a.editor.SetSize(l.EditorWidth, l.ContentHeight)
	a.response.SetSize(l.ResponseWidth, l.ContentHeight)
	a.statusBar.SetWidth(a.width)
	a.updateFocus()
}

func (a App) loadRequests() tea.Cmd {
	apiRef := a.api
	return func() tea.Msg {
		requests, err := apiRef.Requests()
		return msgs.RequestsLoadedMsg{Requests: requests, Err: err}
	}
}

func (a App) loadHistory(requestID int64) tea.Cmd {
	apiRef := a.api
	return func() tea.Msg {
		entries, err := apiRef.RequestHistory(requestID)
		return msgs.HistoryLoadedMsg{RequestID: requestID, Entries: entries, Err: err}
	}
}

func (a App) handleRequestSelected(id int64) (tea.Model, tea.Cmd) {
	for _, req := range a.requests {
		if req.ID == id {
			a.editor.LoadRequest(req)
			a.response.SetResponse(nil)
			a.focus = msgs.FocusEditor
			a.updateFocus()
			return a, a.loadHistory(id)
		}
	}
	return a, nil
}

func (a App) createRequest(name string) (tea.Model, tea.Cmd) {
	_, confirmation, err := a.api.AddRequest(name)
	if err != nil {
		return a, a.toast.Show(components.ToastError, err.Error())
	}
	return a, tea.Batch(
		a.loadRequests(),
		a.toast.Show(components.ToastInfo, confirmation),
	)
}

func (a App) saveRequest() (tea.Model, tea.Cmd) {
	id := a.editor.RequestID()
	if id == 0 {
		a.statusBar.SetMessage("No request selected")
		return a, nil
	}

	confirmation, err := a.api.UpdateRequest(id, a.editor.Fields())
	if err != nil {
		return a, a.toast.Show(components.ToastError, "Save failed: "+err.Error())
	}
	return a, tea.Batch(
		a.loadRequests(),
		a.toast.Show(components.ToastInfo, confirmation),
	)
}

func (a App) sendRequest() (tea.Model, tea.Cmd) {
	id := a.editor.RequestID()
	if id == 0 {
		a.statusBar.SetMessage("No request selected")
		return a, nil
	}

	// Persist pending edits so the dispatch uses what is on screen.
	if a.editor.Dirty() {
		if _, err := a.api.UpdateRequest(id, a.editor.Fields()); err != nil {
			return a, a.toast.Show(components.ToastError, "Save failed: "+err.Error())
		}
	}

	a.response.SetLoading(true)

	r := a.runner
	cmd := func() tea.Msg {
		result, err := r.Run(context.Background(), id)
		sent := msgs.RequestSentMsg{RequestID: id, Err: err}
		if result != nil {
			sent.StatusCode = result.StatusCode
			sent.Status = result.Status
			sent.Body = result.Body
			sent.ContentType = result.ContentType
			sent.Duration = result.Duration
			sent.Size = result.Size
		}
		return sent
	}

	return a, tea.Batch(cmd, a.response.Init())
}

func (a App) handleRequestSent(msg msgs.RequestSentMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg.Err != nil {
		a.response.SetLoading(false)
		var recordErr *runner.RecordError
		if errors.As(msg.Err, &recordErr) {
			// The response arrived; only its history record is missing.
			cmds = append(cmds, a.toast.Show(components.ToastWarn,
				"Response shown but not recorded: "+recordErr.Err.Error()))
		} else {
			a.statusBar.SetMessage("Error: " + msg.Err.Error())
			cmds = append(cmds, a.toast.Show(components.ToastError,
				"Request failed: "+msg.Err.Error()))
		}
	}

	// A RecordError still carries the response; show whatever arrived.
	if msg.StatusCode > 0 {
		a.response.SetResponse(&protocol.Response{
			StatusCode:  msg.StatusCode,
			Status:      msg.Status,
			Body:        msg.Body,
			ContentType: msg.ContentType,
			Duration:    msg.Duration,
			Size:        msg.Size,
		})
		a.statusBar.SetStatus(msg.StatusCode, msg.Duration, msg.Size, msg.ContentType)
	}

	cmds = append(cmds, a.loadHistory(msg.RequestID), a.loadRequests())
	return a, tea.Batch(cmds...)
}

func (a App) copyAsCurl() (tea.Model, tea.Cmd) {
	fields := a.editor.Fields()
	if fields.URL == "" {
		return a, a.toast.Show(components.ToastWarn, "No URL to copy")
	}

	// Export exactly what Run would send, stored headers included.
	req := runner.Prepare(fields)

	if err := clipboard.WriteAll(export.AsCurl(req)); err != nil {
		return a, a.toast.Show(components.ToastError, "Clipboard error: "+err.Error())
	}
	return a, a.toast.Show(components.ToastInfo, "Copied as cURL")
}

func (a App) copyBody() (tea.Model, tea.Cmd) {
	body := a.response.Body()
	if len(body) == 0 {
		return a, a.toast.Show(components.ToastWarn, "No response body")
	}
	if err := clipboard.WriteAll(string(body)); err != nil {
		return a, a.toast.Show(components.ToastError, "Clipboard error: "+err.Error())
	}
	return a, a.toast.Show(components.ToastInfo, "Response body copied")
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var panels string
	if a.layout.SinglePanel {
		switch a.focus {
		case msgs.FocusSidebar:
			panels = a.sidebar.View()
		case msgs.FocusEditor:
			panels = a.editor.View()
		case msgs.FocusResponse:
			panels = a.response.View()
		}
	} else {
		var panelViews []string
		if a.layout.SidebarVisible {
			panelViews = append(panelViews, a.sidebar.View())
		}
		panelViews = append(panelViews, a.editor.View(), a.response.View())
		panels = lipgloss.JoinHorizontal(lipgloss.Top, panelViews...)
	}

	main := lipgloss.JoinVertical(lipgloss.Left, panels, a.statusBar.View())

	if a.prompt.Visible {
		main = overlayCenter(a.prompt.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func overlayCenter(overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#1e1e2e")),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	overlayWidth := lipgloss.Width(overlay)
	gap := width - overlayWidth - 2
	if gap < 0 {
		gap = 0
	}
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
