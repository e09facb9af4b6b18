package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/sadopc/reqdeck/internal/store"
	"github.com/sadopc/reqdeck/internal/ui/msgs"
	"github.com/sadopc/reqdeck/internal/ui/theme"
)

// Model is the sidebar panel listing stored requests, newest first.
type Model struct {
	requests []store.Request
	filtered []int // indices into requests that match the filter
	cursor   int   // index into filtered

	width   int
	height  int
	focused bool

	filtering   bool
	filterInput textinput.Model

	theme  theme.Theme
	styles theme.Styles
}

// New creates a new sidebar model.
func New(t theme.Theme, s theme.Styles) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 128

	return Model{
		theme:       t,
		styles:      s,
		filterInput: ti,
	}
}

// SetRequests replaces the displayed request list.
func (m *Model) SetRequests(requests []store.Request) {
	m.requests = requests
	m.applyFilter()
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

// SelectRequest moves the cursor to the request with the given id.
func (m *Model) SelectRequest(id int64) {
	for vi, idx := range m.filtered {
		if m.requests[idx].ID == id {
			m.cursor = vi
			return
		}
	}
}

// Selected returns the request under the cursor, or nil.
func (m Model) Selected() *store.Request {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return &m.requests[m.filtered[m.cursor]]
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.filtering {
		return m.updateFilter(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink
	}

	if len(m.filtered) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.filtered) - 1
	case "enter", "l":
		req := m.Selected()
		if req != nil {
			id := req.ID
			return m, func() tea.Msg {
				return msgs.RequestSelectedMsg{RequestID: id}
			}
		}
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filterInput.Blur()
			if msg.String() == "esc" {
				m.filterInput.SetValue("")
				m.applyFilter()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	return m, cmd
}

func (m *Model) applyFilter() {
	query := strings.TrimSpace(m.filterInput.Value())
	m.filtered = m.filtered[:0]

	if query == "" {
		for i := range m.requests {
			m.filtered = append(m.filtered, i)
		}
		return
	}

	names := make([]string, len(m.requests))
	for i, r := range m.requests {
		names[i] = r.Name
	}
	for _, match := range fuzzy.Find(query, names) {
		m.filtered = append(m.filtered, match.Index)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := m.width - 2
	if innerW < 1 {
		innerW = 1
	}
	innerH := m.height - 2
	if innerH < 1 {
		innerH = 1
	}

	var lines []string
	lines = append(lines, m.styles.Title.Render("Requests"))
	lines = append(lines, "")

	if len(m.filtered) == 0 {
		lines = append(lines, m.styles.Muted.Render("  No requests"))
	} else {
		for vi, idx := range m.filtered {
			lines = append(lines, m.renderItem(m.requests[idx], vi == m.cursor, innerW))
		}
	}

	content := strings.Join(lines, "\n")
	if m.filtering {
		content = fitHeight(content, innerH-1) + "\n" + m.filterInput.View()
	} else {
		content = fitHeight(content, innerH)
	}

	return border.
		Width(innerW).
		Height(innerH).
		Render(content)
}

func (m Model) renderItem(req store.Request, isCursor bool, maxWidth int) string {
	badge := m.styles.MethodStyle(req.Method).Render(padMethod(req.Method))
	name := req.Name
	if name == "" {
		name = "(unnamed)"
	}
	line := " " + badge + " " + name

	if isCursor {
		return m.styles.Cursor.Width(maxWidth).Render(truncate(line, maxWidth))
	}
	return line
}

// padMethod pads an HTTP method to 6 chars.
func padMethod(method string) string {
	if len(method) >= 6 {
		return method[:6]
	}
	return method + strings.Repeat(" ", 6-len(method))
}

// fitHeight truncates or pads content to the given height.
func fitHeight(content string, h int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
