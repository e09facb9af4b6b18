package response

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reqdeck/internal/protocol"
	"github.com/sadopc/reqdeck/internal/store"
	"github.com/sadopc/reqdeck/internal/ui/theme"
)

type subTab int

const (
	tabBody subTab = iota
	tabHistory
)

var subTabLabels = []string{"Body", "History"}

// Model is the response panel wrapping the body view and the execution
// history of the selected request.
type Model struct {
	body    BodyModel
	history HistoryModel
	spinner spinner.Model

	styles  theme.Styles
	th      theme.Theme
	active  subTab
	focused bool
	loading bool
	hasResp bool
	status  string
	code    int
	width   int
	height  int
}

// New creates a new response panel model.
func New(t theme.Theme, s theme.Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(t.Mauve)

	return Model{
		body:    NewBodyModel(s),
		history: NewHistoryModel(t, s),
		spinner: sp,
		styles:  s,
		th:      t,
	}
}

// SetResponse populates the body view from a dispatched response.
func (m *Model) SetResponse(resp *protocol.Response) {
	m.loading = false
	if resp == nil {
		m.hasResp = false
		return
	}
	m.hasResp = true
	m.code = resp.StatusCode
	m.status = resp.Status
	m.body.SetContent(resp.Body, resp.ContentType)
}

// ShowHistoryEntry loads a past execution's response into the body view.
func (m *Model) ShowHistoryEntry(e store.HistoryEntry) {
	m.hasResp = true
	m.code = e.StatusCode
	m.status = fmt.Sprintf("%d (recorded)", e.StatusCode)
	m.body.SetContent([]byte(e.ResponseBody), "application/json")
	m.active = tabBody
}

// SetHistory replaces the history list.
func (m *Model) SetHistory(entries []store.HistoryEntry) {
	m.history.SetEntries(entries)
}

// Body returns the raw bytes of the displayed body.
func (m Model) Body() []byte {
	return m.body.Raw()
}

// SetLoading puts the panel into loading state.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	// Reserve space: 1 for tab bar, 1 for status line, 2 for border
	innerW := w - 2
	innerH := h - 4
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	m.body.SetSize(innerW, innerH)
	m.history.SetSize(innerW, innerH)
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "[", "]":
			m.active = (m.active + 1) % subTab(len(subTabLabels))
			return m, nil
		}
		var cmd tea.Cmd
		if m.active == tabBody {
			m.body, cmd = m.body.Update(msg)
		} else {
			m.history, cmd = m.history.Update(msg)
		}
		return m, cmd

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

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

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Sending...")
		return border.Width(innerW).Height(innerH).Render(b.String())
	}

	if m.hasResp && m.active == tabBody {
		statusColor := m.th.StatusColor(m.code)
		b.WriteString(lipgloss.NewStyle().Foreground(statusColor).Bold(true).Render(m.status))
		b.WriteString("\n")
	}

	if m.active == tabBody {
		b.WriteString(m.body.View())
	} else {
		b.WriteString(m.history.View())
	}

	return border.Width(innerW).Height(innerH).Render(b.String())
}

func (m Model) renderTabBar() string {
	var tabs []string
	for i, label := range subTabLabels {
		if subTab(i) == m.active {
			tabs = append(tabs, m.styles.Title.Render(label))
		} else {
			tabs = append(tabs, m.styles.Muted.Render(label))
		}
	}
	return strings.Join(tabs, "  ")
}
