package response

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/reqdeck/internal/store"
	"github.com/sadopc/reqdeck/internal/ui/msgs"
	"github.com/sadopc/reqdeck/internal/ui/theme"
)

// HistoryModel lists past executions of the selected request, newest
// first.
type HistoryModel struct {
	entries []store.HistoryEntry
	cursor  int
	width   int
	height  int
	th      theme.Theme
	styles  theme.Styles
}

// NewHistoryModel creates a new history list.
func NewHistoryModel(t theme.Theme, s theme.Styles) HistoryModel {
	return HistoryModel{th: t, styles: s}
}

// SetEntries replaces the displayed history.
func (m *HistoryModel) SetEntries(entries []store.HistoryEntry) {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = 0
	}
}

// SetSize updates the list dimensions.
func (m *HistoryModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.entries) {
				entry := m.entries[m.cursor]
				return m, func() tea.Msg {
					return msgs.HistorySelectedMsg{Entry: entry}
				}
			}
		}
	}
	return m, nil
}

func (m HistoryModel) View() string {
	if len(m.entries) == 0 {
		return m.styles.Muted.Render("No history yet")
	}

	visible := m.height
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor in view.
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	var lines []string
	for i := start; i < len(m.entries) && i < start+visible; i++ {
		lines = append(lines, m.renderEntry(m.entries[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m HistoryModel) renderEntry(e store.HistoryEntry, isCursor bool) string {
	code := m.styles.Normal.Foreground(m.th.StatusColor(e.StatusCode)).
		Bold(true).
		Render(fmt.Sprintf("%3d", e.StatusCode))
	method := m.styles.MethodStyle(e.Method).Render(e.Method)
	when := m.styles.Muted.Render(e.CreatedAt.Local().Format("Jan 02 15:04:05"))
	dur := m.styles.Muted.Render(fmt.Sprintf("%dms", e.Duration.Milliseconds()))

	line := fmt.Sprintf(" %s %s %s %s", code, method, when, dur)
	if isCursor {
		return m.styles.Cursor.Width(m.width).Render(line)
	}
	return line
}
