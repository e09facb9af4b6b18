package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/reqdeck/internal/ui/theme"
)

// StatusBar is a full-width bottom status bar showing the outcome of the
// last execution.
type StatusBar struct {
	statusCode  int
	duration    time.Duration
	size        int64
	contentType string
	message     string
	width       int
	theme       theme.Theme
	styles      theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{theme: t, styles: s}
}

// SetStatus sets the response status info.
func (m *StatusBar) SetStatus(code int, duration time.Duration, size int64, contentType string) {
	m.statusCode = code
	m.duration = duration
	m.size = size
	m.contentType = contentType
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	var parts []string

	if m.message != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(m.theme.Text).
			Background(m.theme.Surface).
			Render(m.message))
	} else {
		if m.statusCode > 0 {
			code := lipgloss.NewStyle().
				Foreground(m.theme.StatusColor(m.statusCode)).
				Background(m.theme.Surface).
				Bold(true).
				Render(fmt.Sprintf("%d", m.statusCode))
			parts = append(parts, code)
		}
		if m.duration > 0 {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(m.theme.Subtext).
				Background(m.theme.Surface).
				Render(formatDuration(m.duration)))
		}
		if m.size > 0 {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(m.theme.Subtext).
				Background(m.theme.Surface).
				Render(humanize.IBytes(uint64(m.size))))
		}
		if m.contentType != "" {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(m.theme.Muted).
				Background(m.theme.Surface).
				Render(m.contentType))
		}
	}

	left := " " + strings.Join(parts, " │ ")
	return barStyle.Render(left)
}

// formatDuration renders a duration with millisecond precision.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
