package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reqdeck/internal/ui/theme"
)

// ToastLevel is the severity of a toast notification.
type ToastLevel int

const (
	// ToastInfo confirms a completed action.
	ToastInfo ToastLevel = iota
	// ToastWarn reports a degraded outcome, such as a response that
	// arrived but whose history record could not be written.
	ToastWarn
	// ToastError reports a failed action.
	ToastError
)

// duration returns how long a toast of this level stays visible. More
// severe messages linger longer.
func (l ToastLevel) duration() time.Duration {
	switch l {
	case ToastError:
		return 5 * time.Second
	case ToastWarn:
		return 4 * time.Second
	default:
		return 2 * time.Second
	}
}

func (l ToastLevel) icon() string {
	switch l {
	case ToastError:
		return "✗"
	case ToastWarn:
		return "!"
	default:
		return "✓"
	}
}

// toastDismissMsg dismisses the toast shown with the matching sequence
// number; stale timers from replaced toasts are ignored.
type toastDismissMsg struct {
	seq int
}

// Toast is an auto-dismiss notification shown in the top-right corner.
type Toast struct {
	Visible bool
	text    string
	level   ToastLevel
	seq     int
	theme   theme.Theme
	styles  theme.Styles
}

// NewToast creates a new toast component.
func NewToast(t theme.Theme, s theme.Styles) Toast {
	return Toast{theme: t, styles: s}
}

// Show displays a message and returns the Cmd that dismisses it.
// Showing a new toast replaces the current one and restarts the clock.
func (m *Toast) Show(level ToastLevel, text string) tea.Cmd {
	m.Visible = true
	m.level = level
	m.text = text
	m.seq++

	seq := m.seq
	return tea.Tick(level.duration(), func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// Init implements tea.Model.
func (m Toast) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if dismiss, ok := msg.(toastDismissMsg); ok && dismiss.seq == m.seq {
		m.Visible = false
		m.text = ""
	}
	return m, nil
}

// View renders the toast notification.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	var fg lipgloss.Color
	switch m.level {
	case ToastError:
		fg = m.theme.Red
	case ToastWarn:
		fg = m.theme.Peach
	default:
		fg = m.theme.Green
	}

	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(m.theme.Surface).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg)

	return style.Render(m.level.icon() + " " + m.text)
}
