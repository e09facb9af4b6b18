package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reqdeck/internal/ui/msgs"
	"github.com/sadopc/reqdeck/internal/ui/theme"
)

// Prompt is a single-line text input overlay used to name new requests.
type Prompt struct {
	Visible bool
	title   string
	input   textinput.Model
	theme   theme.Theme
	styles  theme.Styles
}

// NewPrompt creates a new prompt overlay.
func NewPrompt(t theme.Theme, s theme.Styles) Prompt {
	ti := textinput.New()
	ti.Placeholder = "Request name..."
	ti.CharLimit = 128
	ti.Width = 40

	return Prompt{
		input:  ti,
		theme:  t,
		styles: s,
	}
}

// Open shows the prompt with the given title.
func (m *Prompt) Open(title string) tea.Cmd {
	m.Visible = true
	m.title = title
	m.input.SetValue("")
	m.input.Focus()
	return textinput.Blink
}

// Init implements tea.Model.
func (m Prompt) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.Visible = false
			m.input.Blur()
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			m.Visible = false
			m.input.Blur()
			if name == "" {
				return m, nil
			}
			return m, func() tea.Msg {
				return msgs.CreateRequestMsg{Name: name}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt box.
func (m Prompt) View() string {
	if !m.Visible {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Render(m.title)

	hint := m.styles.Hint.Render("enter to confirm · esc to cancel")

	content := title + "\n\n" + m.input.View() + "\n\n" + hint

	return lipgloss.NewStyle().
		Background(m.theme.Surface).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(content)
}
