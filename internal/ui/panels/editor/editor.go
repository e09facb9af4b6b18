package editor

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reqdeck/internal/store"
	"github.com/sadopc/reqdeck/internal/ui/theme"
)

var httpMethods = []string{"GET", "POST", "PUT", "DELETE"}

// subTab identifies the active sub-tab in the form.
type subTab int

const (
	tabHeaders subTab = iota
	tabBody
)

var subTabLabels = []string{"Headers", "Body"}

// Focus fields: method selector, name input, URL input, sub-tab content.
const (
	fieldMethod = iota
	fieldName
	fieldURL
	fieldContent
)

// Model is the request editor form.
type Model struct {
	requestID   int64
	method      string
	methodIndex int

	name textinput.Model
	url  textinput.Model

	activeTab subTab
	headers   textarea.Model
	body      textarea.Model

	focusField int
	dirty      bool

	width   int
	height  int
	focused bool
	styles  theme.Styles
}

// New creates a new editor model.
func New(s theme.Styles) Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "Name..."
	nameInput.CharLimit = 128
	nameInput.Width = 40

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = 2048
	urlInput.Width = 40

	headersArea := textarea.New()
	headersArea.Placeholder = "Header-Name: value"
	headersArea.ShowLineNumbers = false
	headersArea.SetWidth(40)
	headersArea.SetHeight(6)

	bodyArea := textarea.New()
	bodyArea.Placeholder = "Request body..."
	bodyArea.ShowLineNumbers = false
	bodyArea.CharLimit = 0
	bodyArea.SetWidth(40)
	bodyArea.SetHeight(6)

	return Model{
		method:    "GET",
		name:      nameInput,
		url:       urlInput,
		headers:   headersArea,
		body:      bodyArea,
		activeTab: tabHeaders,
		styles:    s,
		width:     60,
		height:    20,
	}
}

// LoadRequest populates the form from a stored request.
func (m *Model) LoadRequest(req store.Request) {
	m.requestID = req.ID
	m.method = req.Method
	m.methodIndex = methodIndex(req.Method)
	m.name.SetValue(req.Name)
	m.url.SetValue(req.URL)
	m.headers.SetValue(headersToLines(req.Headers))
	m.body.SetValue(req.Body)
	m.dirty = false
}

// RequestID returns the id of the loaded request, 0 when none.
func (m Model) RequestID() int64 {
	return m.requestID
}

// Dirty reports whether the form has unsaved edits.
func (m Model) Dirty() bool {
	return m.dirty
}

// Fields returns the form contents as storable request fields.
func (m Model) Fields() store.Request {
	return store.Request{
		ID:      m.requestID,
		Name:    strings.TrimSpace(m.name.Value()),
		URL:     strings.TrimSpace(m.url.Value()),
		Method:  m.method,
		Headers: linesToHeaders(m.headers.Value()),
		Body:    m.body.Value(),
	}
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	inputW := w - 14
	if inputW < 10 {
		inputW = 10
	}
	m.name.Width = inputW
	m.url.Width = inputW

	contentW := w - 4
	if contentW < 10 {
		contentW = 10
	}
	contentH := h - 9
	if contentH < 3 {
		contentH = 3
	}
	m.headers.SetWidth(contentW)
	m.headers.SetHeight(contentH)
	m.body.SetWidth(contentW)
	m.body.SetHeight(contentH)
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) {
	m.focused = f
	if !f {
		m.blurAll()
	}
}

// Editing returns whether a text field is in insert mode.
func (m Model) Editing() bool {
	return m.name.Focused() || m.url.Focused() || m.headers.Focused() || m.body.Focused()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Editing() {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.focusField < fieldContent {
			m.focusField++
		}
	case "k", "up":
		if m.focusField > fieldMethod {
			m.focusField--
		}
	case "h", "left":
		if m.focusField == fieldContent && m.activeTab > 0 {
			m.activeTab--
		}
	case "l", "right":
		if m.focusField == fieldContent && int(m.activeTab) < len(subTabLabels)-1 {
			m.activeTab++
		}
	case " ":
		if m.focusField == fieldMethod {
			m.cycleMethod()
		}
	case "i", "enter":
		return m.enterField()
	}
	return m, nil
}

func (m Model) enterField() (Model, tea.Cmd) {
	switch m.focusField {
	case fieldMethod:
		m.cycleMethod()
		return m, nil
	case fieldName:
		m.name.Focus()
		m.name.CursorEnd()
		return m, textinput.Blink
	case fieldURL:
		m.url.Focus()
		m.url.CursorEnd()
		return m, textinput.Blink
	default:
		if m.activeTab == tabHeaders {
			return m, m.headers.Focus()
		}
		return m, m.body.Focus()
	}
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.blurAll()
		return m, nil
	}

	m.dirty = true
	var cmd tea.Cmd
	switch {
	case m.name.Focused():
		m.name, cmd = m.name.Update(msg)
	case m.url.Focused():
		m.url, cmd = m.url.Update(msg)
	case m.headers.Focused():
		m.headers, cmd = m.headers.Update(msg)
	case m.body.Focused():
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleMethod() {
	m.methodIndex = (m.methodIndex + 1) % len(httpMethods)
	m.method = httpMethods[m.methodIndex]
	m.dirty = true
}

func (m *Model) blurAll() {
	m.name.Blur()
	m.url.Blur()
	m.headers.Blur()
	m.body.Blur()
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

	var b strings.Builder

	if m.requestID == 0 {
		b.WriteString(m.styles.Muted.Render("No request selected"))
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("ctrl+n creates a new request"))
		return border.Width(innerW).Height(innerH).Render(b.String())
	}

	badge := m.styles.MethodStyle(m.method).Render(m.method)
	if m.focusField == fieldMethod && m.focused {
		badge = m.styles.Cursor.Render(" " + m.method + " ")
	}

	b.WriteString(badge)
	if m.dirty {
		b.WriteString(m.styles.Muted.Render("  [+]"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderRow("Name", m.name.View(), m.focusField == fieldName))
	b.WriteString("\n")
	b.WriteString(m.renderRow("URL", m.url.View(), m.focusField == fieldURL))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	if m.activeTab == tabHeaders {
		b.WriteString(m.headers.View())
	} else {
		b.WriteString(m.body.View())
	}

	return border.Width(innerW).Height(innerH).Render(b.String())
}

func (m Model) renderRow(label, input string, active bool) string {
	style := m.styles.Muted
	if active && m.focused {
		style = m.styles.Title
	}
	return style.Render(padLabel(label)) + " " + input
}

func (m Model) renderTabBar() string {
	var tabs []string
	for i, label := range subTabLabels {
		if subTab(i) == m.activeTab {
			tabs = append(tabs, m.styles.Title.Render(label))
		} else {
			tabs = append(tabs, m.styles.Muted.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(tabs, "  "))
}

func padLabel(s string) string {
	const w = 6
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func methodIndex(method string) int {
	for i, m := range httpMethods {
		if m == method {
			return i
		}
	}
	return 0
}

// headersToLines renders a JSON-encoded header map as "Key: value" lines
// for editing.
func headersToLines(encoded string) string {
	if encoded == "" {
		return ""
	}
	headers := map[string]string{}
	if err := json.Unmarshal([]byte(encoded), &headers); err != nil {
		return ""
	}

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, k := range keys {
		lines = append(lines, k+": "+headers[k])
	}
	return strings.Join(lines, "\n")
}

// linesToHeaders parses "Key: value" lines back into the stored JSON
// encoding. Lines without a colon are skipped.
func linesToHeaders(text string) string {
	headers := map[string]string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		headers[key] = strings.TrimSpace(value)
	}
	if len(headers) == 0 {
		return ""
	}
	data, err := json.Marshal(headers)
	if err != nil {
		return ""
	}
	return string(data)
}
