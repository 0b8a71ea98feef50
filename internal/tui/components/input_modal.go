package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fxrdhan/bookshelf/internal/tui/styles"
)

// InputModal is a simple one-line text input modal, used for the PDF
// attach path prompt.
type InputModal struct {
	visible bool
	title   string
	input   textinput.Model
	theme   styles.Theme
}

// NewInputModal creates a new input modal
func NewInputModal(theme styles.Theme) InputModal {
	ti := textinput.New()
	ti.Placeholder = "/path/to/file.pdf"
	ti.CharLimit = 400
	ti.Width = 44
	ti.Prompt = ""

	return InputModal{input: ti, theme: theme}
}

// SetTheme swaps the color scheme
func (m *InputModal) SetTheme(theme styles.Theme) { m.theme = theme }

// Show displays the modal with a title
func (m *InputModal) Show(title string) {
	m.visible = true
	m.title = title
	m.input.SetValue("")
	m.input.Focus()
}

// Hide dismisses the modal
func (m *InputModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m InputModal) IsVisible() bool { return m.visible }

// Value returns the current input value
func (m InputModal) Value() string { return m.input.Value() }

// Update handles input events, returns (modal, cmd, submitted)
func (m InputModal) Update(msg tea.Msg) (InputModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, nil, true
		case "esc":
			m.Hide()
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, false
}

// View renders the input modal
func (m InputModal) View() string {
	if !m.visible {
		return ""
	}

	t := m.theme
	content := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(m.title),
		"",
		m.input.View(),
	)
	return t.ActiveBorder.Padding(1, 2).Render(content)
}
