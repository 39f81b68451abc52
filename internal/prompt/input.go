package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel reads one line of required text.
type inputModel struct {
	message  string
	keys     KeyMap
	input    textinput.Model
	notice   string
	done     bool
	canceled bool
}

func newInputModel(message string) inputModel {
	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.Focus()
	return inputModel{message: message, keys: DefaultKeyMap(), input: ti}
}

// Init implements tea.Model.
func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(km, m.keys.Submit):
			if strings.TrimSpace(m.input.Value()) == "" {
				m.notice = "Required"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
		m.notice = ""
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the entered text.
func (m inputModel) Value() string {
	return m.input.Value()
}

// View implements tea.Model.
func (m inputModel) View() string {
	if m.canceled {
		return ""
	}
	if m.done {
		return answered(m.message, m.input.Value())
	}
	s := header(m.message) + "\n" + m.input.View() + "\n"
	if m.notice != "" {
		s += styleNotice.Render("  "+m.notice) + "\n"
	}
	return s
}
