package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question; enter accepts the initial answer.
type confirmModel struct {
	message  string
	initial  bool
	keys     KeyMap
	answer   bool
	done     bool
	canceled bool
}

func newConfirmModel(message string, initial bool) confirmModel {
	return confirmModel{message: message, initial: initial, keys: DefaultKeyMap()}
}

// Init implements tea.Model.
func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Yes):
		m.answer, m.done = true, true
		return m, tea.Quit
	case key.Matches(km, m.keys.No):
		m.answer, m.done = false, true
		return m, tea.Quit
	case key.Matches(km, m.keys.Submit):
		m.answer, m.done = m.initial, true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m confirmModel) View() string {
	if m.canceled {
		return ""
	}
	if m.done {
		answer := "no"
		if m.answer {
			answer = "yes"
		}
		return answered(m.message, answer)
	}
	choices := "(y/N)"
	if m.initial {
		choices = "(Y/n)"
	}
	return header(m.message) + " " + styleHint.Render(choices) + "\n"
}
