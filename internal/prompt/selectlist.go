package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is a searchable single-choice list.
type selectModel struct {
	req      SelectRequest
	keys     KeyMap
	list     choiceList
	choice   int
	done     bool
	canceled bool
}

func newSelectModel(req SelectRequest) selectModel {
	m := selectModel{
		req:    req,
		keys:   DefaultKeyMap(),
		list:   newChoiceList(req.Choices),
		choice: -1,
	}
	if req.Initial > 0 && req.Initial < len(req.Choices) {
		m.list.Cursor = req.Initial
		m.list.scroll()
	}
	return m
}

// Init implements tea.Model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Submit):
		if idx := m.list.Current(); idx >= 0 {
			m.choice = idx
			m.done = true
			return m, tea.Quit
		}
	case key.Matches(km, m.keys.Up):
		m.list.MoveUp()
	case key.Matches(km, m.keys.Down):
		m.list.MoveDown()
	case key.Matches(km, m.keys.Erase):
		m.list.Erase()
	case km.Type == tea.KeyRunes:
		m.list.Type(string(km.Runes))
	}
	return m, nil
}

// View implements tea.Model.
func (m selectModel) View() string {
	if m.canceled {
		return ""
	}
	if m.done {
		return answered(m.req.Message, m.req.Choices[m.choice])
	}
	var b strings.Builder
	b.WriteString(header(m.req.Message) + " " + styleHint.Render("type to search • ↑/↓ navigate • enter select") + "\n")
	m.list.render(&b, nil)
	return b.String()
}
