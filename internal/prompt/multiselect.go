package prompt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// multiSelectModel is a searchable checklist. Typing filters the list, space
// toggles the highlighted row, and enter submits.
type multiSelectModel struct {
	req      MultiSelectRequest
	keys     KeyMap
	list     choiceList
	selected map[int]bool
	notice   string
	done     bool
	canceled bool
}

func newMultiSelectModel(req MultiSelectRequest) multiSelectModel {
	return multiSelectModel{
		req:      req,
		keys:     DefaultKeyMap(),
		list:     newChoiceList(req.Choices),
		selected: make(map[int]bool),
	}
}

// Init implements tea.Model.
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notice = ""

	switch {
	case key.Matches(km, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Submit):
		m.done = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Up):
		m.list.MoveUp()
	case key.Matches(km, m.keys.Down):
		m.list.MoveDown()
	case key.Matches(km, m.keys.Toggle):
		m.toggle()
	case key.Matches(km, m.keys.Erase):
		m.list.Erase()
	case km.Type == tea.KeyRunes:
		m.list.Type(string(km.Runes))
	}
	return m, nil
}

// toggle flips the highlighted choice, refusing to exceed req.Max.
func (m *multiSelectModel) toggle() {
	idx := m.list.Current()
	if idx < 0 {
		return
	}
	if m.selected[idx] {
		delete(m.selected, idx)
		return
	}
	if m.req.Max > 0 && len(m.selected) >= m.req.Max {
		m.notice = fmt.Sprintf("You can select at most %d.", m.req.Max)
		return
	}
	m.selected[idx] = true
}

// Result returns the selected indexes in ascending order.
func (m multiSelectModel) Result() []int {
	out := make([]int, 0, len(m.selected))
	for idx := range m.selected {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out
}

// View implements tea.Model.
func (m multiSelectModel) View() string {
	if m.canceled {
		return ""
	}
	if m.done {
		labels := make([]string, 0, len(m.selected))
		for _, idx := range m.Result() {
			labels = append(labels, m.req.Choices[idx])
		}
		return answered(m.req.Message, strings.Join(labels, ", "))
	}

	var b strings.Builder
	b.WriteString(header(m.req.Message))
	if m.req.Hint != "" {
		b.WriteString(" " + styleHint.Render(m.req.Hint))
	}
	b.WriteString("\n")
	m.list.render(&b, func(idx int) string {
		if m.selected[idx] {
			return styleChecked.Render(iconChecked)
		}
		return styleHint.Render(iconUnchecked)
	})
	if m.req.Max > 0 {
		b.WriteString(styleHint.Render(fmt.Sprintf("  %d/%d selected", len(m.selected), m.req.Max)) + "\n")
	}
	if m.notice != "" {
		b.WriteString(styleNotice.Render("  "+m.notice) + "\n")
	}
	return b.String()
}
