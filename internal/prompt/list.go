package prompt

import (
	"strings"
	"unicode/utf8"
)

// pageSize is the number of choice rows visible at once.
const pageSize = 10

// choiceList is a type-to-filter, scrollable view over a fixed set of
// choices. Cursor and offset index into the filtered view, not Choices.
type choiceList struct {
	Choices []string
	Query   string
	Cursor  int
	Offset  int
	visible []int
}

func newChoiceList(choices []string) choiceList {
	l := choiceList{Choices: choices}
	l.refilter()
	return l
}

// refilter rebuilds the visible set from Query and resets the cursor.
func (l *choiceList) refilter() {
	q := strings.ToLower(l.Query)
	l.visible = l.visible[:0]
	for i, c := range l.Choices {
		if q == "" || strings.Contains(strings.ToLower(c), q) {
			l.visible = append(l.visible, i)
		}
	}
	l.Cursor = 0
	l.Offset = 0
}

// Type appends text to the filter query.
func (l *choiceList) Type(s string) {
	l.Query += s
	l.refilter()
}

// Erase removes the last rune of the filter query.
func (l *choiceList) Erase() {
	if l.Query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(l.Query)
	l.Query = l.Query[:len(l.Query)-size]
	l.refilter()
}

// MoveUp moves the cursor up, wrapping to the last row.
func (l *choiceList) MoveUp() {
	if len(l.visible) == 0 {
		return
	}
	l.Cursor--
	if l.Cursor < 0 {
		l.Cursor = len(l.visible) - 1
	}
	l.scroll()
}

// MoveDown moves the cursor down, wrapping to the first row.
func (l *choiceList) MoveDown() {
	if len(l.visible) == 0 {
		return
	}
	l.Cursor = (l.Cursor + 1) % len(l.visible)
	l.scroll()
}

// scroll keeps the cursor inside the visible page.
func (l *choiceList) scroll() {
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+pageSize {
		l.Offset = l.Cursor - pageSize + 1
	}
}

// Current returns the Choices index under the cursor, or -1 when the
// filter matches nothing.
func (l *choiceList) Current() int {
	if l.Cursor < 0 || l.Cursor >= len(l.visible) {
		return -1
	}
	return l.visible[l.Cursor]
}

// Visible returns the Choices indexes shown on the current page.
func (l *choiceList) Visible() []int {
	end := min(l.Offset+pageSize, len(l.visible))
	return l.visible[l.Offset:end]
}

// Matches returns the number of choices passing the filter.
func (l *choiceList) Matches() int {
	return len(l.visible)
}

// render draws the filter line and the current page. mark returns the
// prefix glyph for a choice.
func (l *choiceList) render(b *strings.Builder, mark func(idx int) string) {
	if l.Query != "" {
		b.WriteString(styleHint.Render("  filter: ") + l.Query + "\n")
	}
	if len(l.visible) == 0 {
		b.WriteString(styleHint.Render("  no matches") + "\n")
		return
	}
	current := l.Current()
	for _, idx := range l.Visible() {
		label := l.Choices[idx]
		prefix := "  "
		style := styleRowNormal
		if idx == current {
			prefix = styleRowSelected.Render(cursorIndicator) + " "
			style = styleRowSelected
		}
		if mark != nil {
			prefix += mark(idx) + " "
		}
		b.WriteString(prefix + style.Render(label) + "\n")
	}
	if hidden := len(l.visible) - len(l.Visible()); hidden > 0 {
		b.WriteString(styleHint.Render("  ↕ more") + "\n")
	}
}
