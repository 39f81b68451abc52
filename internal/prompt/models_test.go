package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
)

// press feeds keys to a model in order and returns the final model.
func press(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func TestMultiSelectModel_ToggleAndSubmit(t *testing.T) {
	t.Parallel()

	m := newMultiSelectModel(MultiSelectRequest{
		Message: "Select dishes",
		Choices: []string{"soup", "tacos", "burger"},
	})
	got := press(m, keyDown, keyDown, keySpace, keyUp, keyUp, keySpace, keyEnter).(multiSelectModel)

	if !got.done || got.canceled {
		t.Fatalf("done=%v canceled=%v, want done", got.done, got.canceled)
	}
	if diff := cmp.Diff([]int{0, 2}, got.Result()); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}
	if view := got.View(); !strings.Contains(view, "soup, burger") {
		t.Errorf("final view %q does not list the selection", view)
	}
}

func TestMultiSelectModel_ToggleTwiceDeselects(t *testing.T) {
	t.Parallel()

	m := newMultiSelectModel(MultiSelectRequest{Choices: []string{"soup", "tacos"}})
	got := press(m, keySpace, keySpace, keyEnter).(multiSelectModel)
	if len(got.Result()) != 0 {
		t.Errorf("Result = %v, want empty", got.Result())
	}
}

func TestMultiSelectModel_RefusesBeyondMax(t *testing.T) {
	t.Parallel()

	m := newMultiSelectModel(MultiSelectRequest{
		Choices: []string{"a", "b", "c"},
		Max:     2,
	})
	got := press(m, keySpace, keyDown, keySpace, keyDown, keySpace).(multiSelectModel)

	if len(got.selected) != 2 {
		t.Fatalf("selected %d choices, want 2", len(got.selected))
	}
	if got.selected[2] {
		t.Error("third choice was selected past Max")
	}
	if !strings.Contains(got.View(), "at most 2") {
		t.Errorf("view does not show the max notice:\n%s", got.View())
	}
}

func TestMultiSelectModel_Filter(t *testing.T) {
	t.Parallel()

	m := newMultiSelectModel(MultiSelectRequest{
		Choices: []string{"sliced onion", "sea salt", "chopped onion"},
	})
	got := press(m, runes("oni"), keyDown, keySpace, keyEnter).(multiSelectModel)

	if diff := cmp.Diff([]int{2}, got.Result()); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiSelectModel_FilterEraseRestoresChoices(t *testing.T) {
	t.Parallel()

	m := newMultiSelectModel(MultiSelectRequest{Choices: []string{"soup", "tacos"}})
	got := press(m, runes("zz")).(multiSelectModel)
	if got.list.Matches() != 0 {
		t.Fatalf("Matches() = %d after filtering zz, want 0", got.list.Matches())
	}
	got = press(got, keySpace, keyBack, keyBack).(multiSelectModel)
	if got.list.Matches() != 2 {
		t.Errorf("Matches() = %d after erasing, want 2", got.list.Matches())
	}
	if len(got.selected) != 0 {
		t.Errorf("toggle with no matches selected %v", got.selected)
	}
}

func TestMultiSelectModel_Cancel(t *testing.T) {
	t.Parallel()

	m := newMultiSelectModel(MultiSelectRequest{Choices: []string{"soup"}})
	got := press(m, keySpace, keyEsc).(multiSelectModel)
	if !got.canceled {
		t.Error("esc did not cancel")
	}
	if got.View() != "" {
		t.Errorf("canceled view = %q, want empty", got.View())
	}
}

func TestChoiceList_ScrollsWithinPage(t *testing.T) {
	t.Parallel()

	choices := make([]string, 25)
	for i := range choices {
		choices[i] = strings.Repeat("x", i+1)
	}
	l := newChoiceList(choices)
	for i := 0; i < 12; i++ {
		l.MoveDown()
	}
	if l.Current() != 12 {
		t.Fatalf("Current() = %d, want 12", l.Current())
	}
	visible := l.Visible()
	if len(visible) != pageSize || visible[0] != 3 || visible[pageSize-1] != 12 {
		t.Errorf("Visible() = %v, want rows 3..12", visible)
	}

	l.MoveUp()
	l.MoveUp()
	l.MoveUp()
	l.MoveUp()
	if l.Offset != 3 {
		t.Errorf("Offset = %d after moving up inside the page, want 3", l.Offset)
	}

	top := newChoiceList(choices)
	top.MoveUp()
	if top.Current() != 24 {
		t.Errorf("MoveUp from top = %d, want wrap to 24", top.Current())
	}
}

func TestSelectModel(t *testing.T) {
	t.Parallel()

	choices := []string{"Search", "Add", "Exit"}

	tests := []struct {
		name     string
		initial  int
		keys     []tea.KeyMsg
		want     int
		canceled bool
	}{
		{"enter picks initial", 0, []tea.KeyMsg{keyEnter}, 0, false},
		{"initial cursor honored", 2, []tea.KeyMsg{keyEnter}, 2, false},
		{"navigate", 0, []tea.KeyMsg{keyDown, keyEnter}, 1, false},
		{"filter then pick", 0, []tea.KeyMsg{runes("ex"), keyEnter}, 2, false},
		{"enter with no match is ignored", 0, []tea.KeyMsg{runes("zz"), keyEnter, keyBack, keyBack, keyEnter}, 0, false},
		{"cancel", 0, []tea.KeyMsg{keyEsc}, -1, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newSelectModel(SelectRequest{Message: "What?", Choices: choices, Initial: tt.initial})
			got := press(m, tt.keys...).(selectModel)
			if got.canceled != tt.canceled {
				t.Fatalf("canceled = %v, want %v", got.canceled, tt.canceled)
			}
			if got.choice != tt.want {
				t.Errorf("choice = %d, want %d", got.choice, tt.want)
			}
		})
	}
}

func TestConfirmModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		initial  bool
		key      tea.KeyMsg
		want     bool
		canceled bool
	}{
		{"enter default yes", true, keyEnter, true, false},
		{"enter default no", false, keyEnter, false, false},
		{"y", false, runes("y"), true, false},
		{"N", true, runes("N"), false, false},
		{"esc", true, keyEsc, false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := press(newConfirmModel("Proceed?", tt.initial), tt.key).(confirmModel)
			if got.canceled != tt.canceled {
				t.Fatalf("canceled = %v, want %v", got.canceled, tt.canceled)
			}
			if !tt.canceled && (!got.done || got.answer != tt.want) {
				t.Errorf("done=%v answer=%v, want answer %v", got.done, got.answer, tt.want)
			}
		})
	}
}

func TestConfirmModel_ViewShowsDefault(t *testing.T) {
	t.Parallel()

	if v := newConfirmModel("Proceed?", true).View(); !strings.Contains(v, "(Y/n)") {
		t.Errorf("view %q missing (Y/n)", v)
	}
	if v := newConfirmModel("Proceed?", false).View(); !strings.Contains(v, "(y/N)") {
		t.Errorf("view %q missing (y/N)", v)
	}
}

func TestInputModel_RequiresText(t *testing.T) {
	t.Parallel()

	m := newInputModel("Ingredient")
	got := press(m, runes("  "), keyEnter).(inputModel)
	if got.done {
		t.Fatal("blank input was accepted")
	}
	if !strings.Contains(got.View(), "Required") {
		t.Errorf("view does not show Required notice:\n%s", got.View())
	}

	got = press(got, runes("truffle oil"), keyEnter).(inputModel)
	if !got.done {
		t.Fatal("non-blank input was not accepted")
	}
	if strings.TrimSpace(got.Value()) != "truffle oil" {
		t.Errorf("Value() = %q, want %q", got.Value(), "  truffle oil")
	}
}

func TestInputModel_Cancel(t *testing.T) {
	t.Parallel()

	got := press(newInputModel("Name"), runes("x"), keyEsc).(inputModel)
	if !got.canceled {
		t.Error("esc did not cancel")
	}
}

func TestInputModel_AcceptsLongText(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("slow-roasted heirloom tomato ", 12)
	got := press(newInputModel("Ingredient"), runes(long), keyEnter).(inputModel)
	if !got.done {
		t.Fatal("long input was not accepted")
	}
	if got.Value() != long {
		t.Errorf("Value() has %d chars, want %d", len(got.Value()), len(long))
	}
}
