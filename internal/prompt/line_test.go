package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestLine(input string) (*Line, *bytes.Buffer) {
	var out bytes.Buffer
	return NewLine(strings.NewReader(input), &out), &out
}

func TestLine_MultiSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"comma separated", "3,1\n", []int{0, 2}},
		{"spaces and duplicates", "2 2  1\n", []int{0, 1}},
		{"blank is empty selection", "\n", []int{}},
		{"retry after invalid", "9\nx\n2\n", []int{1}},
		{"last line without newline", "1", []int{0}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, _ := newTestLine(tt.input)
			got, err := l.MultiSelect(context.Background(), MultiSelectRequest{
				Message: "Pick",
				Choices: []string{"soup", "tacos", "burger"},
			})
			if err != nil {
				t.Fatalf("MultiSelect: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MultiSelect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLine_MultiSelectDoesNotEnforceMax(t *testing.T) {
	t.Parallel()

	l, out := newTestLine("1,2,3\n")
	got, err := l.MultiSelect(context.Background(), MultiSelectRequest{
		Message: "Pick",
		Choices: []string{"a", "b", "c"},
		Max:     2,
	})
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %v, want all three indexes", got)
	}
	if !strings.Contains(out.String(), "up to 2") {
		t.Errorf("prompt does not advertise the cap:\n%s", out.String())
	}
}

func TestLine_EOFCancels(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l, _ := newTestLine("")

	if _, err := l.MultiSelect(ctx, MultiSelectRequest{Choices: []string{"a"}}); !errors.Is(err, ErrCanceled) {
		t.Errorf("MultiSelect on EOF = %v, want ErrCanceled", err)
	}
	if _, err := l.Select(ctx, SelectRequest{Choices: []string{"a"}}); !errors.Is(err, ErrCanceled) {
		t.Errorf("Select on EOF = %v, want ErrCanceled", err)
	}
	if _, err := l.Confirm(ctx, "ok?", true); !errors.Is(err, ErrCanceled) {
		t.Errorf("Confirm on EOF = %v, want ErrCanceled", err)
	}
	if _, err := l.Input(ctx, "name"); !errors.Is(err, ErrCanceled) {
		t.Errorf("Input on EOF = %v, want ErrCanceled", err)
	}
}

func TestLine_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l, _ := newTestLine("y\n")
	if _, err := l.Confirm(ctx, "ok?", true); !errors.Is(err, ErrCanceled) {
		t.Errorf("Confirm with canceled context = %v, want ErrCanceled", err)
	}
}

func TestLine_Select(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"number", "2\n", 1},
		{"blank takes initial", "\n", 0},
		{"retry after out of range", "0\n4\n3\n", 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, _ := newTestLine(tt.input)
			got, err := l.Select(context.Background(), SelectRequest{Choices: []string{"a", "b", "c"}})
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if got != tt.want {
				t.Errorf("Select = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLine_Confirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		initial bool
		want    bool
	}{
		{"blank default yes", "\n", true, true},
		{"blank default no", "\n", false, false},
		{"yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"retry after garbage", "maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, _ := newTestLine(tt.input)
			got, err := l.Confirm(context.Background(), "ok?", tt.initial)
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLine_InputRequiresText(t *testing.T) {
	t.Parallel()

	l, out := newTestLine("\n   \r\nspecial sauce\r\n")
	got, err := l.Input(context.Background(), "Ingredient")
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != "special sauce" {
		t.Errorf("Input = %q, want %q", got, "special sauce")
	}
	if strings.Count(out.String(), "Required") != 2 {
		t.Errorf("expected two Required notices, got:\n%s", out.String())
	}
}

func TestNew_NonTerminalUsesLine(t *testing.T) {
	t.Parallel()

	if _, ok := New(strings.NewReader(""), &bytes.Buffer{}).(*Line); !ok {
		t.Error("New with a non-file reader did not return a Line prompter")
	}
}
