// Package prompt defines the interactive request/response contract used by
// the menu flows, with a bubbletea implementation for terminals and a
// line-oriented implementation for piped input.
package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrCanceled is returned when the user aborts a prompt (esc, ctrl+c, EOF).
// It is distinct from an empty selection.
var ErrCanceled = errors.New("prompt canceled")

// MultiSelectRequest describes a multi-choice prompt.
type MultiSelectRequest struct {
	Message string
	Hint    string
	Choices []string
	// Max caps the number of selected choices; zero means unlimited.
	Max int
}

// SelectRequest describes a single-choice prompt.
type SelectRequest struct {
	Message string
	Choices []string
	Initial int
}

// Prompter collects decisions from the user. Every method blocks until the
// user answers, returning ErrCanceled if they abort instead.
type Prompter interface {
	// MultiSelect returns the indexes of the chosen entries in req.Choices,
	// ascending. An empty, non-nil error result means nothing was picked.
	MultiSelect(ctx context.Context, req MultiSelectRequest) ([]int, error)
	// Select returns the index of the chosen entry in req.Choices.
	Select(ctx context.Context, req SelectRequest) (int, error)
	// Confirm asks a yes/no question; initial is the answer on a bare enter.
	Confirm(ctx context.Context, message string, initial bool) (bool, error)
	// Input reads a non-empty line of text.
	Input(ctx context.Context, message string) (string, error)
}

// New returns a TUI prompter when in is a terminal and a Line prompter
// otherwise. Prompts are rendered to out.
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewTUI(in, out)
	}
	return NewLine(in, out)
}
