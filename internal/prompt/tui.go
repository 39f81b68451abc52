package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI renders prompts as inline bubbletea programs.
type TUI struct {
	in  io.Reader
	out io.Writer
	// opts are appended to every program's options.
	opts []tea.ProgramOption
}

// Verify TUI satisfies Prompter at compile time.
var _ Prompter = (*TUI)(nil)

// NewTUI creates a prompter that reads keys from in and draws on out.
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// run executes one prompt model to completion and returns its final state.
func (t *TUI) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	}, t.opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		// SIGINT makes Run return ErrInterrupted; a canceled ctx kills it.
		if errors.Is(err, tea.ErrInterrupted) || (errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
			return nil, ErrCanceled
		}
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

// MultiSelect implements Prompter.
func (t *TUI) MultiSelect(ctx context.Context, req MultiSelectRequest) ([]int, error) {
	final, err := t.run(ctx, newMultiSelectModel(req))
	if err != nil {
		return nil, err
	}
	m := final.(multiSelectModel)
	if m.canceled {
		return nil, ErrCanceled
	}
	return m.Result(), nil
}

// Select implements Prompter.
func (t *TUI) Select(ctx context.Context, req SelectRequest) (int, error) {
	final, err := t.run(ctx, newSelectModel(req))
	if err != nil {
		return -1, err
	}
	m := final.(selectModel)
	if m.canceled || !m.done {
		return -1, ErrCanceled
	}
	return m.choice, nil
}

// Confirm implements Prompter.
func (t *TUI) Confirm(ctx context.Context, message string, initial bool) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(message, initial))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.canceled || !m.done {
		return false, ErrCanceled
	}
	return m.answer, nil
}

// Input implements Prompter.
func (t *TUI) Input(ctx context.Context, message string) (string, error) {
	final, err := t.run(ctx, newInputModel(message))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.canceled || !m.done {
		return "", ErrCanceled
	}
	return m.Value(), nil
}
