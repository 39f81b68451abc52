package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Line reads answers one line at a time and writes prompts to out. It is
// used when input is piped rather than typed at a terminal. EOF on input
// cancels the pending prompt.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// Verify Line satisfies Prompter at compile time.
var _ Prompter = (*Line)(nil)

// NewLine creates a line-oriented prompter.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// readLine returns the next input line without its terminator.
func (l *Line) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrCanceled
	}
	line, err := l.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrCanceled
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *Line) listChoices(choices []string) {
	for i, c := range choices {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, c)
	}
}

// parseIndexes parses comma- or space-separated 1-based numbers into unique
// 0-based indexes, ascending.
func parseIndexes(s string, n int) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	seen := make(map[int]bool, len(fields))
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 || v > n {
			return nil, fmt.Errorf("invalid choice %q", f)
		}
		if !seen[v-1] {
			seen[v-1] = true
			out = append(out, v-1)
		}
	}
	slices.Sort(out)
	return out, nil
}

// MultiSelect implements Prompter. The cap in req.Max is advertised but not
// enforced; callers validate the result.
func (l *Line) MultiSelect(ctx context.Context, req MultiSelectRequest) ([]int, error) {
	fmt.Fprintf(l.out, "? %s\n", req.Message)
	l.listChoices(req.Choices)
	hint := "numbers separated by commas, blank for none"
	if req.Max > 0 {
		hint = fmt.Sprintf("up to %d; %s", req.Max, hint)
	}
	for {
		fmt.Fprintf(l.out, "(%s) > ", hint)
		line, err := l.readLine(ctx)
		if err != nil {
			return nil, err
		}
		idx, err := parseIndexes(line, len(req.Choices))
		if err != nil {
			fmt.Fprintln(l.out, err)
			continue
		}
		return idx, nil
	}
}

// Select implements Prompter. A blank answer picks req.Initial.
func (l *Line) Select(ctx context.Context, req SelectRequest) (int, error) {
	fmt.Fprintf(l.out, "? %s\n", req.Message)
	l.listChoices(req.Choices)
	for {
		fmt.Fprintf(l.out, "(1-%d, default %d) > ", len(req.Choices), req.Initial+1)
		line, err := l.readLine(ctx)
		if err != nil {
			return -1, err
		}
		line = strings.TrimSpace(line)
		if line == "" && req.Initial >= 0 && req.Initial < len(req.Choices) {
			return req.Initial, nil
		}
		v, convErr := strconv.Atoi(line)
		if convErr != nil || v < 1 || v > len(req.Choices) {
			fmt.Fprintf(l.out, "invalid choice %q\n", line)
			continue
		}
		return v - 1, nil
	}
}

// Confirm implements Prompter.
func (l *Line) Confirm(ctx context.Context, message string, initial bool) (bool, error) {
	choices := "(y/N)"
	if initial {
		choices = "(Y/n)"
	}
	for {
		fmt.Fprintf(l.out, "? %s %s ", message, choices)
		line, err := l.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return initial, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(l.out, "please answer y or n")
	}
}

// Input implements Prompter. Blank answers are rejected with "Required".
func (l *Line) Input(ctx context.Context, message string) (string, error) {
	for {
		fmt.Fprintf(l.out, "? %s ", message)
		line, err := l.readLine(ctx)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		fmt.Fprintln(l.out, "Required")
	}
}
