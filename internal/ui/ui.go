// Package ui prints status lines (errors, warnings, notices) to stderr,
// colored when the destination is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct {
	w     io.Writer
	color bool
}

// NewWithWriter returns a Printer writing to w. Callers decide color with
// ColorEnabled.
func NewWithWriter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// ColorEnabled reports whether ANSI color should be written to w.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetColor overrides color detection.
func (p *Printer) SetColor(on bool) {
	p.color = on
}

func (p *Printer) paint(codes, s string) string {
	if !p.color {
		return s
	}
	return codes + s + reset
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s%s\n", p.paint(red+bold, "error: "), msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, "%s%s\n", p.paint(yellow+bold, "warning: "), msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.paint(dim, msg))
}

// Fallback notes that the built-in sample menu replaced the default data file.
func (p *Printer) Fallback(path string, reason error) {
	fmt.Fprintf(p.w, "%s %s\n", p.paint(cyan, "◆ sample menu"), p.paint(dim, fmt.Sprintf("(%s unavailable: %v)", path, reason)))
}

// Settings prints key/value pairs aligned in a column.
func (p *Printer) Settings(title string, pairs [][2]string) {
	fmt.Fprintln(p.w, p.paint(dim, title+":"))
	width := 0
	for _, kv := range pairs {
		width = max(width, len(kv[0]))
	}
	for _, kv := range pairs {
		val := kv[1]
		if val == "" {
			val = "(default)"
		}
		fmt.Fprintf(p.w, "  %s%s  %s\n", kv[0]+":", strings.Repeat(" ", width-len(kv[0])), val)
	}
}
