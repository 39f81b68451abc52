package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_NoColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"error", func(p *Printer) { p.Error("No menu items available.") }, "error: No menu items available.\n"},
		{"warn", func(p *Printer) { p.Warn("journal unavailable") }, "warning: journal unavailable\n"},
		{"info", func(p *Printer) { p.Info("loaded 10 items") }, "loaded 10 items\n"},
		{
			"fallback",
			func(p *Printer) { p.Fallback("./menu.json", errors.New("data file not found")) },
			"◆ sample menu (./menu.json unavailable: data file not found)\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.print(NewWithWriter(&buf, false))
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrinter_WithColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewWithWriter(&buf, true)
	p.Error("boom")

	out := buf.String()
	if !strings.Contains(out, red) || !strings.Contains(out, reset) {
		t.Errorf("colored output missing ANSI codes: %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("output missing message: %q", out)
	}

	buf.Reset()
	p.SetColor(false)
	p.Error("boom")
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("SetColor(false) still wrote ANSI codes: %q", buf.String())
	}
}

func TestPrinter_Settings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewWithWriter(&buf, false).Settings("config", [][2]string{
		{"data", "./menu.json"},
		{"max", "8"},
		{"journal", ""},
	})

	want := "config:\n" +
		"  data:     ./menu.json\n" +
		"  max:      8\n" +
		"  journal:  (default)\n"
	if buf.String() != want {
		t.Errorf("Settings output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestColorEnabled_NonFile(t *testing.T) {
	t.Parallel()

	if ColorEnabled(&bytes.Buffer{}) {
		t.Error("ColorEnabled on a buffer = true, want false")
	}
}
