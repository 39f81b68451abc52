// Package selection implements the menu-cli flow: pick up to N menu items,
// confirm, and report the unique processed ingredients they require.
package selection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/papapumpkin/menukit/internal/catalog"
	"github.com/papapumpkin/menukit/internal/prompt"
)

// Sentinel errors for the selection flow.
var (
	// ErrNoItems indicates the loaded catalog has no items to choose from.
	ErrNoItems = errors.New("no menu items available")
	// ErrTooManySelected indicates the chooser returned more than Max items.
	ErrTooManySelected = errors.New("too many items selected")
)

// Source is the outcome of resolving the catalog for a run.
type Source struct {
	Catalog *catalog.Catalog
	Path    string
	// Sample is true when the built-in menu replaced the default data file;
	// Reason holds the load error that triggered the fallback.
	Sample bool
	Reason error
}

// LoadCatalog loads the catalog at path. An explicit path must load; the
// default path silently falls back to the built-in sample on any error.
func LoadCatalog(path string, explicit bool) (Source, error) {
	c, err := catalog.Load(path)
	if err == nil {
		return Source{Catalog: c, Path: path}, nil
	}
	if explicit {
		return Source{}, fmt.Errorf("failed to load data from %q: %w", path, err)
	}
	return Source{Catalog: catalog.Sample(), Path: path, Sample: true, Reason: err}, nil
}

// Flow holds the collaborators for one selection run.
type Flow struct {
	Prompter prompt.Prompter
	Out      io.Writer
	Max      int
}

// Run prompts for items from c, confirms, and prints the report to Out.
// A declined confirmation prints a notice and returns nil; cancellation
// returns prompt.ErrCanceled.
func (f *Flow) Run(ctx context.Context, c *catalog.Catalog) error {
	if c == nil || c.Len() == 0 {
		return ErrNoItems
	}

	picked, err := f.Prompter.MultiSelect(ctx, prompt.MultiSelectRequest{
		Message: fmt.Sprintf("Select up to %d menu items", f.Max),
		Hint:    "Type to search • ↑/↓ to navigate • Space to toggle • Enter to confirm",
		Choices: c.Names(),
		Max:     f.Max,
	})
	if err != nil {
		return err
	}
	if len(picked) > f.Max {
		return fmt.Errorf("please select at most %d items: %w", f.Max, ErrTooManySelected)
	}

	selected := make([]*catalog.MenuItem, 0, len(picked))
	names := make([]string, 0, len(picked))
	for _, i := range picked {
		selected = append(selected, c.Items[i])
		names = append(names, c.Items[i].Name)
	}

	message := "No items selected. Proceed?"
	if len(names) > 0 {
		message = fmt.Sprintf("Confirm %d item(s): %s?", len(names), strings.Join(names, ", "))
	}
	proceed, err := f.Prompter.Confirm(ctx, message, true)
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Fprintln(f.Out, "Selection cancelled.")
		return nil
	}

	Report(f.Out, catalog.UniqueSorted(catalog.Flatten(selected)))
	return nil
}

// Report prints the ingredient list as a bulleted block, or "(none)".
func Report(w io.Writer, ingredients []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Unique processed ingredients:")
	if len(ingredients) == 0 {
		fmt.Fprintln(w, "(none)")
	}
	for _, ing := range ingredients {
		fmt.Fprintf(w, "- %s\n", ing)
	}
	fmt.Fprintln(w)
}
