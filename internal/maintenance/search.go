package maintenance

import (
	"context"
	"fmt"

	"github.com/papapumpkin/menukit/internal/catalog"
	"github.com/papapumpkin/menukit/internal/prompt"
)

// Search lets the user pick distinct processed ingredients and optionally
// shows which items use each of them.
func (m *Maintainer) Search(ctx context.Context) error {
	distinct := m.Catalog.DistinctProcessed()
	if len(distinct) == 0 {
		fmt.Fprintln(m.Out, "No processed ingredients found.")
		return nil
	}

	picked, err := m.Prompter.MultiSelect(ctx, prompt.MultiSelectRequest{
		Message: "Search/select processed ingredients",
		Hint:    "Type to search • ↑/↓ navigate • Space toggle • Enter confirm",
		Choices: distinct,
	})
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		fmt.Fprintln(m.Out, "(none selected)")
		return nil
	}

	fmt.Fprintln(m.Out)
	fmt.Fprintln(m.Out, "Selected processed ingredients:")
	for _, i := range picked {
		fmt.Fprintf(m.Out, "- %s\n", distinct[i])
	}

	showWhere, err := m.Prompter.Confirm(ctx, "Show which menu items contain these?", false)
	if err != nil {
		return err
	}
	if showWhere {
		fmt.Fprintln(m.Out)
		for _, i := range picked {
			items := m.Catalog.ItemsContaining(distinct[i])
			if len(items) == 0 {
				continue
			}
			fmt.Fprintf(m.Out, "%s:\n", distinct[i])
			for _, name := range items {
				fmt.Fprintf(m.Out, "  - %s\n", name)
			}
		}
	}
	fmt.Fprintln(m.Out)
	return nil
}

// List prints distinct processed ingredients matching query, one per line,
// or "(none)".
func (m *Maintainer) List(query string) {
	matches := catalog.FilterProcessed(m.Catalog.DistinctProcessed(), query)
	if len(matches) == 0 {
		fmt.Fprintln(m.Out, "(none)")
		return
	}
	for _, s := range matches {
		fmt.Fprintln(m.Out, s)
	}
}
