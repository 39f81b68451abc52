package maintenance

import (
	"context"
	"fmt"
	"strings"

	"github.com/papapumpkin/menukit/internal/catalog"
	"github.com/papapumpkin/menukit/internal/journal"
	"github.com/papapumpkin/menukit/internal/prompt"
)

// createChoice is the synthetic first entry of the item picker.
const createChoice = "⟨Create new menu item⟩"

// AddOptions are the inputs of the scripted add-processed command.
type AddOptions struct {
	Item       string
	Parts      []string
	CreateItem bool
	Force      bool
}

// AddProcessed appends an ingredient to a named item. The ingredient is the
// parts joined with single spaces. A global duplicate fails unless Force is
// set; a duplicate within the item is a no-op.
func (m *Maintainer) AddProcessed(opts AddOptions) error {
	ingredient := strings.TrimSpace(strings.Join(opts.Parts, " "))
	if ingredient == "" {
		return catalog.ErrEmptyIngredient
	}

	if !opts.Force && m.Catalog.HasProcessed(ingredient) {
		conflict := &catalog.ConflictError{
			Ingredient: ingredient,
			Items:      m.Catalog.ItemsContaining(ingredient),
		}
		return fmt.Errorf("%w. Use --force to bypass", conflict)
	}

	item := m.Catalog.Find(opts.Item)
	created := false
	if item == nil {
		if !opts.CreateItem {
			return fmt.Errorf("%w: %q. Use --create-item to create it", catalog.ErrItemNotFound, opts.Item)
		}
		item, created = m.Catalog.Ensure(opts.Item)
	}

	if item.HasProcessed(ingredient) {
		fmt.Fprintf(m.Out, "Ingredient already present in %q: %q. No changes made.\n", item.Name, ingredient)
		return nil
	}

	item.Append(ingredient)
	if err := m.commit(journal.Event{
		Item:        item.Name,
		Ingredient:  ingredient,
		CreatedItem: created,
		Forced:      opts.Force,
	}); err != nil {
		return err
	}
	fmt.Fprintf(m.Out, "Added processed ingredient to %q: %q\n", item.Name, ingredient)
	return nil
}

// AddInteractive walks the user through picking (or creating) an item and
// entering an ingredient. A global duplicate needs explicit confirmation.
func (m *Maintainer) AddInteractive(ctx context.Context) error {
	names := m.Catalog.ItemNames()
	choice, err := m.Prompter.Select(ctx, prompt.SelectRequest{
		Message: "Select a menu item (or choose to create)",
		Choices: append([]string{createChoice}, names...),
	})
	if err != nil {
		return err
	}

	var (
		item    *catalog.MenuItem
		created bool
	)
	if choice == 0 {
		name, err := m.Prompter.Input(ctx, "Enter new menu item name")
		if err != nil {
			return err
		}
		item, created = m.Catalog.Ensure(strings.TrimSpace(name))
	} else if choice > 0 && choice <= len(names) {
		item = m.Catalog.Find(names[choice-1])
	}
	if item == nil {
		fmt.Fprintln(m.Out, "No item selected.")
		return nil
	}

	text, err := m.Prompter.Input(ctx, fmt.Sprintf("Add processed ingredient to %q", item.Name))
	if err != nil {
		return err
	}
	ingredient := strings.TrimSpace(text)
	if ingredient == "" {
		fmt.Fprintln(m.Out, "Nothing to add.")
		return nil
	}

	forced := false
	if m.Catalog.HasProcessed(ingredient) {
		ok, err := m.Prompter.Confirm(ctx, "This processed ingredient already exists elsewhere. Add to this item anyway?", false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(m.Out, "No changes made.")
			return nil
		}
		forced = true
	}

	if item.HasProcessed(ingredient) {
		fmt.Fprintln(m.Out, "Already present in this item. No changes made.")
		return nil
	}

	item.Append(ingredient)
	if err := m.commit(journal.Event{
		Item:        item.Name,
		Ingredient:  ingredient,
		CreatedItem: created,
		Forced:      forced,
	}); err != nil {
		return err
	}
	fmt.Fprintf(m.Out, "Added %q to %q.\n", ingredient, item.Name)
	return nil
}
