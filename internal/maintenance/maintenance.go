// Package maintenance implements menu-utils: searching processed ingredients
// and adding new ones to menu items under global and per-item uniqueness
// rules, interactively or from scripted subcommands.
package maintenance

import (
	"context"
	"fmt"
	"io"

	"github.com/papapumpkin/menukit/internal/catalog"
	"github.com/papapumpkin/menukit/internal/journal"
	"github.com/papapumpkin/menukit/internal/prompt"
	"github.com/papapumpkin/menukit/internal/ui"
)

// Menu choices for the interactive entry point.
const (
	actionSearch = iota
	actionAdd
	actionExit
)

var menuChoices = []string{
	actionSearch: "Search/select processed ingredients",
	actionAdd:    "Add a processed ingredient to a menu item",
	actionExit:   "Exit",
}

// Maintainer owns the catalog for one menu-utils run. It is the only writer
// of Catalog and of the file at Path.
type Maintainer struct {
	Path     string
	Catalog  *catalog.Catalog
	Prompter prompt.Prompter
	Out      io.Writer
	Printer  *ui.Printer
	Journal  *journal.Journal
}

// Interactive shows the action menu and runs the chosen action once.
func (m *Maintainer) Interactive(ctx context.Context) error {
	choice, err := m.Prompter.Select(ctx, prompt.SelectRequest{
		Message: "What would you like to do?",
		Choices: menuChoices,
	})
	if err != nil {
		return err
	}
	switch choice {
	case actionSearch:
		return m.Search(ctx)
	case actionAdd:
		return m.AddInteractive(ctx)
	}
	return nil
}

// commit persists the catalog and journals the mutation. Journal failures
// are reported but do not fail the command.
func (m *Maintainer) commit(evt journal.Event) error {
	if err := catalog.Save(m.Path, m.Catalog); err != nil {
		return fmt.Errorf("saving %s: %w", m.Path, err)
	}
	evt.Kind = journal.KindProcessedAdded
	evt.Path = m.Path
	if err := m.Journal.Record(evt); err != nil && m.Printer != nil {
		m.Printer.Warn(err.Error())
	}
	return nil
}
