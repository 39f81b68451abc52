package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/menukit/internal/catalog"
	"github.com/papapumpkin/menukit/internal/config"
	"github.com/papapumpkin/menukit/internal/journal"
	"github.com/papapumpkin/menukit/internal/maintenance"
)

func newMenuUtilsCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "menu-utils",
		Short:         "Search and maintain processed ingredients in the menu file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withMaintainer(func(m *maintenance.Maintainer) error {
				return m.Interactive(cmd.Context())
			})
		},
	}
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		return a.setup(root, map[string]string{
			"data":     "data",
			"journal":  "journal",
			"verbose":  "verbose",
			"no_color": "no-color",
		})
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	addCommonFlags(flags, config.DefaultDataPath)
	flags.String("journal", "", "append a JSONL record of every change to this file")

	root.AddCommand(
		newListProcessedCmd(a),
		newAddProcessedCmd(a),
		newConfigCmd(a),
	)
	return root
}

// withMaintainer loads the catalog (a missing file is an empty catalog),
// opens the journal when configured and runs fn.
func (a *app) withMaintainer(fn func(*maintenance.Maintainer) error) error {
	path := a.cfg.DataPath
	c, err := catalog.LoadOrEmpty(path)
	if err != nil {
		return fmt.Errorf("failed to load data from %q: %w", path, err)
	}
	if a.cfg.Verbose {
		a.printer.Info(fmt.Sprintf("loaded %d items from %s", c.Len(), path))
	}

	var j *journal.Journal
	if a.cfg.Journal != "" {
		j, err = journal.Open(a.cfg.Journal)
		if err != nil {
			a.printer.Warn(err.Error())
			j = nil
		}
	}
	defer func() {
		if err := j.Close(); err != nil {
			a.printer.Warn(err.Error())
		}
	}()

	return fn(&maintenance.Maintainer{
		Path:     path,
		Catalog:  c,
		Prompter: a.prompter(),
		Out:      a.out,
		Printer:  a.printer,
		Journal:  j,
	})
}
