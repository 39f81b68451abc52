package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/menukit/internal/config"
	"github.com/papapumpkin/menukit/internal/selection"
)

func newMenuCLICmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "menu-cli",
		Short:         "Pick menu items and list the processed ingredients they need",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSelection(cmd)
		},
	}
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		return a.setup(root, map[string]string{
			"data":     "data",
			"max":      "max",
			"verbose":  "verbose",
			"no_color": "no-color",
		})
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	addCommonFlags(flags, "")
	flags.StringP("max", "m", strconv.Itoa(config.DefaultMax), "maximum number of items to select")
	return root
}

func (a *app) runSelection(cmd *cobra.Command) error {
	src, err := selection.LoadCatalog(a.cfg.DataPath, a.cfg.DataExplicit)
	if err != nil {
		return err
	}
	if a.cfg.Verbose {
		if src.Sample {
			a.printer.Fallback(src.Path, src.Reason)
		} else {
			a.printer.Info(fmt.Sprintf("loaded %d items from %s", src.Catalog.Len(), src.Path))
		}
	}

	flow := &selection.Flow{
		Prompter: a.prompter(),
		Out:      a.out,
		Max:      a.cfg.Max(),
	}
	return flow.Run(cmd.Context(), src.Catalog)
}
