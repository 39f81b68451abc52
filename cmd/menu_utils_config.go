package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// utilsSettings is the subset of the configuration menu-utils reads.
type utilsSettings struct {
	Data    string `toml:"data"`
	Journal string `toml:"journal,omitempty"`
	Verbose bool   `toml:"verbose"`
	NoColor bool   `toml:"no_color"`
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective menu-utils configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := toml.Marshal(utilsSettings{
				Data:    a.cfg.DataPath,
				Journal: a.cfg.Journal,
				Verbose: a.cfg.Verbose,
				NoColor: a.cfg.NoColor,
			})
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = a.out.Write(data)
			return err
		},
	}
}
