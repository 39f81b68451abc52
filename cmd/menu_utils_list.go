package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/menukit/internal/maintenance"
)

func newListProcessedCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:     "list-processed",
		Aliases: []string{"search"},
		Short:   "List distinct processed ingredients (optionally filter by query)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, _ := cmd.Flags().GetString("query")
			return a.withMaintainer(func(m *maintenance.Maintainer) error {
				m.List(query)
				return nil
			})
		},
	}
	c.Flags().StringP("query", "q", "", "filter processed ingredients by case-insensitive substring")
	return c
}
