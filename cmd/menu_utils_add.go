package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/menukit/internal/maintenance"
)

func newAddProcessedCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "add-processed <ingredient...>",
		Short: "Add a processed ingredient to a menu item, ensuring global uniqueness unless --force",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, _ := cmd.Flags().GetString("item")
			createItem, _ := cmd.Flags().GetBool("create-item")
			force, _ := cmd.Flags().GetBool("force")
			return a.withMaintainer(func(m *maintenance.Maintainer) error {
				return m.AddProcessed(maintenance.AddOptions{
					Item:       item,
					Parts:      args,
					CreateItem: createItem,
					Force:      force,
				})
			})
		},
	}
	c.Flags().StringP("item", "i", "", "menu item name to modify (will be created with --create-item)")
	c.Flags().Bool("create-item", false, "create menu item if it does not exist")
	c.Flags().Bool("force", false, "allow adding if ingredient exists elsewhere")
	_ = c.MarkFlagRequired("item")
	return c
}
