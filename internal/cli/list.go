package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtoledo/credtrack/internal/app"
)

// newListCommand creates the list command group.
func newListCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Manage task lists",
		GroupID: groupStructure,
	}

	var name string
	add := &cobra.Command{
		Use:   "add",
		Short: "Append a new task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := c.Store.AddList()
			if name != "" {
				c.Store.RenameList(id, name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "name for the new list")

	rename := &cobra.Command{
		Use:   "rename <list-id> <name>",
		Short: "Rename a task list",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c.Store.RenameList(args[0], args[1])
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <list-id>",
		Short: "Collapse or expand a task list",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c.Store.ToggleList(args[0])
			return nil
		},
	}

	cmd.AddCommand(add, rename, toggle)
	return cmd
}
