// Package cli provides the command-line interface for credtrack.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mtoledo/credtrack/internal/app"
)

// Command group IDs.
const (
	groupBudget    = "budget"
	groupStructure = "structure"
	groupView      = "view"
)

// NewRootCommand creates the root command for credtrack.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "credtrack",
		Short: "Project budget tracking CLI",
		Long: `credtrack tracks a project budget of purchasable work credits against
an hourly rate and a set of task lists. Task costs and the project's
consumed/remaining totals are always derived from logged hours and the
current rate; they are recomputed on every read and never stored.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupBudget, Title: "Budget Commands:"},
		&cobra.Group{ID: groupStructure, Title: "List & Task Commands:"},
		&cobra.Group{ID: groupView, Title: "View Commands:"},
	)

	root.AddCommand(
		newCreditsCommand(c),
		newRateCommand(c),
		newListCommand(c),
		newTaskCommand(c),
		newShowCommand(c),
		newImportCommand(c),
		newBoardCommand(c),
	)

	return root
}
