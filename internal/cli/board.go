package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mtoledo/credtrack/internal/app"
	"github.com/mtoledo/credtrack/internal/tui"
)

// launchBoardFunc is a function variable for launching the TUI,
// allowing it to be mocked in tests.
var launchBoardFunc = launchBoard

// newBoardCommand creates the board command.
func newBoardCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "board",
		Short:   "Open the interactive project board",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchBoardFunc(c)
		},
	}
}

func launchBoard(c *app.Container) error {
	p := tea.NewProgram(tui.New(c.Store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
