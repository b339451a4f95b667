package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtoledo/credtrack/internal/app"
)

// newCreditsCommand creates the credits command group.
func newCreditsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credits",
		Short:   "Manage the project's credit budget",
		GroupID: groupBudget,
	}

	set := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the total credit budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			c.Store.SetCredits(amount)
			v := c.Store.Projection()
			fmt.Fprintf(cmd.OutOrStdout(), "credits set to %.2f (remaining %.2f)\n", v.Credits, v.Remaining)
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}

// newRateCommand creates the rate command group.
func newRateCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rate",
		Short:   "Manage the project's hourly rate",
		GroupID: groupBudget,
	}

	set := &cobra.Command{
		Use:   "set <rate>",
		Short: "Set the hourly rate applied to all tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", args[0], err)
			}
			c.Store.SetHourlyRate(rate)
			v := c.Store.Projection()
			fmt.Fprintf(cmd.OutOrStdout(), "hourly rate set to %.2f (consumed %.2f)\n", v.HourlyRate, v.Consumed)
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}
