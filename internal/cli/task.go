package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtoledo/credtrack/internal/app"
	"github.com/mtoledo/credtrack/internal/domain"
)

// taskFlags collects the optional task field flags shared by add and
// update. Each flag maps to one TaskPatch field; only flags the user
// actually passed end up in the patch.
type taskFlags struct {
	name        string
	backlogURL  string
	sprintStart string
	sprintEnd   string
	priority    string
	status      string
	hours       float64
	estimate    float64
}

// register adds the field flags to cmd.
func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "task name")
	cmd.Flags().StringVar(&f.backlogURL, "url", "", "backlog URL")
	cmd.Flags().StringVar(&f.sprintStart, "sprint-start", "", "sprint start date")
	cmd.Flags().StringVar(&f.sprintEnd, "sprint-end", "", "sprint end date")
	cmd.Flags().StringVar(&f.priority, "priority", "", "priority (Low, Normal, High, Critical)")
	cmd.Flags().StringVar(&f.status, "status", "", "status (On Hold, To Do, In Progress, ...)")
	cmd.Flags().Float64Var(&f.hours, "hours", 0, "logged hours")
	cmd.Flags().Float64Var(&f.estimate, "estimate", 0, "estimated hours")
}

// patch builds a TaskPatch from the flags the user changed.
// Priority and status typos are rejected here as a convenience; the
// domain itself would accept them.
func (f *taskFlags) patch(cmd *cobra.Command) (domain.TaskPatch, error) {
	var p domain.TaskPatch
	flags := cmd.Flags()
	if flags.Changed("name") {
		p.Name = &f.name
	}
	if flags.Changed("url") {
		p.BacklogURL = &f.backlogURL
	}
	if flags.Changed("sprint-start") {
		p.SprintStart = &f.sprintStart
	}
	if flags.Changed("sprint-end") {
		p.SprintEnd = &f.sprintEnd
	}
	if flags.Changed("priority") {
		prio, ok := domain.ParsePriority(f.priority)
		if !ok {
			return p, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, f.priority)
		}
		p.Priority = &prio
	}
	if flags.Changed("status") {
		status, ok := domain.ParseStatus(f.status)
		if !ok {
			return p, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, f.status)
		}
		p.Status = &status
	}
	if flags.Changed("hours") {
		p.Hours = &f.hours
	}
	if flags.Changed("estimate") {
		p.Estimate = &f.estimate
	}
	return p, nil
}

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Short:   "Manage tasks",
		GroupID: groupStructure,
	}

	addFlags := &taskFlags{}
	add := &cobra.Command{
		Use:   "add <list-id>",
		Short: "Append a new task to a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := addFlags.patch(cmd)
			if err != nil {
				return err
			}
			id := c.Store.AddTask(args[0])
			if !patch.IsZero() {
				c.Store.UpdateTask(args[0], id, patch)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	addFlags.register(add)

	updateFlags := &taskFlags{}
	update := &cobra.Command{
		Use:   "update <list-id> <task-id>",
		Short: "Update fields of an existing task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := updateFlags.patch(cmd)
			if err != nil {
				return err
			}
			c.Store.UpdateTask(args[0], args[1], patch)
			return nil
		},
	}
	updateFlags.register(update)

	cmd.AddCommand(add, update)
	return cmd
}
