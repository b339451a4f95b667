package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mtoledo/credtrack/internal/app"
	"github.com/mtoledo/credtrack/internal/domain"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	listStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	overStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	onHoldStyle    = lipgloss.NewStyle().Faint(true)
	collapsedStyle = lipgloss.NewStyle().Faint(true)
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   "Print the project dashboard and task lists",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), RenderProjection(c.Store.Projection()))
			return nil
		},
	}
}

// RenderProjection renders the read-only projection as text: the
// dashboard header followed by one table per list. All numbers come
// straight from the projection; nothing is computed here.
func RenderProjection(v domain.Projection) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Credits: %.2f    Rate: %.2f/h\n", v.Credits, v.HourlyRate)
	remaining := fmt.Sprintf("%.2f", v.Remaining)
	if v.OverBudget() {
		remaining = overStyle.Render(remaining + " (over budget)")
	}
	fmt.Fprintf(&b, "Consumed: %.2f    Remaining: %s\n", v.Consumed, remaining)

	for _, l := range v.Lists {
		b.WriteString("\n")
		header := fmt.Sprintf("%s (%d tasks)", l.Name, len(l.Tasks))
		if !l.IsExpanded {
			b.WriteString(collapsedStyle.Render(header + " [collapsed]"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(listStyle.Render(header))
		b.WriteString("\n")
		if len(l.Tasks) == 0 {
			b.WriteString("  (no tasks)\n")
			continue
		}
		fmt.Fprintf(&b, "  %-10s %-24s %-10s %-18s %8s %9s %10s\n",
			"ID", "NAME", "PRIORITY", "STATUS", "HOURS", "ESTIMATE", "SPENT")
		for _, task := range l.Tasks {
			row := fmt.Sprintf("  %-10s %-24s %-10s %-18s %8.2f %9.2f %10.2f",
				shortID(task.ID), truncate(task.Name, 24), task.Priority, task.Status,
				task.Hours, task.Estimate, task.Spent)
			if task.Status == domain.StatusOnHold {
				row = onHoldStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// shortID abbreviates UUIDs for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
