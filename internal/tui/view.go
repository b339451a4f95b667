package tui

import (
	"fmt"
	"strings"

	"github.com/mtoledo/credtrack/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.view.Name))
	b.WriteString("\n")
	b.WriteString(dashStyle.Render(m.dashboardLine()))
	b.WriteString("\n\n")

	rowIdx := 0
	for _, l := range m.view.Lists {
		b.WriteString(m.renderListHeader(l, rowIdx == m.cursor))
		b.WriteString("\n")
		rowIdx++
		if !l.IsExpanded {
			continue
		}
		for _, t := range l.Tasks {
			b.WriteString(m.renderTask(t, rowIdx == m.cursor))
			b.WriteString("\n")
			rowIdx++
		}
	}

	b.WriteString("\n")
	if m.editing != editNone {
		b.WriteString(promptStyle.Render(m.input.View()))
	} else {
		b.WriteString(helpStyle.Render(m.helpLine()))
	}
	return b.String()
}

// dashboardLine renders the aggregate header: credits, rate, consumed
// and remaining, with a negative remaining highlighted.
func (m Model) dashboardLine() string {
	remaining := fmt.Sprintf("remaining %.2f", m.view.Remaining)
	if m.view.OverBudget() {
		remaining = overStyle.Render(remaining + " ⚠")
	}
	return fmt.Sprintf("credits %.2f · rate %.2f/h · consumed %.2f · %s",
		m.view.Credits, m.view.HourlyRate, m.view.Consumed, remaining)
}

func (m Model) renderListHeader(l domain.TaskList, selected bool) string {
	marker := "▾"
	if !l.IsExpanded {
		marker = "▸"
	}
	line := fmt.Sprintf("%s %s (%d)", marker, l.Name, len(l.Tasks))
	line = listHeadStyle.Render(line)
	if selected {
		line = cursorStyle.Render(line)
	}
	return line
}

func (m Model) renderTask(t domain.Task, selected bool) string {
	name := t.Name
	if name == "" {
		name = "(unnamed)"
	}
	line := fmt.Sprintf("   %-28s %-10s %-18s %6.1fh  spent %.2f",
		name, t.Priority, t.Status, t.Hours, t.Spent)
	if t.Status == domain.StatusOnHold {
		line = onHoldStyle.Render(line)
	}
	if selected {
		line = cursorStyle.Render(line)
	}
	return line
}

// helpLine summarizes the key bindings.
func (m Model) helpLine() string {
	bindings := []struct{ keys, desc string }{
		{"space", "fold"},
		{"A/a", "add list/task"},
		{"n", "rename"},
		{"s/p", "status/priority"},
		{"h/e", "hours/estimate"},
		{"c/r", "credits/rate"},
		{"q", "quit"},
	}
	parts := make([]string, len(bindings))
	for i, kb := range bindings {
		parts[i] = kb.keys + " " + kb.desc
	}
	return strings.Join(parts, " · ")
}
