package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtoledo/credtrack/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateBrowsing handles keys in the normal browse mode.
func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if r := m.selected(); r != nil && r.kind == rowList {
			m.store.ToggleList(r.listID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.AddList):
		m.store.AddList()
		m.refresh()

	case key.Matches(msg, m.keys.AddTask):
		if l := m.selectedList(); l != nil {
			m.store.AddTask(l.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Status):
		if t := m.selectedTask(); t != nil {
			next := nextStatus(t.Status)
			m.patchSelected(domain.TaskPatch{Status: &next})
		}

	case key.Matches(msg, m.keys.Priority):
		if t := m.selectedTask(); t != nil {
			next := nextPriority(t.Priority)
			m.patchSelected(domain.TaskPatch{Priority: &next})
		}

	case key.Matches(msg, m.keys.Credits):
		return m.startEditing(editCredits, "credits", fmt.Sprintf("%g", m.view.Credits))

	case key.Matches(msg, m.keys.Rate):
		return m.startEditing(editRate, "hourly rate", fmt.Sprintf("%g", m.view.HourlyRate))

	case key.Matches(msg, m.keys.Hours):
		if t := m.selectedTask(); t != nil {
			return m.startEditing(editHours, "hours", fmt.Sprintf("%g", t.Hours))
		}

	case key.Matches(msg, m.keys.Estimate):
		if t := m.selectedTask(); t != nil {
			return m.startEditing(editEstimate, "estimate", fmt.Sprintf("%g", t.Estimate))
		}

	case key.Matches(msg, m.keys.Rename):
		if r := m.selected(); r != nil {
			if r.kind == rowList {
				if l := m.selectedList(); l != nil {
					return m.startEditing(editListName, "list name", l.Name)
				}
			} else if t := m.selectedTask(); t != nil {
				return m.startEditing(editTaskName, "task name", t.Name)
			}
		}
	}
	return m, nil
}

// startEditing opens the input prompt for the given target.
func (m Model) startEditing(target editTarget, prompt, initial string) (tea.Model, tea.Cmd) {
	m.editing = target
	m.input.Prompt = prompt + ": "
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// updateEditing handles keys while the input prompt is open.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.editing = editNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.commitEdit()
		m.editing = editNone
		m.input.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// commitEdit applies the input value through the matching store
// operation. Unparseable numbers are dropped silently; the canonical
// state is left untouched.
func (m *Model) commitEdit() {
	value := m.input.Value()
	switch m.editing {
	case editCredits:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			m.store.SetCredits(v)
		}
	case editRate:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			m.store.SetHourlyRate(v)
		}
	case editListName:
		if r := m.selected(); r != nil {
			m.store.RenameList(r.listID, value)
		}
	case editTaskName:
		if r := m.selected(); r != nil && r.kind == rowTask {
			m.store.UpdateTask(r.listID, r.taskID, domain.TaskPatch{Name: &value})
		}
	case editHours:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			m.patchSelected(domain.TaskPatch{Hours: &v})
			return
		}
	case editEstimate:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			m.patchSelected(domain.TaskPatch{Estimate: &v})
			return
		}
	case editNone:
	}
	m.refresh()
}

// patchSelected applies a patch to the task under the cursor.
func (m *Model) patchSelected(patch domain.TaskPatch) {
	if r := m.selected(); r != nil && r.kind == rowTask {
		m.store.UpdateTask(r.listID, r.taskID, patch)
		m.refresh()
	}
}

// nextStatus cycles through the status enumeration. Unknown values
// restart at the first status.
func nextStatus(s domain.Status) domain.Status {
	all := domain.AllStatuses()
	for i, v := range all {
		if v == s {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// nextPriority cycles through the priority enumeration.
func nextPriority(p domain.Priority) domain.Priority {
	all := domain.AllPriorities()
	for i, v := range all {
		if v == p {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
