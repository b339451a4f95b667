// Package tui implements the interactive single-page project board.
//
// The board is a pure rendering layer: it consumes the read-only
// projection from the store and maps key presses onto the store's
// mutation operations. It performs no budget calculation itself.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtoledo/credtrack/internal/domain"
	"github.com/mtoledo/credtrack/internal/store"
)

// rowKind discriminates the flattened board rows.
type rowKind int

const (
	rowList rowKind = iota
	rowTask
)

// row is one selectable line on the board.
type row struct {
	kind   rowKind
	listID string
	taskID string
}

// editTarget identifies which field the input prompt edits.
type editTarget int

const (
	editNone editTarget = iota
	editCredits
	editRate
	editListName
	editTaskName
	editHours
	editEstimate
)

// Model is the bubbletea model for the project board.
type Model struct {
	store   *store.Store
	keys    keyMap
	view    domain.Projection
	rows    []row
	cursor  int
	input   textinput.Model
	editing editTarget
	width   int
	height  int
}

// New creates a board model bound to the given store.
func New(st *store.Store) Model {
	input := textinput.New()
	input.CharLimit = 64
	m := Model{
		store: st,
		keys:  newKeyMap(),
		input: input,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads the projection and rebuilds the visible rows.
// Collapsed lists contribute only their header row.
func (m *Model) refresh() {
	m.view = m.store.Projection()
	m.rows = m.rows[:0]
	for _, l := range m.view.Lists {
		m.rows = append(m.rows, row{kind: rowList, listID: l.ID})
		if !l.IsExpanded {
			continue
		}
		for _, t := range l.Tasks {
			m.rows = append(m.rows, row{kind: rowTask, listID: l.ID, taskID: t.ID})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the row under the cursor, or nil when the board is
// empty.
func (m *Model) selected() *row {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// selectedTask resolves the task under the cursor in the current
// projection, or nil.
func (m *Model) selectedTask() *domain.Task {
	r := m.selected()
	if r == nil || r.kind != rowTask {
		return nil
	}
	for i := range m.view.Lists {
		if m.view.Lists[i].ID != r.listID {
			continue
		}
		return m.view.Lists[i].FindTask(r.taskID)
	}
	return nil
}

// selectedList resolves the list under the cursor (a task row selects
// its owning list), or nil.
func (m *Model) selectedList() *domain.TaskList {
	r := m.selected()
	if r == nil {
		return nil
	}
	return m.view.FindList(r.listID)
}
