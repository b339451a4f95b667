// Package domain contains core business entities and interfaces.
package domain

// Sprint is a pair of date strings delimiting a task's sprint window.
// Both values are stored verbatim; no format or ordering is enforced.
type Sprint struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Task is a single work item owned by one TaskList.
// Spent is derived (hours x project hourly rate); the persisted value
// is an echo of the last computation and is never trusted on read.
type Task struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	BacklogURL string   `json:"backlogUrl"`
	Sprint     Sprint   `json:"sprint"`
	Priority   Priority `json:"priority"`
	Status     Status   `json:"status"`
	Hours      float64  `json:"hours"`
	Estimate   float64  `json:"estimate"`
	Spent      float64  `json:"spent"`
}

// TaskList is an ordered, append-only collection of tasks.
type TaskList struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsExpanded bool   `json:"isExpanded"`
	Tasks      []Task `json:"tasks"`
}

// Project is the root aggregate: one budget, one rate, ordered lists.
type Project struct {
	Name       string     `json:"name"`
	Credits    float64    `json:"credits"`
	HourlyRate float64    `json:"hourlyRate"`
	Lists      []TaskList `json:"lists"`
}

// DefaultListName is the placeholder name given to newly added lists.
const DefaultListName = "New List"

// Clone returns a deep copy of the project.
// Mutation operations clone first so the input value is never aliased.
func (p Project) Clone() Project {
	out := p
	if p.Lists == nil {
		return out
	}
	out.Lists = make([]TaskList, len(p.Lists))
	for i, l := range p.Lists {
		out.Lists[i] = l.clone()
	}
	return out
}

func (l TaskList) clone() TaskList {
	out := l
	if l.Tasks == nil {
		return out
	}
	out.Tasks = make([]Task, len(l.Tasks))
	copy(out.Tasks, l.Tasks)
	return out
}

// FindList returns a pointer to the list with the given id, or nil.
// The pointer is into p's own backing array; callers operating on a
// clone may mutate through it safely.
func (p *Project) FindList(listID string) *TaskList {
	for i := range p.Lists {
		if p.Lists[i].ID == listID {
			return &p.Lists[i]
		}
	}
	return nil
}

// FindTask returns a pointer to the task with the given id, or nil.
func (l *TaskList) FindTask(taskID string) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].ID == taskID {
			return &l.Tasks[i]
		}
	}
	return nil
}
