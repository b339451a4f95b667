package domain

// Mutation operations. Each takes the current project value and
// returns the next one; the input is never modified. Operations
// referencing an unknown list or task id return an equivalent copy of
// the input (silent no-op).

// SetCredits replaces the project's credit budget.
// No floor is enforced; negative budgets are accepted.
func SetCredits(p Project, credits float64) Project {
	next := p.Clone()
	next.Credits = credits
	return next
}

// SetHourlyRate replaces the project's hourly rate. Derived spent
// values pick up the new rate on the next projection.
func SetHourlyRate(p Project, rate float64) Project {
	next := p.Clone()
	next.HourlyRate = rate
	return next
}

// ToggleList flips the expanded flag of the given list.
func ToggleList(p Project, listID string) Project {
	next := p.Clone()
	if l := next.FindList(listID); l != nil {
		l.IsExpanded = !l.IsExpanded
	}
	return next
}

// AddList appends a new empty list with the given id and defaults.
func AddList(p Project, id string) Project {
	next := p.Clone()
	next.Lists = append(next.Lists, TaskList{
		ID:         id,
		Name:       DefaultListName,
		IsExpanded: true,
		Tasks:      []Task{},
	})
	return next
}

// RenameList replaces the name of the given list.
func RenameList(p Project, listID, name string) Project {
	next := p.Clone()
	if l := next.FindList(listID); l != nil {
		l.Name = name
	}
	return next
}

// AddTask appends a new task with the given id and field defaults to
// the given list.
func AddTask(p Project, listID, taskID string) Project {
	next := p.Clone()
	if l := next.FindList(listID); l != nil {
		l.Tasks = append(l.Tasks, Task{
			ID:       taskID,
			Priority: PriorityNormal,
			Status:   StatusTodo,
		})
	}
	return next
}

// UpdateTask merges the patch into the given task. Spent is recomputed
// from the post-merge hours and the project's current rate.
func UpdateTask(p Project, listID, taskID string, patch TaskPatch) Project {
	next := p.Clone()
	l := next.FindList(listID)
	if l == nil {
		return next
	}
	if t := l.FindTask(taskID); t != nil {
		patch.apply(t, next.HourlyRate)
	}
	return next
}
