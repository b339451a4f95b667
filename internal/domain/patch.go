package domain

// TaskPatch is a sparse field set merged into an existing task.
// Nil fields are left untouched. Spent is never patched directly: it
// is always recomputed from the post-merge hours and the project rate,
// which subsumes the "hours changed" special case.
type TaskPatch struct {
	Name        *string
	BacklogURL  *string
	SprintStart *string
	SprintEnd   *string
	Priority    *Priority
	Status      *Status
	Hours       *float64
	Estimate    *float64
}

// IsZero returns true if the patch carries no fields.
func (p TaskPatch) IsZero() bool {
	return p.Name == nil && p.BacklogURL == nil &&
		p.SprintStart == nil && p.SprintEnd == nil &&
		p.Priority == nil && p.Status == nil &&
		p.Hours == nil && p.Estimate == nil
}

// apply merges the patch into the task and recomputes spent using the
// given hourly rate.
func (p TaskPatch) apply(t *Task, hourlyRate float64) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.BacklogURL != nil {
		t.BacklogURL = *p.BacklogURL
	}
	if p.SprintStart != nil {
		t.Sprint.Start = *p.SprintStart
	}
	if p.SprintEnd != nil {
		t.Sprint.End = *p.SprintEnd
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Hours != nil {
		t.Hours = *p.Hours
	}
	if p.Estimate != nil {
		t.Estimate = *p.Estimate
	}
	t.Spent = t.Hours * hourlyRate
}
