package domain

// Projection is the read-only display view derived from a project.
// It is recomputed from canonical state on every read and never
// stored, so derived numbers cannot drift from their inputs.
type Projection struct {
	Name       string
	Credits    float64
	HourlyRate float64
	Consumed   float64
	Remaining  float64
	Lists      []TaskList
}

// Projected computes the display projection for a project.
//
// Every task's spent is recomputed as hours x the project's hourly
// rate, overriding whatever was last persisted. Consumed sums spent
// over all tasks not On Hold; remaining is credits minus consumed and
// may be negative.
func Projected(p Project) Projection {
	lists := make([]TaskList, len(p.Lists))
	consumed := 0.0
	for i, l := range p.Lists {
		cl := l.clone()
		for j := range cl.Tasks {
			t := &cl.Tasks[j]
			t.Spent = t.Hours * p.HourlyRate
			if t.Status.CountsTowardConsumed() {
				consumed += t.Spent
			}
		}
		lists[i] = cl
	}
	return Projection{
		Name:       p.Name,
		Credits:    p.Credits,
		HourlyRate: p.HourlyRate,
		Consumed:   consumed,
		Remaining:  p.Credits - consumed,
		Lists:      lists,
	}
}

// OverBudget reports whether the projection's remaining budget is
// negative. Display-only condition; nothing is blocked.
func (v Projection) OverBudget() bool {
	return v.Remaining < 0
}

// FindList returns a pointer to the projected list with the given id,
// or nil.
func (v *Projection) FindList(listID string) *TaskList {
	for i := range v.Lists {
		if v.Lists[i].ID == listID {
			return &v.Lists[i]
		}
	}
	return nil
}
