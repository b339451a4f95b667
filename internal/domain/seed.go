package domain

// SeedProject returns the built-in project used when no snapshot
// exists or the persisted one cannot be parsed.
func SeedProject() Project {
	return Project{
		Name:       "DEVOTEAM Project",
		Credits:    10000,
		HourlyRate: 50,
		Lists: []TaskList{
			{
				ID:         "1",
				Name:       "January",
				IsExpanded: true,
				Tasks: []Task{
					{
						ID:         "101",
						Name:       "Project Setup",
						BacklogURL: "https://jira.com/task-1",
						Sprint:     Sprint{Start: "2025-01-01", End: "2025-01-15"},
						Priority:   PriorityHigh,
						Status:     StatusDone,
						Hours:      10,
						Estimate:   12,
						Spent:      500,
					},
				},
			},
		},
	}
}
