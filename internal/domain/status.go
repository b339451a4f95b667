package domain

import "strings"

// Status represents the workflow state of a task.
// The string values are the display strings; they are stored verbatim.
type Status string

const (
	StatusOnHold          Status = "On Hold"
	StatusTodo            Status = "To Do"
	StatusInProgress      Status = "In Progress"
	StatusDone            Status = "Done"
	StatusToEstimate      Status = "To Estimate"
	StatusPendingApproval Status = "Pending Approval"
	StatusReadyToTest     Status = "Ready to Test"
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusOnHold,
		StatusTodo,
		StatusInProgress,
		StatusDone,
		StatusToEstimate,
		StatusPendingApproval,
		StatusReadyToTest,
	}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	for _, v := range AllStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// CountsTowardConsumed reports whether tasks in this status contribute
// to the project's consumed total. Only On Hold is excluded.
func (s Status) CountsTowardConsumed() bool {
	return s != StatusOnHold
}

// ParseStatus resolves a case-insensitive status string to its
// canonical value. Used by the CLI and importer for early typo
// detection; the domain itself accepts any string.
func ParseStatus(s string) (Status, bool) {
	for _, v := range AllStatuses() {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	return "", false
}
