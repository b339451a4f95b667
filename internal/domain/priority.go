package domain

import "strings"

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityNormal   Priority = "Normal"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// AllPriorities returns all valid priority values.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	for _, v := range AllPriorities() {
		if p == v {
			return true
		}
	}
	return false
}

// ParsePriority resolves a case-insensitive priority string to its
// canonical value.
func ParsePriority(s string) (Priority, bool) {
	for _, v := range AllPriorities() {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	return "", false
}
