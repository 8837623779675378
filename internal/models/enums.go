package models

// Status is the closed set of task states. New values must be added to
// every switch below so nothing can silently fall through.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
	StatusBlocked
)

// Priority is the closed set of task priority levels.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// Statuses lists all valid statuses in display order.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked}

// Priorities lists all valid priorities in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusBlocked:
		return "Blocked"
	}
	return "Unknown"
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return "Unknown"
}

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

// Valid reports whether p is a member of the closed priority set.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParseStatus maps a display string back to its Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Not Started":
		return StatusNotStarted, nil
	case "In Progress":
		return StatusInProgress, nil
	case "Completed":
		return StatusCompleted, nil
	case "Blocked":
		return StatusBlocked, nil
	}
	return 0, &ValidationError{Field: "status", Reason: "unknown status " + s}
}

// ParsePriority maps a display string back to its Priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "Low":
		return PriorityLow, nil
	case "Medium":
		return PriorityMedium, nil
	case "High":
		return PriorityHigh, nil
	}
	return 0, &ValidationError{Field: "priority", Reason: "unknown priority " + s}
}
