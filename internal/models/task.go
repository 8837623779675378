package models

import (
	"strings"
	"time"

	"github.com/obedvega/hito/internal/types"
)

// DateFormat is the wire and display format for all task dates.
const DateFormat = "2006-01-02"

// Task represents a single unit of work on the timeline.
// AssigneeID and MilestoneID are nullable back-references resolved
// through the repository on demand, never embedded entity pointers.
type Task struct {
	ID          types.TaskID
	Title       string
	Description string
	Status      Status
	Priority    Priority
	StartDate   time.Time
	DueDate     time.Time
	AssigneeID  *types.PersonID
	MilestoneID *types.MilestoneID
}

// Validate checks the task's field invariants: non-empty title, enum
// membership, and start <= due. Reference existence is the
// repository's job, not the entity's.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Reason: "cannot be empty"}
	}
	if !t.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "not a recognized status"}
	}
	if !t.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: "not a recognized priority"}
	}
	if t.StartDate.IsZero() {
		return &ValidationError{Field: "start_date", Reason: "cannot be empty"}
	}
	if t.DueDate.IsZero() {
		return &ValidationError{Field: "due_date", Reason: "cannot be empty"}
	}
	if t.DueDate.Before(t.StartDate) {
		return &ValidationError{Field: "due_date", Reason: "cannot be before start date"}
	}
	return nil
}
