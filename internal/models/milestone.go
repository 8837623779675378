package models

import (
	"strings"
	"time"

	"github.com/obedvega/hito/internal/types"
)

// Milestone represents a named goal tasks can be grouped under.
// The task side holds the reference; deleting a milestone never
// deletes its tasks.
type Milestone struct {
	ID         types.MilestoneID
	Name       string
	TargetDate *time.Time
}

// Validate checks the milestone's field invariants.
func (m *Milestone) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	return nil
}
