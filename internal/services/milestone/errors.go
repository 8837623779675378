package milestone

import "errors"

// Milestone-related errors
var (
	// ErrInvalidMilestoneID indicates a non-positive identifier
	ErrInvalidMilestoneID = errors.New("invalid milestone ID")
)
