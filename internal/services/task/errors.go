package task

import "errors"

// Task-related errors
var (
	// ErrInvalidTaskID indicates a non-positive identifier
	ErrInvalidTaskID = errors.New("invalid task ID")
)
