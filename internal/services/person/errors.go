package person

import "errors"

// Person-related errors
var (
	// ErrInvalidPersonID indicates a non-positive identifier
	ErrInvalidPersonID = errors.New("invalid person ID")
)
