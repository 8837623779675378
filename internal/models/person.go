package models

import (
	"strings"

	"github.com/obedvega/hito/internal/types"
)

// Person represents a team member who can be assigned to tasks.
// Tasks hold a reference to a person, never the other way around.
type Person struct {
	ID    types.PersonID
	Name  string
	Email string
	Role  string
}

// Validate checks the person's field invariants. The email check is
// deliberately loose: anything with an "@" separating two non-empty
// halves passes.
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	at := strings.Index(p.Email, "@")
	if at <= 0 || at == len(p.Email)-1 {
		return &ValidationError{Field: "email", Reason: "must contain an @ separator"}
	}
	return nil
}
