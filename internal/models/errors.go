package models

import (
	"errors"
	"fmt"
)

// The error taxonomy for the core. Every rejected operation returns one
// of these types so callers can distinguish recoverable input problems
// (validation, dangling references, not-found) from storage faults.

// ValidationError reports a malformed or out-of-invariant field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an identifier that does not resolve to a stored entity.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// DanglingReferenceError reports a foreign key naming a non-existent entity.
type DanglingReferenceError struct {
	Entity string
	ID     int
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("referenced %s with id %d does not exist", e.Entity, e.ID)
}

// StorageError wraps an underlying store fault. Fatal to the current
// operation, never retried by the core.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage fault during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDanglingReference reports whether err is a DanglingReferenceError.
func IsDanglingReference(err error) bool {
	var dr *DanglingReferenceError
	return errors.As(err, &dr)
}

// IsStorage reports whether err is a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
