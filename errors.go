package pokerlog

import "fmt"

// StorageError reports a persistence read or write failure. The store never
// swallows one; callers decide how to present it.
type StorageError struct {
	Op  string // "load" or "append"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ValidationError reports a rejected session draft. Field names the first
// offending entry-form field so the form can keep its state for correction.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
