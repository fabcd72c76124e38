package model

import "fmt"

// ValidationError reports a required field missing or malformed at a write
// boundary (manual add, manual edit, or a CSV row).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StoreError reports a failed or rejected request against the record store.
type StoreError struct {
	Op  string // "list", "create", "update", "delete"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ParseError reports an unreadable or malformed CSV file. It aborts the
// whole import; no rows from the file are persisted.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse CSV file: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
