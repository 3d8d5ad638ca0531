package inventory

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotFound        = errors.New("product not found")
	ErrInvalidSort     = errors.New("invalid sort mode")
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeIndexOutOfRange indicates a positional operation past the end of the store
	ErrTypeIndexOutOfRange ErrorType = iota
	// ErrTypeNotFound indicates no record has the requested ID
	ErrTypeNotFound
	// ErrTypeValidation indicates unusable input, such as an unknown sort mode
	ErrTypeValidation
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeIndexOutOfRange:
		return "Index Out Of Range"
	case ErrTypeNotFound:
		return "Not Found"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by store and pipeline operations.
type Error struct {
	Type  ErrorType
	Op    string // "update", "remove", "sort", ...
	Index int    // Requested position (positional ops only)
	Len   int    // Store length at the time of the call (positional ops only)
	ID    string // Requested ID (ID-keyed ops only)
	Value string // Offending input (validation only)
	Err   error  // One of the sentinels above
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Type {
	case ErrTypeIndexOutOfRange:
		return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
	case ErrTypeNotFound:
		return fmt.Sprintf("%s: no product with id %q", e.Op, e.ID)
	case ErrTypeValidation:
		return fmt.Sprintf("%s: %v: %q", e.Op, e.Err, e.Value)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Type)
	}
}

// Unwrap returns the sentinel for errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

func indexError(op string, index, length int) *Error {
	return &Error{Type: ErrTypeIndexOutOfRange, Op: op, Index: index, Len: length, Err: ErrIndexOutOfRange}
}

func notFoundError(op, id string) *Error {
	return &Error{Type: ErrTypeNotFound, Op: op, ID: id, Err: ErrNotFound}
}

// IsIndexOutOfRange reports whether err came from a bad position.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsNotFound reports whether err came from an unknown ID.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidSort reports whether err came from an unknown sort mode.
func IsInvalidSort(err error) bool {
	return errors.Is(err, ErrInvalidSort)
}
