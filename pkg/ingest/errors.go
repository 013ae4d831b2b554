package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord marks a line that cannot be turned into a person record
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnknownSource is returned for a source kind with no implementation
	ErrUnknownSource = errors.New("unknown source kind")
)

// RecordError locates a parse failure in the input.
type RecordError struct {
	Line  int    // 1-based input line
	Field string // column name, empty for whole-line problems
	Cause error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d (field %s): %v", e.Line, e.Field, e.Cause)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *RecordError) Unwrap() error {
	return e.Cause
}

func malformed(line int, field string, format string, args ...any) error {
	return &RecordError{
		Line:  line,
		Field: field,
		Cause: fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...)),
	}
}
