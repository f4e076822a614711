package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData indicates the input has no title line, or that an automatic
	// line ending could not be resolved because no terminator was found.
	ErrNoData = errors.New("no data")

	// ErrEmptyLine indicates an empty line followed by more input.
	ErrEmptyLine = errors.New("invalid empty line")

	// ErrFieldCount indicates a data line whose field count differs from the title count.
	ErrFieldCount = errors.New("invalid data line: wrong number of fields")

	// ErrInvalidUTF8 indicates input that is not valid UTF-8. Fields are
	// handled as text, so invalid bytes are rejected rather than replaced.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// Error reports a structural problem at a line of the input.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CountError reports a field count mismatch.
type CountError struct {
	Got  int
	Want int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%v (got %d, expected %d)", ErrFieldCount, e.Got, e.Want)
}

func (e *CountError) Unwrap() error {
	return ErrFieldCount
}
