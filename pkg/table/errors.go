package table

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-table/internal/parser"
)

// Error families. Every error returned by this package matches exactly one
// of these with errors.Is, except *ConfigError which is matched with errors.As.
var (
	// ErrFormat matches every *ParseError.
	ErrFormat = errors.New("table: format error")

	// ErrRange matches every *RangeError.
	ErrRange = errors.New("table: index out of range")

	// ErrTypeMismatch matches every *TypeMismatchError.
	ErrTypeMismatch = errors.New("table: type mismatch")
)

// Parse error causes, found in ParseError.Err.
var (
	// ErrNoData indicates input without a title line, or an Auto ending with
	// no line terminator in the input.
	ErrNoData = parser.ErrNoData

	// ErrEmptyLine indicates an empty line followed by more input.
	ErrEmptyLine = parser.ErrEmptyLine

	// ErrFieldCount indicates a data line whose field count differs from
	// the number of titles.
	ErrFieldCount = parser.ErrFieldCount

	// ErrInvalidUTF8 indicates input that is not valid UTF-8.
	ErrInvalidUTF8 = parser.ErrInvalidUTF8

	// ErrNumber indicates a numeric-looking field that could not be converted.
	ErrNumber = errors.New("invalid number")
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	// Line is the line where the error occurred (1-indexed, titles are line 1).
	Line int
	// Column is the field where the error occurred (1-indexed), or 0 when the
	// error concerns the whole line.
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFormat.
func (e *ParseError) Is(target error) bool {
	return target == ErrFormat
}

// FieldCountError reports a data line with the wrong number of fields.
type FieldCountError struct {
	Got  int
	Want int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("%v (got %d, expected %d)", ErrFieldCount, e.Got, e.Want)
}

// Unwrap returns ErrFieldCount.
func (e *FieldCountError) Unwrap() error {
	return ErrFieldCount
}

// NumberError reports a field that was classified as numeric but failed
// conversion.
type NumberError struct {
	// Token is the field text after quote stripping.
	Token string
	// Kind is the numeric kind the token was classified as.
	Kind Kind
	// Err is the strconv error.
	Err error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%v: cannot convert %q to %s: %v", ErrNumber, e.Token, e.Kind, e.Err)
}

// Unwrap exposes both ErrNumber and the strconv error.
func (e *NumberError) Unwrap() []error {
	return []error{ErrNumber, e.Err}
}

// ConfigError represents an invalid settings value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "table: invalid " + e.Field + ": " + e.Message
}

// RangeError reports an out-of-bounds index, an invalid row range, or a row
// with the wrong number of cells.
type RangeError struct {
	// Op is the method that failed.
	Op string
	// Index is the offending index, the range start, or for AddRow the
	// number of cells supplied.
	Index int
	// End is the exclusive range end for RemoveRows.
	End int
	// Len is the valid length: rows, columns, or for AddRow the title count.
	Len int
}

func (e *RangeError) Error() string {
	switch {
	case e.Op == "AddRow" && e.Len == 0:
		return "table: AddRow: no titles set"
	case e.Op == "AddRow":
		return fmt.Sprintf("table: AddRow: row has %d values, want %d", e.Index, e.Len)
	case e.Op == "RemoveRows":
		return fmt.Sprintf("table: %s: invalid range [%d, %d) for length %d", e.Op, e.Index, e.End, e.Len)
	default:
		return fmt.Sprintf("table: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
	}
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

func indexError(op string, index, length int) *RangeError {
	return &RangeError{Op: op, Index: index, Len: length}
}

// TypeMismatchError reports a typed read of a cell holding another variant.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("table: type mismatch: want %s, got %s", e.Want, e.Got)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// parseError converts an internal parser error into a *ParseError.
func parseError(err error) error {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return err
	}

	out := &ParseError{Line: perr.Line, Err: perr.Err}
	var cerr *parser.CountError
	if errors.As(perr.Err, &cerr) {
		out.Err = &FieldCountError{Got: cerr.Got, Want: cerr.Want}
	}
	return out
}
