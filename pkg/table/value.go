package table

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindString is raw or unclassified text.
	KindString Kind = iota
	// KindInteger is a 64-bit signed integer.
	KindInteger
	// KindFloat is a 64-bit floating-point number.
	KindFloat
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one table cell: exactly one of String, Integer or Float.
// The zero Value is the empty String.
type Value struct {
	kind    Kind
	text    string
	integer int64
	float   float64
}

// StringValue returns a String cell.
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// IntegerValue returns an Integer cell.
func IntegerValue(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

// FloatValue returns a Float cell.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// Scalar is the set of Go types a cell can be read as.
type Scalar interface {
	string | int64 | float64
}

// ValueOf wraps a Go scalar in the matching Value variant.
func ValueOf[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case int64:
		return IntegerValue(x)
	case float64:
		return FloatValue(x)
	default:
		return StringValue(any(v).(string))
	}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// AsString returns the text of a String cell.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", &TypeMismatchError{Want: KindString, Got: v.kind}
	}
	return v.text, nil
}

// AsInteger returns the number held by an Integer cell.
func (v Value) AsInteger() (int64, error) {
	if v.kind != KindInteger {
		return 0, &TypeMismatchError{Want: KindInteger, Got: v.kind}
	}
	return v.integer, nil
}

// AsFloat returns the number held by a Float cell.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, &TypeMismatchError{Want: KindFloat, Got: v.kind}
	}
	return v.float, nil
}

// As downcasts v to T, failing with a *TypeMismatchError when T does not
// match the stored variant. No numeric conversion takes place: an Integer
// cell cannot be read as float64.
func As[T Scalar](v Value) (T, error) {
	var zero T
	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case string:
		out, err = v.AsString()
	case int64:
		out, err = v.AsInteger()
	case float64:
		out, err = v.AsFloat()
	}
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

// Interface returns the cell as a string, int64 or float64.
func (v Value) Interface() any {
	switch v.kind {
	case KindInteger:
		return v.integer
	case KindFloat:
		return v.float
	default:
		return v.text
	}
}

// Format renders the cell. Strings are returned verbatim, integers in
// canonical decimal and floats in fixed-point notation with precision
// decimal places. A negative precision uses the fewest digits that
// round-trip.
func (v Value) Format(precision int) string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'f', precision, 64)
	default:
		return v.text
	}
}

// String implements fmt.Stringer using the shortest float representation.
func (v Value) String() string {
	return v.Format(-1)
}

// Equal reports whether v and o hold the same variant and value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.integer == o.integer
	case KindFloat:
		return v.float == o.float
	default:
		return v.text == o.text
	}
}
