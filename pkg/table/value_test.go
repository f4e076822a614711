package table_test

import (
	"errors"
	"testing"

	"github.com/shapestone/shape-table/pkg/table"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind table.Kind
		want string
	}{
		{table.KindString, "string"},
		{table.KindInteger, "integer"},
		{table.KindFloat, "float"},
		{table.Kind(9), "Kind(9)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_ZeroIsEmptyString(t *testing.T) {
	var v table.Value
	if v.Kind() != table.KindString {
		t.Fatalf("zero Value kind = %s, want string", v.Kind())
	}
	s, err := v.AsString()
	if err != nil || s != "" {
		t.Errorf("zero Value AsString() = (%q, %v), want (\"\", nil)", s, err)
	}
}

func TestValue_Accessors(t *testing.T) {
	s := table.StringValue("Alice")
	i := table.IntegerValue(30)
	f := table.FloatValue(9.5)

	if got, err := s.AsString(); err != nil || got != "Alice" {
		t.Errorf("AsString() = (%q, %v)", got, err)
	}
	if got, err := i.AsInteger(); err != nil || got != 30 {
		t.Errorf("AsInteger() = (%d, %v)", got, err)
	}
	if got, err := f.AsFloat(); err != nil || got != 9.5 {
		t.Errorf("AsFloat() = (%v, %v)", got, err)
	}

	// Mismatched reads
	_, integerAsString := i.AsString()
	_, floatAsInteger := f.AsInteger()
	_, integerAsFloat := i.AsFloat()
	_, stringAsInteger := s.AsInteger()

	mismatches := []struct {
		name string
		err  error
		want table.Kind
		got  table.Kind
	}{
		{name: "integer as string", err: integerAsString, want: table.KindString, got: table.KindInteger},
		{name: "float as integer", err: floatAsInteger, want: table.KindInteger, got: table.KindFloat},
		{name: "integer as float", err: integerAsFloat, want: table.KindFloat, got: table.KindInteger},
		{name: "string as integer", err: stringAsInteger, want: table.KindInteger, got: table.KindString},
	}

	for _, tt := range mismatches {
		t.Run(tt.name, func(t *testing.T) {
			var terr *table.TypeMismatchError
			if !errors.As(tt.err, &terr) {
				t.Fatalf("expected *TypeMismatchError, got %v", tt.err)
			}
			if terr.Want != tt.want || terr.Got != tt.got {
				t.Errorf("TypeMismatchError = %+v, want Want=%s Got=%s", terr, tt.want, tt.got)
			}
			if !errors.Is(tt.err, table.ErrTypeMismatch) {
				t.Error("errors.Is(err, ErrTypeMismatch) = false")
			}
		})
	}
}

func TestAs(t *testing.T) {
	v := table.IntegerValue(25)

	n, err := table.As[int64](v)
	if err != nil || n != 25 {
		t.Errorf("As[int64]() = (%d, %v), want (25, nil)", n, err)
	}

	if _, err := table.As[float64](v); !errors.Is(err, table.ErrTypeMismatch) {
		t.Errorf("As[float64]() error = %v, want ErrTypeMismatch", err)
	}

	if _, err := table.As[string](v); !errors.Is(err, table.ErrTypeMismatch) {
		t.Errorf("As[string]() error = %v, want ErrTypeMismatch", err)
	}

	s, err := table.As[string](table.StringValue("x"))
	if err != nil || s != "x" {
		t.Errorf("As[string]() = (%q, %v), want (x, nil)", s, err)
	}
}

func TestValueOf(t *testing.T) {
	if v := table.ValueOf("a"); !v.Equal(table.StringValue("a")) {
		t.Errorf("ValueOf(string) = %v", v)
	}
	if v := table.ValueOf(int64(3)); !v.Equal(table.IntegerValue(3)) {
		t.Errorf("ValueOf(int64) = %v", v)
	}
	if v := table.ValueOf(1.25); !v.Equal(table.FloatValue(1.25)) {
		t.Errorf("ValueOf(float64) = %v", v)
	}
}

func TestValue_Format(t *testing.T) {
	tests := []struct {
		name      string
		value     table.Value
		precision int
		want      string
	}{
		{name: "string verbatim", value: table.StringValue("a b"), precision: 2, want: "a b"},
		{name: "integer ignores precision", value: table.IntegerValue(8), precision: 2, want: "8"},
		{name: "negative integer", value: table.IntegerValue(-42), precision: 1, want: "-42"},
		{name: "float padded", value: table.FloatValue(9.5), precision: 2, want: "9.50"},
		{name: "float rounded", value: table.FloatValue(2.345), precision: 1, want: "2.3"},
		{name: "float precision zero", value: table.FloatValue(9.5), precision: 0, want: "10"},
		{name: "negative float", value: table.FloatValue(-3.5), precision: 1, want: "-3.5"},
		{name: "float shortest", value: table.FloatValue(0.1), precision: -1, want: "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Format(tt.precision); got != tt.want {
				t.Errorf("Format(%d) = %q, want %q", tt.precision, got, tt.want)
			}
		})
	}
}

func TestValue_Equal(t *testing.T) {
	if table.IntegerValue(1).Equal(table.FloatValue(1)) {
		t.Error("Integer(1) should not equal Float(1)")
	}
	if table.StringValue("1").Equal(table.IntegerValue(1)) {
		t.Error("String(1) should not equal Integer(1)")
	}
	if !table.FloatValue(1.5).Equal(table.FloatValue(1.5)) {
		t.Error("Float(1.5) should equal Float(1.5)")
	}
}

func TestValue_Interface(t *testing.T) {
	if _, ok := table.IntegerValue(1).Interface().(int64); !ok {
		t.Error("Integer Interface() is not int64")
	}
	if _, ok := table.FloatValue(1).Interface().(float64); !ok {
		t.Error("Float Interface() is not float64")
	}
	if _, ok := table.StringValue("").Interface().(string); !ok {
		t.Error("String Interface() is not string")
	}
}
