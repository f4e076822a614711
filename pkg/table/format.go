package table

import (
	"bytes"
	"fmt"
	"io"
)

// WriteTo implements io.WriterTo.
//
// The title line and every row are written with cells joined by the
// separator, each followed by the line terminator. With AutoDeriveType off
// every cell must be a String; otherwise a *TypeMismatchError is returned
// and nothing is written. With it on, Float cells are written with
// DoublePrecision decimal places and Integer cells in plain decimal.
//
// A table without titles writes nothing. The returned count is the number
// of bytes written.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := t.render(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// Bytes renders the table into a byte slice.
func (t *Table) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Format renders the table into a string.
//
// Example:
//
//	t, _ := table.New(table.DefaultSettings())
//	t.SetTitles([]string{"name", "age"})
//	_ = t.AddStrings("Alice", "30")
//	s, _ := t.Format()
//	// s: name,age\nAlice,30\n
func (t *Table) Format() (string, error) {
	b, err := t.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// render writes the whole table to buf.
func (t *Table) render(buf *bytes.Buffer) error {
	if t.Empty() {
		return nil
	}

	sep := t.settings.Separator
	term := t.ending.Terminator()

	for i, title := range t.titles {
		if i > 0 {
			buf.WriteRune(sep)
		}
		buf.WriteString(title)
	}
	buf.WriteString(term)

	for i, row := range t.rows {
		for j, cell := range row {
			if j > 0 {
				buf.WriteRune(sep)
			}
			field, err := t.renderCell(cell)
			if err != nil {
				return fmt.Errorf("table: write row %d, column %d: %w", i, j, err)
			}
			buf.WriteString(field)
		}
		buf.WriteString(term)
	}
	return nil
}

// renderCell renders one cell according to the inference setting.
func (t *Table) renderCell(v Value) (string, error) {
	if !t.settings.AutoDeriveType {
		return v.AsString()
	}
	return v.Format(t.settings.DoublePrecision), nil
}
