package table

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-table/internal/parser"
)

// Table is an ordered set of titled columns and rows of cells.
//
// The zero Table is not usable; construct one with New, Parse or ParseReader.
type Table struct {
	settings Settings
	ending   Ending // resolved from settings.Ending by the last parse
	titles   []string
	rows     [][]Value
}

// New creates an empty Table.
// Returns a *ConfigError if settings are invalid.
func New(settings Settings) (*Table, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Table{
		settings: settings,
		ending:   settings.Ending,
		titles:   []string{},
		rows:     [][]Value{},
	}, nil
}

// Parse parses input into a new Table.
//
// Example:
//
//	t, err := table.Parse("name,age\nAlice,30\n", table.DefaultSettings())
func Parse(input string, settings Settings) (*Table, error) {
	t, err := New(settings)
	if err != nil {
		return nil, err
	}
	if err := t.Parse(input); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseReader reads r to the end and parses it into a new Table.
func ParseReader(r io.Reader, settings Settings) (*Table, error) {
	t, err := New(settings)
	if err != nil {
		return nil, err
	}
	if _, err := t.ReadFrom(r); err != nil {
		return nil, err
	}
	return t, nil
}

// Parse replaces the contents of t with the table parsed from input.
// On failure t is left empty; it never holds a partially parsed table.
func (t *Table) Parse(input string) error {
	if err := t.settings.Validate(); err != nil {
		return err
	}
	t.Clear()

	res, err := parser.NewParserWithOptions(input, t.settings.parserOptions()).Parse()
	if err != nil {
		return parseError(err)
	}

	rows := make([][]Value, 0, len(res.Lines))
	for _, line := range res.Lines {
		row, err := t.convertLine(line)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	t.titles = res.Titles
	t.rows = rows
	t.ending = endingFromParser(res.Ending)
	return nil
}

// ReadFrom implements io.ReaderFrom. It reads r to the end and parses the
// data as Parse does. The returned count is the number of bytes read.
func (t *Table) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	n := int64(len(data))
	if err != nil {
		t.Clear()
		return n, fmt.Errorf("table: read input: %w", err)
	}
	return n, t.Parse(string(data))
}

// convertLine turns raw fields into cells, classifying them when
// AutoDeriveType is set.
func (t *Table) convertLine(line parser.Line) ([]Value, error) {
	row := make([]Value, len(line.Fields))
	for i, field := range line.Fields {
		if !t.settings.AutoDeriveType {
			row[i] = StringValue(field)
			continue
		}
		v, err := Detect(field)
		if err != nil {
			return nil, &ParseError{Line: line.Number, Column: i + 1, Err: err}
		}
		row[i] = v
	}
	return row, nil
}

// Settings returns a copy of the table's settings.
func (t *Table) Settings() Settings {
	return t.settings
}

// SetSettings replaces the settings used by later parses and writes.
// Existing cells are not re-classified. A concrete ending replaces the
// resolved ending; Auto keeps the ending resolved by the last parse.
func (t *Table) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	t.settings = s
	if s.Ending != Auto {
		t.ending = s.Ending
	}
	return nil
}

// Ending returns the line ending the table is written with. After parsing
// with an Auto setting this is the resolved LF or CRLF.
func (t *Table) Ending() Ending {
	return t.ending
}

// ColumnCount returns the number of titles.
func (t *Table) ColumnCount() int {
	return len(t.titles)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Empty reports whether the table has no titles.
func (t *Table) Empty() bool {
	return len(t.titles) == 0
}

// Titles returns a copy of the column titles.
func (t *Table) Titles() []string {
	titles := make([]string, len(t.titles))
	copy(titles, t.titles)
	return titles
}

// Row returns a copy of the row at index.
// Returns a *RangeError if index is out of bounds.
func (t *Table) Row(index int) ([]Value, error) {
	if index < 0 || index >= len(t.rows) {
		return nil, indexError("Row", index, len(t.rows))
	}
	row := make([]Value, len(t.rows[index]))
	copy(row, t.rows[index])
	return row, nil
}

// Column returns the cells of column index, top to bottom.
// Returns an empty slice if index is out of range.
func (t *Table) Column(index int) []Value {
	if index < 0 || index >= len(t.titles) {
		return []Value{}
	}
	column := make([]Value, len(t.rows))
	for i, row := range t.rows {
		column[i] = row[index]
	}
	return column
}

// ColumnByTitle returns the cells of the first column titled name.
// Returns an empty slice if no title matches.
func (t *Table) ColumnByTitle(name string) []Value {
	return t.Column(t.SearchTitle(name))
}

// Cell returns the cell at column, row.
// Returns a *RangeError if either index is out of bounds.
func (t *Table) Cell(column, row int) (Value, error) {
	if row < 0 || row >= len(t.rows) {
		return Value{}, indexError("Cell", row, len(t.rows))
	}
	if column < 0 || column >= len(t.titles) {
		return Value{}, indexError("Cell", column, len(t.titles))
	}
	return t.rows[row][column], nil
}

// CellByTitle returns the cell in the first column titled name.
// Returns a *RangeError if the title is missing or row is out of bounds.
func (t *Table) CellByTitle(name string, row int) (Value, error) {
	return t.Cell(t.SearchTitle(name), row)
}

// CellAs returns the cell at column, row downcast to T.
// Returns a *RangeError for bad indexes and a *TypeMismatchError when the
// cell holds another variant.
func CellAs[T Scalar](t *Table, column, row int) (T, error) {
	v, err := t.Cell(column, row)
	if err != nil {
		var zero T
		return zero, err
	}
	return As[T](v)
}

// CellByTitleAs returns the cell in the first column titled name downcast to T.
func CellByTitleAs[T Scalar](t *Table, name string, row int) (T, error) {
	return CellAs[T](t, t.SearchTitle(name), row)
}

// SearchTitle returns the index of the first title equal to name.
// Comparison is exact. Returns ColumnCount() if no title matches.
func (t *Table) SearchTitle(name string) int {
	i := 0
	for ; i < len(t.titles); i++ {
		if t.titles[i] == name {
			break
		}
	}
	return i
}

// SetTitles replaces the titles and removes every row, since the old rows
// no longer match the column count.
func (t *Table) SetTitles(titles []string) {
	t.titles = make([]string, len(titles))
	copy(t.titles, titles)
	t.rows = [][]Value{}
}

// AddRow appends a copy of row.
// Returns a *RangeError, leaving the table unchanged, if the table has no
// titles or len(row) differs from ColumnCount().
func (t *Table) AddRow(row []Value) error {
	if len(t.titles) == 0 || len(row) != len(t.titles) {
		return &RangeError{Op: "AddRow", Index: len(row), Len: len(t.titles)}
	}
	cells := make([]Value, len(row))
	copy(cells, row)
	t.rows = append(t.rows, cells)
	return nil
}

// AddStrings appends a row of String cells.
func (t *Table) AddStrings(fields ...string) error {
	row := make([]Value, len(fields))
	for i, f := range fields {
		row[i] = StringValue(f)
	}
	return t.AddRow(row)
}

// RemoveRow removes the row at index.
// Returns a *RangeError if index is out of bounds.
func (t *Table) RemoveRow(index int) error {
	if index < 0 || index >= len(t.rows) {
		return indexError("RemoveRow", index, len(t.rows))
	}
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	return nil
}

// RemoveRows removes rows in the half-open range [begin, end).
// Returns a *RangeError unless 0 <= begin <= end <= RowCount().
func (t *Table) RemoveRows(begin, end int) error {
	if begin < 0 || end > len(t.rows) || begin > end {
		return &RangeError{Op: "RemoveRows", Index: begin, End: end, Len: len(t.rows)}
	}
	t.rows = append(t.rows[:begin], t.rows[end:]...)
	return nil
}

// Clear removes all titles and rows.
func (t *Table) Clear() {
	t.titles = []string{}
	t.rows = [][]Value{}
}
