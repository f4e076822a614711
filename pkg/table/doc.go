// Package table reads delimited text into an in-memory table of typed cells
// and writes it back.
//
// A Table owns an ordered list of column titles and an ordered list of rows.
// Every row has exactly as many cells as there are titles; the invariant is
// enforced on every insertion and on every successful parse.
//
// # Parsing
//
// The first line of the input holds the titles, every following line is a
// data line:
//
//	t, err := table.Parse("name,age,score\nAlice,30,9.5\nBob,25,8\n",
//		table.DefaultSettings().WithAutoDeriveType(true))
//	if err != nil {
//	    // handle error
//	}
//	age, _ := table.CellAs[int64](t, 1, 0) // 30
//
// With AutoDeriveType off every cell is a String holding the raw field text.
// With it on, fields are classified by Detect into Integer, Float or String.
//
// The whole input is consumed before the Table is usable; there is no
// incremental access. Parsing either fully populates the Table or returns an
// error, never a partial result.
//
// # Writing
//
// Table implements io.WriterTo. Titles and cells are joined by the separator
// and each line is followed by the resolved line terminator. Floats are
// rendered with Settings.DoublePrecision decimal places:
//
//	t.SetSettings(t.Settings().WithDoublePrecision(2))
//	out, _ := t.Format()
//	// name,age,score
//	// Alice,30,9.50
//	// Bob,25,8
//
// # Errors
//
// Failures are returned as distinct types that work with errors.As:
// *ConfigError, *ParseError, *RangeError and *TypeMismatchError. The
// sentinels ErrFormat, ErrRange and ErrTypeMismatch match each family with
// errors.Is.
//
// # Thread Safety
//
// A Table is not safe for concurrent use. It may be reused across sequential
// parses; each parse replaces the previous contents.
package table
