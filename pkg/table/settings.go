package table

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-table/internal/parser"
)

// Ending selects the line terminator.
type Ending int

const (
	// LF terminates lines with "\n".
	LF Ending = iota
	// CRLF terminates lines with "\r\n".
	CRLF
	// Auto resolves to LF or CRLF from the first terminator found while parsing.
	Auto
)

// String returns the configuration name of the ending.
func (e Ending) String() string {
	switch e {
	case LF:
		return "lf"
	case CRLF:
		return "crlf"
	case Auto:
		return "auto"
	default:
		return fmt.Sprintf("Ending(%d)", int(e))
	}
}

// Terminator returns the bytes written after each line.
// An unresolved Auto ending writes "\n".
func (e Ending) Terminator() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// ParseEnding converts "lf", "crlf" or "auto" (any case) to an Ending.
func ParseEnding(s string) (Ending, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	case "auto":
		return Auto, nil
	default:
		return LF, &ConfigError{Field: "Ending", Message: fmt.Sprintf("unknown line ending %q", s)}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Ending) MarshalText() ([]byte, error) {
	if !e.valid() {
		return nil, &ConfigError{Field: "Ending", Message: fmt.Sprintf("unknown line ending %d", int(e))}
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Ending) UnmarshalText(text []byte) error {
	parsed, err := ParseEnding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e Ending) valid() bool {
	return e == LF || e == CRLF || e == Auto
}

func (e Ending) parserEnding() parser.Ending {
	switch e {
	case CRLF:
		return parser.EndingCRLF
	case Auto:
		return parser.EndingAuto
	default:
		return parser.EndingLF
	}
}

func endingFromParser(e parser.Ending) Ending {
	switch e {
	case parser.EndingCRLF:
		return CRLF
	case parser.EndingAuto:
		return Auto
	default:
		return LF
	}
}

// Settings configures parsing and writing.
//
// Settings is a value: a Table keeps its own copy and never modifies the
// caller's. An Auto ending is resolved per Table and reported by Table.Ending.
type Settings struct {
	// Ending is the line terminator convention. Default: LF
	Ending Ending
	// Separator is the field delimiter. Any rune is accepted; choosing one
	// that appears inside the data is the caller's responsibility.
	// Default: ','
	Separator rune
	// AutoDeriveType classifies fields into Integer, Float or String while
	// parsing. Default: false
	AutoDeriveType bool
	// DoublePrecision is the number of decimal places used to write Float
	// cells. Must not be negative. Default: 1
	DoublePrecision int
}

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	return Settings{
		Ending:          LF,
		Separator:       ',',
		AutoDeriveType:  false,
		DoublePrecision: 1,
	}
}

// WithEnding returns a copy of s with the line ending set.
func (s Settings) WithEnding(e Ending) Settings {
	s.Ending = e
	return s
}

// WithSeparator returns a copy of s with the separator set.
func (s Settings) WithSeparator(sep rune) Settings {
	s.Separator = sep
	return s
}

// WithAutoDeriveType returns a copy of s with type inference switched on or off.
func (s Settings) WithAutoDeriveType(on bool) Settings {
	s.AutoDeriveType = on
	return s
}

// WithDoublePrecision returns a copy of s with the float precision set.
func (s Settings) WithDoublePrecision(p int) Settings {
	s.DoublePrecision = p
	return s
}

// Validate checks the settings.
// Returns a *ConfigError for a negative precision or an unknown ending.
func (s Settings) Validate() error {
	if !s.Ending.valid() {
		return &ConfigError{Field: "Ending", Message: fmt.Sprintf("unknown line ending %d", int(s.Ending))}
	}
	if s.DoublePrecision < 0 {
		return &ConfigError{Field: "DoublePrecision", Message: fmt.Sprintf("must not be negative, got %d", s.DoublePrecision)}
	}
	return nil
}

func (s Settings) parserOptions() parser.Options {
	return parser.Options{
		Separator: s.Separator,
		Ending:    s.Ending.parserEnding(),
	}
}
