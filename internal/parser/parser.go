// Package parser implements line-oriented parsing of delimited text.
//
// The first line holds the column titles; every following line is a data
// line with exactly as many fields as there are titles. Fields are kept as
// raw text; typing them is left to the caller.
package parser

import (
	"strings"
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-table/internal/tokenizer"
)

// Ending selects how lines are terminated.
type Ending int

const (
	// EndingLF terminates lines with "\n".
	EndingLF Ending = iota
	// EndingCRLF terminates lines with "\r\n" (a lone "\r" is also accepted).
	EndingCRLF
	// EndingAuto resolves to LF or CRLF from the first terminator in the input.
	EndingAuto
)

// Options configures the parser behavior.
type Options struct {
	// Separator is the field delimiter. Default: ','
	Separator rune
	// Ending is the line terminator convention. Default: EndingLF
	Ending Ending
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Separator: ',',
		Ending:    EndingLF,
	}
}

// Line is a data line split into raw fields.
type Line struct {
	// Number is the 1-indexed line number in the input (the title line is 1).
	Number int
	// Fields holds the raw field text in order.
	Fields []string
}

// Result is a fully parsed input.
type Result struct {
	// Titles are the column titles from the first line.
	Titles []string
	// Lines are the data lines, each with len(Titles) fields.
	Lines []Line
	// Ending is the resolved line ending; never EndingAuto.
	Ending Ending
}

// Parser splits delimited text into a title line and data lines.
type Parser struct {
	input     string
	opts      Options
	tokenizer *shapetokenizer.Tokenizer
	current   *shapetokenizer.Token
	hasToken  bool
	line      int
}

// NewParser creates a parser for input with default options.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a parser for input with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	return &Parser{
		input: input,
		opts:  opts,
	}
}

// ResolveEnding returns the ending implied by the first line terminator in
// input: CRLF when a '\r' comes first, LF when a '\n' does. ok is false when
// input contains no terminator.
func ResolveEnding(input string) (ending Ending, ok bool) {
	idx := strings.IndexAny(input, "\r\n")
	if idx < 0 {
		return EndingAuto, false
	}
	if input[idx] == '\r' {
		return EndingCRLF, true
	}
	return EndingLF, true
}

// Parse parses the whole input.
//
// Grammar:
//
//	File      = TitleLine { DataLine } ;
//	TitleLine = Field { Separator Field } [ Separator ] Terminator ;
//	DataLine  = Field { Separator Field } ( Terminator | EOF ) ;
//
// A trailing separator on the title line does not create an empty title,
// while on a data line it creates an empty final field.
func (p *Parser) Parse() (*Result, error) {
	ending := p.opts.Ending
	if ending == EndingAuto {
		resolved, ok := ResolveEnding(p.input)
		if !ok {
			return nil, &Error{Line: 1, Err: ErrNoData}
		}
		ending = resolved
	}
	if !utf8.ValidString(p.input) {
		return nil, &Error{Line: invalidUTF8Line(p.input, ending), Err: ErrInvalidUTF8}
	}

	tokOpts := tokenizer.Options{
		Separator: p.opts.Separator,
		CRLF:      ending == EndingCRLF,
	}
	tok := tokenizer.NewTokenizerWithStreamAndOptions(shapetokenizer.NewStream(p.input), tokOpts)
	p.tokenizer = &tok
	p.line = 0
	p.advance() // Load first token

	title := p.parseLine()
	if title.empty {
		return nil, &Error{Line: 1, Err: ErrNoData}
	}
	titles := title.fields
	if title.trailingSeparator {
		titles = titles[:len(titles)-1]
	}

	result := &Result{
		Titles: titles,
		Lines:  make([]Line, 0, 16),
		Ending: ending,
	}

	for p.hasToken {
		rec := p.parseLine()
		if rec.empty {
			// An empty final line is just the trailing terminator of the file.
			if !p.hasToken {
				break
			}
			return nil, &Error{Line: rec.number, Err: ErrEmptyLine}
		}
		if len(rec.fields) != len(titles) {
			return nil, &Error{
				Line: rec.number,
				Err:  &CountError{Got: len(rec.fields), Want: len(titles)},
			}
		}
		result.Lines = append(result.Lines, Line{Number: rec.number, Fields: rec.fields})
	}

	return result, nil
}

// invalidUTF8Line returns the 1-indexed line holding the first invalid UTF-8
// byte of input.
func invalidUTF8Line(input string, ending Ending) int {
	term := byte('\n')
	if ending == EndingCRLF {
		term = '\r'
	}
	line := 1
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		if input[i] == term {
			line++
		}
		i += size
	}
	return line
}

// line is one input line split into fields.
type line struct {
	number            int
	fields            []string
	empty             bool
	trailingSeparator bool
}

// parseLine consumes tokens up to and including the next terminator, or to
// EOF, splitting them into fields.
func (p *Parser) parseLine() line {
	p.line++
	rec := line{
		number: p.line,
		fields: make([]string, 0, 8),
		empty:  true,
	}

	var value strings.Builder
	for p.hasToken {
		kind := p.current.Kind()
		if kind == tokenizer.TokenNewline {
			p.advance()
			break
		}

		rec.empty = false
		if kind == tokenizer.TokenSeparator {
			rec.fields = append(rec.fields, value.String())
			value.Reset()
			rec.trailingSeparator = true
		} else {
			value.WriteString(p.current.ValueString())
			rec.trailingSeparator = false
		}
		p.advance()
	}
	rec.fields = append(rec.fields, value.String())

	return rec
}

// advance moves to next token.
func (p *Parser) advance() {
	token, ok := p.tokenizer.NextToken()
	if ok {
		p.current = token
		p.hasToken = true
	} else {
		p.hasToken = false
		p.current = nil
	}
}
