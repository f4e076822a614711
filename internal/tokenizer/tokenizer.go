package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Separator is the field delimiter. Default: ','
	Separator rune
	// CRLF selects "\r\n" line termination. A lone '\r' also terminates a line
	// and a bare '\n' is field content. When false, '\n' terminates a line and
	// '\r' is field content.
	CRLF bool
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Separator: ',',
		CRLF:      false,
	}
}

// NewTokenizer creates a tokenizer with a comma separator and LF line endings.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer with custom options.
//
// Matchers are tried in order:
//  1. Line terminator ("\r\n" before "\r" in CRLF mode, "\n" in LF mode)
//  2. Separator
//  3. Field content (any run of characters that is neither of the above)
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	matchers := make([]tokenizer.Matcher, 0, 4)
	if opts.CRLF {
		matchers = append(matchers,
			tokenizer.StringMatcherFunc(TokenNewline, "\r\n"),
			tokenizer.StringMatcherFunc(TokenNewline, "\r"),
		)
	} else {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenNewline, "\n"))
	}
	matchers = append(matchers,
		tokenizer.StringMatcherFunc(TokenSeparator, string(opts.Separator)),
		FieldContentMatcher(opts),
	)
	return tokenizer.NewTokenizerWithoutWhitespace(matchers...)
}

// NewTokenizerWithStream creates a tokenizer with default options over a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	return NewTokenizerWithStreamAndOptions(stream, DefaultOptions())
}

// NewTokenizerWithStreamAndOptions creates a tokenizer from a stream with custom options.
func NewTokenizerWithStreamAndOptions(stream tokenizer.Stream, opts Options) tokenizer.Tokenizer {
	tok := NewTokenizerWithOptions(opts)
	tok.InitializeFromStream(stream)
	return tok
}

// terminator returns the byte that starts a line terminator for opts.
func terminator(opts Options) rune {
	if opts.CRLF {
		return '\r'
	}
	return '\n'
}

// FieldContentMatcher creates a matcher for field content.
// It matches runs of characters that are not the separator and not the
// first character of the active line terminator.
//
// Grammar:
//
//	Field = Character+ ;
//	Character = <any character except separator and terminator start> ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func FieldContentMatcher(opts Options) tokenizer.Matcher {
	sep := opts.Separator
	term := terminator(opts)
	return func(stream tokenizer.Stream) *tokenizer.Token {
		// Try ByteStream fast path (only if separator is ASCII)
		if sep >= 0 && sep < 128 {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return fieldContentMatcherByte(byteStream, byte(sep), byte(term))
			}
		}

		// Fallback to rune-based matcher
		return fieldContentMatcherRune(stream, sep, term)
	}
}

// fieldContentMatcherByte uses ByteStream for optimal performance.
func fieldContentMatcherByte(stream tokenizer.ByteStream, sep, term byte) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || b == sep || b == term {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenField, []rune(string(value)))
}

// fieldContentMatcherRune is the fallback rune-based implementation.
func fieldContentMatcherRune(stream tokenizer.Stream, sep, term rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r == sep || r == term {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenField, value)
}
