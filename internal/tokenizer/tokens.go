// Package tokenizer provides line and field tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for delimited text.
//
// Quotes carry no structural meaning: a quote character is ordinary field
// content and any wrap-stripping happens during type detection.
const (
	// Structural tokens
	TokenSeparator = "Separator" // field separator (',' by default)
	TokenNewline   = "Newline"   // line terminator for the active ending

	// Field content token
	TokenField = "Field" // run of characters that are neither separator nor terminator
)
