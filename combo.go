package combo

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by the
// scanner in package termlang.
type TokType int

// Tokens represent input tokens of the prefix term language. They are
// produced by a scanner.
//
// An example would be a token for a symbol name:
//
//    TokType = Symbol      // identifier for this kind of tokens
//    Lexeme  = "LAMBDA"    // lexeme how it appeared in the input stream
//    Span    = 4…10        // occured from position 4 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing the extent of a token in the input.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
