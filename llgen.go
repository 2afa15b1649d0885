package llgen

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Token represents an input token, as produced by a scanner.
//
// For the class tokenizer an integer literal would look like this:
//
//    TokType = 2           // index of token class "int32"
//    Class   = "int32"     // name of the token class
//    Lexeme  = "4711"      // lexeme as it appeared in the input
//    Span    = 7…11        // position in the input
//
type Token interface {
	TokType() TokType
	Class() string
	Lexeme() string
	Span() Span
}

// --- Spans -----------------------------------------------------------------

// Span denotes a run of input positions, from a start position up to the
// position just behind the end.
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
