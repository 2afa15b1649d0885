/*
Package scanner defines an interface for tokenizers which feed the terminals
of an LL(1) grammar.

Two implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) a tokenizer driven by a list of regular expression
classes, living in sub-package `lexmach`.

Tokens carry a class name. Terminal maps a token onto the grammar terminal
it stands for, which lets clients check scanned input against the columns
of a parse table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/llgen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llgen.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Class names of tokens produced by the Go tokenizer. Single-character
// tokens are of class Literal.
const (
	ClassEOF     = "#eof"
	ClassName    = "name"
	ClassInt     = "int"
	ClassFloat   = "float"
	ClassChar    = "char"
	ClassString  = "string"
	ClassRaw     = "rawstring"
	ClassComment = "comment"
	ClassLiteral = "literal"
)

// NumTerminal and NameTerminal are the grammar terminals standing for any
// number and any identifier, respectively.
const (
	NumTerminal  = "num"
	NameTerminal = "name"
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() llgen.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune        // last token this scanner has produced
	Error        func(error) // error handler
	unifyStrings bool        // convert single chars to strings
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(&PositionError{Pos: s.Position, Msg: msg})
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() llgen.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	return DefaultToken{
		kind:   llgen.TokType(t.lastToken),
		class:  goClass(t.lastToken),
		lexeme: t.TokenText(),
		span:   llgen.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

func goClass(tok rune) string {
	switch tok {
	case scanner.EOF:
		return ClassEOF
	case scanner.Ident:
		return ClassName
	case scanner.Int:
		return ClassInt
	case scanner.Float:
		return ClassFloat
	case scanner.Char:
		return ClassChar
	case scanner.String:
		return ClassString
	case scanner.RawString:
		return ClassRaw
	case scanner.Comment:
		return ClassComment
	}
	return ClassLiteral
}

// PositionError is an error reported by the Go tokenizer.
type PositionError struct {
	Pos scanner.Position
	Msg string
}

func (e *PositionError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the class tokenizer.
type DefaultToken struct {
	kind   llgen.TokType
	class  string
	lexeme string
	span   llgen.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ llgen.TokType, class, lexeme string, span llgen.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		class:  class,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() llgen.TokType {
	return t.kind
}

func (t DefaultToken) Class() string {
	return t.class
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() llgen.Span {
	return t.span
}

// Terminal returns the name of the grammar terminal a token stands for:
// identifiers stand for "name", numbers for "num", end of input for "#eof".
// All other tokens stand for themselves, i.e. their lexeme.
func Terminal(token llgen.Token) string {
	switch token.Class() {
	case ClassEOF:
		return ClassEOF
	case ClassName:
		return NameTerminal
	case ClassInt, ClassFloat, "int32", "float32":
		return NumTerminal
	}
	return token.Lexeme()
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}
