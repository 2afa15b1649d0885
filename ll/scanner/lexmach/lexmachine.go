package lexmach

import (
	"fmt"

	"github.com/npillmayer/llgen"
	"github.com/npillmayer/llgen/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'llgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llgen.scanner")
}

// Class is a token class. Matches of a class with Skip set are dropped.
type Class struct {
	Name    string
	Pattern string
	Skip    bool
}

// DefaultClasses returns the token classes of a small C-like language:
// comments, numbers, identifiers, comparison operators, other operators and
// brackets. White space is skipped.
func DefaultClasses() []Class {
	return []Class{
		{Name: "comment", Pattern: `//[^\n]*`},
		{Name: "float32", Pattern: `[0-9]+\.[0-9]+|\.[0-9]+`},
		{Name: "int32", Pattern: `[0-9]+`},
		{Name: "name", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "ternary", Pattern: `==|!=|>=|<=|<|>`},
		{Name: "operator", Pattern: `[\-+=*/^;?.,]|<<`},
		{Name: "bracket", Pattern: `[(){}"']`},
		{Name: "whitespace", Pattern: `( |\t|\n|\r)+`, Skip: true},
	}
}

// ClassTokenizer holds a DFA compiled from a list of token classes.
type ClassTokenizer struct {
	Lexer   *lexmachine.Lexer
	classes []Class
}

// NewClassTokenizer compiles a list of token classes into a tokenizer.
//
// NewClassTokenizer will return an error if compiling the DFA failed.
func NewClassTokenizer(classes []Class) (*ClassTokenizer, error) {
	ct := &ClassTokenizer{
		Lexer:   lexmachine.NewLexer(),
		classes: append([]Class(nil), classes...),
	}
	for i, c := range ct.classes {
		if c.Skip {
			ct.Lexer.Add([]byte(c.Pattern), Skip)
		} else {
			ct.Lexer.Add([]byte(c.Pattern), MakeToken(c.Name, i))
		}
	}
	if err := ct.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return ct, nil
}

// Classes returns the token classes, indexed by token type.
func (ct *ClassTokenizer) Classes() []Class {
	return append([]Class(nil), ct.classes...)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (ct *ClassTokenizer) Scanner(input string) (*LMScanner, error) {
	s, err := ct.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, classes: ct.classes, Error: logError}, nil
}

// ScanAll collects the tokens of input, up to but not including EOF.
// Scanning continues behind unrecognized input; the first error
// encountered is returned together with all tokens found.
func (ct *ClassTokenizer) ScanAll(input string) ([]llgen.Token, error) {
	scan, err := ct.Scanner(input)
	if err != nil {
		return nil, err
	}
	var first error
	scan.SetErrorHandler(func(e error) {
		tracer().Debugf("scanner error: %v", e)
		if first == nil {
			first = e
		}
	})
	var tokens []llgen.Token
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		tokens = append(tokens, token)
	}
	return tokens, first
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	classes []Class
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unrecognized input is
// reported to the error handler and skipped.
func (lms *LMScanner) NextToken() llgen.Token {
	if lms.scanner == nil {
		return eofToken(0)
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			if ui.FailTC > lms.scanner.TC {
				lms.scanner.TC = ui.FailTC
			} else {
				lms.scanner.TC++
			}
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return eofToken(uint64(lms.scanner.TC))
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %q", token.Type, token.Lexeme)
	return scanner.MakeDefaultToken(
		llgen.TokType(token.Type),
		lms.className(token.Type),
		string(token.Lexeme),
		llgen.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

func (lms *LMScanner) className(typ int) string {
	if typ < 0 || typ >= len(lms.classes) {
		return fmt.Sprintf("class(%d)", typ)
	}
	return lms.classes[typ].Name
}

func eofToken(pos uint64) llgen.Token {
	return scanner.MakeDefaultToken(scanner.EOF, scanner.ClassEOF, "", llgen.Span{pos, pos})
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
