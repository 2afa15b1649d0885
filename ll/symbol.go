package ll

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Kind classifies grammar symbols.
type Kind int8

// Symbol kinds. EpsilonKind and EOFKind are reserved for the two
// pre-defined symbols Epsilon and EOF.
const (
	Terminal Kind = iota
	NonTerminal
	Start // a non-terminal carrying the start marker
	EpsilonKind
	EOFKind
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	case Start:
		return "start"
	case EpsilonKind:
		return "epsilon"
	case EOFKind:
		return "eof"
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// Symbol is a grammar symbol. Symbols are created by a grammar builder and are
// unique per grammar, i.e. two symbols of a grammar are equal iff they are
// the same pointer.
//
// Value is the row index of a non-terminal or the column index of a terminal
// within the parse table.
type Symbol struct {
	Name  string
	Kind  Kind
	Value int
}

// Pre-defined symbols. They are shared between all grammars and never
// collide with terminals a grammar author spells the same way.
var (
	// Epsilon denotes the empty string.
	Epsilon = &Symbol{Name: "ε", Kind: EpsilonKind, Value: -1}

	// EOF is the end-of-input marker. It is the first column of every table.
	EOF = &Symbol{Name: "#eof", Kind: EOFKind, Value: 0}
)

// IsTerminal returns true for terminals, including EOF.
func (A *Symbol) IsTerminal() bool {
	return A.Kind == Terminal || A.Kind == EOFKind
}

// IsNonTerminal returns true for non-terminals, including start symbols.
func (A *Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminal || A.Kind == Start
}

// IsEpsilon returns true for the epsilon symbol only.
func (A *Symbol) IsEpsilon() bool {
	return A == Epsilon
}

func (A *Symbol) String() string {
	return A.Name
}

// classify determines the kind of a token from its spelling: a token is a
// non-terminal iff its first rune is an upper-case letter. A start symbol is
// the marker followed by an upper-case letter.
func classify(token string, marker rune) Kind {
	r, sz := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError {
		return Terminal
	}
	if unicode.IsUpper(r) {
		return NonTerminal
	}
	if r == marker && len(token) > sz {
		if r2, _ := utf8.DecodeRuneInString(token[sz:]); unicode.IsUpper(r2) {
			return Start
		}
	}
	return Terminal
}

// --- Symbol table ----------------------------------------------------------

// symbolTable interns symbols by name (map-like semantics).
type symbolTable struct {
	table map[string]*Symbol
}

func newSymbolTable() *symbolTable {
	return &symbolTable{table: make(map[string]*Symbol)}
}

// resolve checks for a symbol in the table. Returns a symbol or nil.
func (t *symbolTable) resolve(name string) *Symbol {
	return t.table[name]
}

// resolveOrDefine finds a symbol in the table, inserts a new one if not found.
// Returns the symbol and a flag, signalling whether the symbol has already
// been present.
func (t *symbolTable) resolveOrDefine(name string, kind Kind) (*Symbol, bool) {
	if A := t.resolve(name); A != nil {
		return A, true
	}
	A := &Symbol{Name: name, Kind: kind, Value: -1}
	t.table[name] = A
	return A, false
}
