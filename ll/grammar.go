package ll

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
)

// DefaultEpsilonLexeme is the spelling of the empty string within right-hand sides.
const DefaultEpsilonLexeme = "ε"

// DefaultStartMarker is prepended to the name of the start symbol, as in "*Goal".
const DefaultStartMarker = '*'

// Row is a production in tabular form: a left-hand side and a
// whitespace-separated right-hand side.
type Row struct {
	LHS string
	RHS string
}

// === Rules =================================================================

// Rule is a production of a grammar.
//
// Alt is the index of the rule among the alternatives of its left-hand side.
// The parse table refers to rules by this index. Serial numbers rules across
// the whole grammar, grouped by left-hand side in registration order.
type Rule struct {
	Serial int
	LHS    *Symbol
	Alt    int
	rhs    []*Symbol
}

// RHS returns a copy of the right-hand side of a rule.
func (r *Rule) RHS() []*Symbol {
	return append([]*Symbol(nil), r.rhs...)
}

// Len returns the number of symbols on the right-hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for rules with an empty right-hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, A := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return fmt.Sprintf("[%s] ::= %s", r.LHS, b.String())
}

// === Grammar ===============================================================

// Grammar is a context-free grammar, ready for analysis. Grammars are created
// by a GrammarBuilder and are immutable.
type Grammar struct {
	Name         string
	rules        []*Rule
	nonterminals []*Symbol // registration order, index == Value
	terminals    []*Symbol // EOF first, then first-seen order, index == Value
	alts         map[*Symbol][]*Rule
	start        *Symbol
	symtab       *symbolTable
}

// NonTerminals returns the left-hand sides in registration order.
func (g *Grammar) NonTerminals() []*Symbol {
	return append([]*Symbol(nil), g.nonterminals...)
}

// Terminals returns the terminal columns, EOF first.
func (g *Grammar) Terminals() []*Symbol {
	return append([]*Symbol(nil), g.terminals...)
}

// Rules returns all rules, ordered by serial number.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// Rule returns rule number n, or nil.
func (g *Grammar) Rule(n int) *Rule {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Alternatives returns the rules for non-terminal A in declaration order.
func (g *Grammar) Alternatives(A *Symbol) []*Rule {
	return append([]*Rule(nil), g.alts[A]...)
}

// Start returns the start symbol, or nil if no left-hand side carries the
// start marker. If more than one does, the first one registered is the start
// symbol.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Symbol finds a symbol by name. The reserved symbols may be found by their
// names, unless the grammar defines a symbol of the same spelling.
func (g *Grammar) Symbol(name string) *Symbol {
	if A := g.symtab.resolve(name); A != nil {
		return A
	}
	switch name {
	case EOF.Name:
		return EOF
	case Epsilon.Name:
		return Epsilon
	}
	return nil
}

// EachNonTerminal iterates over the non-terminals in registration order.
func (g *Grammar) EachNonTerminal(mapper func(A *Symbol)) {
	for _, A := range g.nonterminals {
		mapper(A)
	}
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s --------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-----------------------------------------------")
}

// === Grammar builder =======================================================

// Option configures a grammar builder.
type Option func(b *GrammarBuilder)

// EpsilonLexeme sets the spelling of the empty string in right-hand sides.
func EpsilonLexeme(lexeme string) Option {
	return func(b *GrammarBuilder) {
		b.epsilon = lexeme
	}
}

// StartMarker sets the rune prefixing the start symbol.
func StartMarker(r rune) Option {
	return func(b *GrammarBuilder) {
		b.marker = r
	}
}

// AllowUndefined sets or clears the permissive mode: non-terminals which
// never appear as a left-hand side are treated as terminals instead of
// being reported as ErrUnresolvedReference.
func AllowUndefined(allow bool) Option {
	return func(b *GrammarBuilder) {
		b.allowUndefined = allow
	}
}

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder, add productions and call Grammar().
type GrammarBuilder struct {
	name           string
	rows           []builderRow
	epsilon        string
	marker         rune
	allowUndefined bool
}

type builderRow struct {
	lhs string
	rhs []string
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(name string, opts ...Option) *GrammarBuilder {
	b := &GrammarBuilder{
		name:    name,
		epsilon: DefaultEpsilonLexeme,
		marker:  DefaultStartMarker,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Row adds a production in tabular form. The right-hand side is split on
// white space. An empty right-hand side denotes an epsilon-production.
func (b *GrammarBuilder) Row(lhs, rhs string) *GrammarBuilder {
	b.rows = append(b.rows, builderRow{lhs: lhs, rhs: strings.Fields(rhs)})
	return b
}

// Rows adds a sequence of productions in tabular form.
func (b *GrammarBuilder) Rows(rows ...Row) *GrammarBuilder {
	for _, r := range rows {
		b.Row(r.LHS, r.RHS)
	}
	return b
}

// LHS starts a new rule for non-terminal name.
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: name}
}

// RuleBuilder collects the right-hand side of a rule. Finish it with End()
// or Epsilon().
type RuleBuilder struct {
	b   *GrammarBuilder
	lhs string
	rhs []string
}

// Sym appends symbols to the right-hand side.
func (rb *RuleBuilder) Sym(names ...string) *RuleBuilder {
	rb.rhs = append(rb.rhs, names...)
	return rb
}

// End finishes a rule.
func (rb *RuleBuilder) End() *GrammarBuilder {
	rb.b.rows = append(rb.b.rows, builderRow{lhs: rb.lhs, rhs: rb.rhs})
	return rb.b
}

// Epsilon finishes a rule with an empty right-hand side. Symbols added
// beforehand are discarded.
func (rb *RuleBuilder) Epsilon() *GrammarBuilder {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far. Every call creates a new grammar
// from all the productions added to the builder.
//
// Grammar returns ErrMalformedGrammar for structurally broken productions and
// ErrUnresolvedReference for non-terminals without productions (unless the
// builder is permissive). Both errors are wrapped with details.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(b.rows) == 0 {
		return nil, fmt.Errorf("%w: grammar %q has no productions", ErrMalformedGrammar, b.name)
	}
	g := &Grammar{
		Name:      b.name,
		alts:      make(map[*Symbol][]*Rule),
		terminals: []*Symbol{EOF},
		symtab:    newSymbolTable(),
	}
	lhs := make([]*Symbol, len(b.rows))
	for i, row := range b.rows { // register left-hand sides first
		A, err := b.defineLHS(g, row.lhs)
		if err != nil {
			return nil, err
		}
		lhs[i] = A
	}
	rhs := make([][]*Symbol, len(b.rows))
	for i, row := range b.rows {
		syms, err := b.resolveRHS(g, row)
		if err != nil {
			return nil, err
		}
		rhs[i] = syms
	}
	for i, A := range lhs {
		g.alts[A] = append(g.alts[A], &Rule{LHS: A, Alt: len(g.alts[A]), rhs: rhs[i]})
	}
	for _, A := range g.nonterminals {
		for _, r := range g.alts[A] {
			r.Serial = len(g.rules)
			g.rules = append(g.rules, r)
		}
	}
	tracer().Infof("grammar %q: %d rules, %d non-terminals, %d terminals",
		g.Name, len(g.rules), len(g.nonterminals), len(g.terminals))
	return g, nil
}

func (b *GrammarBuilder) defineLHS(g *Grammar, name string) (*Symbol, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty left-hand side", ErrMalformedGrammar)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return nil, fmt.Errorf("%w: left-hand side %q contains white space", ErrMalformedGrammar, name)
	}
	kind := classify(name, b.marker)
	if kind == Terminal {
		return nil, fmt.Errorf("%w: left-hand side %q is not a non-terminal", ErrMalformedGrammar, name)
	}
	A, found := g.symtab.resolveOrDefine(name, kind)
	if found {
		return A, nil
	}
	A.Value = len(g.nonterminals)
	g.nonterminals = append(g.nonterminals, A)
	if kind == Start {
		if g.start == nil {
			g.start = A
		} else {
			tracer().Infof("%s carries the start marker, but %s is the start symbol", A, g.start)
		}
	}
	return A, nil
}

func (b *GrammarBuilder) resolveRHS(g *Grammar, row builderRow) ([]*Symbol, error) {
	syms := make([]*Symbol, 0, len(row.rhs))
	for _, token := range row.rhs {
		if token == b.epsilon {
			continue // ε stands for the empty string
		}
		switch classify(token, b.marker) {
		case Terminal:
			syms = append(syms, g.defineTerminal(token))
		default:
			if A := g.symtab.resolve(token); A != nil {
				syms = append(syms, A)
			} else if b.allowUndefined {
				tracer().Infof("non-terminal %q has no productions, treating it as a terminal", token)
				syms = append(syms, g.defineTerminal(token))
			} else {
				return nil, fmt.Errorf("%w: %q (used by %s) has no productions",
					ErrUnresolvedReference, token, strings.TrimSpace(row.lhs))
			}
		}
	}
	return syms, nil
}

func (g *Grammar) defineTerminal(name string) *Symbol {
	t, found := g.symtab.resolveOrDefine(name, Terminal)
	if !found {
		t.Value = len(g.terminals)
		g.terminals = append(g.terminals, t)
	}
	return t
}
