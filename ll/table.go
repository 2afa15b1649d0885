package ll

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/llgen/ll/sparse"
)

// Absent is the table value for cells without an applicable rule.
const Absent = -1

// Claim records a rejected claim on a table cell: alternative Rejected of
// LHS would have been entered for lookahead Terminal, but the cell had
// already been claimed by alternative Kept.
//
// Not every rejected claim hints at a grammar which is not LL(1): an
// epsilon-alternative claims all of FIRST+(LHS), which includes the
// lookaheads of its siblings. See LLAnalysis.Conflicts for the real thing.
type Claim struct {
	LHS      *Symbol
	Terminal *Symbol
	Kept     int
	Rejected int
}

func (c Claim) String() string {
	return fmt.Sprintf("M[%s,%s]: keeping alternative %d, rejecting %d", c.LHS, c.Terminal, c.Kept, c.Rejected)
}

// ParseTable is an LL(1) parse table. Rows are the non-terminals of a grammar
// in registration order, columns are the terminals with EOF first. Every
// cell holds the index of an alternative of the row's non-terminal, or is
// absent.
//
// A ParseTable is read-only once BuildTable returns.
type ParseTable struct {
	g        *Grammar
	matrix   *sparse.IntMatrix
	rejected *arraylist.List
}

// BuildTable constructs the parse table from the FIRST+ sets of g.
//
// For each non-terminal A, in registration order, and each alternative
// A → B1 … Bk of A, in declaration order, every w ∈ FIRST+(B1) claims the
// cell M[A,w]. If w is ε, all terminals of FIRST+(A) are claimed instead.
// An empty alternative is treated as if B1 was ε. Claims on cells which
// already hold an alternative are rejected, i.e. the first alternative
// wins. Rejected claims of other alternatives are recorded, but do not
// change the table.
func BuildTable(g *Grammar, firstPlus *SymbolSets) *ParseTable {
	T := &ParseTable{
		g:        g,
		matrix:   sparse.NewIntMatrix(len(g.nonterminals), len(g.terminals), Absent),
		rejected: arraylist.New(),
	}
	for _, A := range g.nonterminals {
		for _, r := range g.alts[A] {
			lead := NewSymbolSet(Epsilon)
			if !r.IsEpsilon() {
				lead = firstPlus.set(r.rhs[0])
			}
			for _, w := range lead.Symbols() {
				if w == Epsilon {
					for _, t := range firstPlus.set(A).Symbols() {
						if t != Epsilon {
							T.claim(A, t, r.Alt)
						}
					}
					continue
				}
				T.claim(A, w, r.Alt)
			}
		}
	}
	tracer().Infof("parse table %dx%d with %d entries, %d rejected claims",
		T.matrix.M(), T.matrix.N(), T.matrix.ValueCount(), T.rejected.Size())
	return T
}

func (T *ParseTable) claim(A, t *Symbol, alt int) {
	ok, kept := T.matrix.SetIfAbsent(A.Value, t.Value, int32(alt))
	if ok {
		tracer().Debugf("M[%s,%s] = %d", A, t, alt)
		return
	}
	if int(kept) != alt {
		c := Claim{LHS: A, Terminal: t, Kept: int(kept), Rejected: alt}
		tracer().Debugf("rejected claim %v", c)
		T.rejected.Add(c)
	}
}

// Grammar returns the grammar this table has been built for.
func (T *ParseTable) Grammar() *Grammar {
	return T.g
}

// Rows returns the row symbols (non-terminals) in order.
func (T *ParseTable) Rows() []*Symbol {
	return T.g.NonTerminals()
}

// Columns returns the column symbols (terminals, EOF first) in order.
func (T *ParseTable) Columns() []*Symbol {
	return T.g.Terminals()
}

// Lookup returns the alternative to expand for non-terminal A and lookahead t.
// The boolean result is false if the cell is absent.
func (T *ParseTable) Lookup(A, t *Symbol) (int, bool) {
	if A == nil || t == nil || !T.owns(A, t) {
		return Absent, false
	}
	v := T.matrix.Value(A.Value, t.Value)
	if v == T.matrix.NullValue() {
		return Absent, false
	}
	return int(v), true
}

// LookupName is like Lookup, with symbols given by name.
func (T *ParseTable) LookupName(A, t string) (int, bool) {
	return T.Lookup(T.g.Symbol(A), T.g.Symbol(t))
}

// Rule returns the rule to expand for non-terminal A and lookahead t.
func (T *ParseTable) Rule(A, t *Symbol) (*Rule, bool) {
	alt, ok := T.Lookup(A, t)
	if !ok {
		return nil, false
	}
	return T.g.alts[A][alt], true
}

// Size returns the number of cells holding an alternative.
func (T *ParseTable) Size() int {
	return T.matrix.ValueCount()
}

// Each calls f for every non-absent cell, row by row.
func (T *ParseTable) Each(f func(A, t *Symbol, alt int)) {
	T.matrix.Each(func(i, j int, v int32) {
		f(T.g.nonterminals[i], T.g.terminals[j], int(v))
	})
}

// RejectedClaims returns the claims rejected during table construction,
// in the order they occurred.
func (T *ParseTable) RejectedClaims() []Claim {
	cc := make([]Claim, 0, T.rejected.Size())
	for _, x := range T.rejected.Values() {
		cc = append(cc, x.(Claim))
	}
	return cc
}

// owns checks that A is a row and t is a column of this table.
func (T *ParseTable) owns(A, t *Symbol) bool {
	if !A.IsNonTerminal() || A.Value < 0 || A.Value >= len(T.g.nonterminals) || T.g.nonterminals[A.Value] != A {
		return false
	}
	if !t.IsTerminal() || t.Value < 0 || t.Value >= len(T.g.terminals) || T.g.terminals[t.Value] != t {
		return false
	}
	return true
}
