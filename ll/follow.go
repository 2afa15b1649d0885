package ll

import "fmt"

// ComputeFollow computes FOLLOW(A) for every non-terminal A of g, given
// the (final) FIRST sets.
//
// FOLLOW(start) is seeded with EOF, all other sets start out empty. Each pass
// walks every rule from right to left, carrying a trailer of the terminals
// which may follow the current position. Passes are repeated until no set
// changes.
//
// For convenience FOLLOW(ε) is defined as FIRST(ε).
//
// ComputeFollow returns ErrMissingStartSymbol if g has no start symbol.
func ComputeFollow(g *Grammar, first *SymbolSets) (*SymbolSets, error) {
	S := g.Start()
	if S == nil {
		return nil, fmt.Errorf("%w: no left-hand side of grammar %q is marked as start symbol",
			ErrMissingStartSymbol, g.Name)
	}
	follow := newSymbolSets("FOLLOW")
	for _, A := range g.nonterminals {
		if A == S {
			follow.put(A, NewSymbolSet(EOF))
		} else {
			follow.put(A, NewSymbolSet())
		}
	}
	pass := 0
	for changed := true; changed; {
		changed = false
		pass++
		for _, A := range g.nonterminals {
			for _, r := range g.alts[A] {
				if followPass(r, first, follow) {
					changed = true
				}
			}
		}
	}
	follow.put(Epsilon, first.set(Epsilon).Copy())
	tracer().Infof("FOLLOW sets complete after %d passes", pass)
	return follow, nil
}

// followPass scans rule r from right to left and returns true if any
// FOLLOW set changed.
func followPass(r *Rule, first, follow *SymbolSets) bool {
	changed := false
	trailer := follow.set(r.LHS).Copy()
	for i := len(r.rhs) - 1; i >= 0; i-- {
		B := r.rhs[i]
		if B.IsNonTerminal() {
			if follow.set(B).Union(trailer) {
				tracer().Debugf("FOLLOW(%s) += %v by rule %d", B, trailer, r.Serial)
				changed = true
			}
			if fB := first.set(B); fB.Contains(Epsilon) {
				trailer.Union(fB.Without(Epsilon))
			} else {
				trailer = fB.Copy()
			}
		} else {
			trailer = first.set(B).Copy()
		}
	}
	return changed
}
