package ll

// ComputeFirst computes FIRST(X) for every symbol X of g.
//
// FIRST(t) = {t} for terminals, FIRST(ε) = {ε}. For non-terminals the sets
// start out empty and grow in passes over all the rules until a complete
// pass adds nothing. Sets are drawn from the finite set of terminals plus ε,
// therefore the iteration terminates.
//
// Refer to "Engineering a Compiler" by K. Cooper & L. Torczon,
// Section 3.3.1, Figure 3.7.
func ComputeFirst(g *Grammar) *SymbolSets {
	first := newSymbolSets("FIRST")
	for _, A := range g.nonterminals {
		first.put(A, NewSymbolSet())
	}
	for _, t := range g.terminals {
		first.put(t, NewSymbolSet(t))
	}
	first.put(Epsilon, NewSymbolSet(Epsilon))
	pass := 0
	for changed := true; changed; {
		changed = false
		pass++
		for _, r := range g.rules {
			rhs := firstOfRHS(first, r.rhs)
			if first.set(r.LHS).Union(rhs) {
				tracer().Debugf("FIRST(%s) += %v by rule %d", r.LHS, rhs, r.Serial)
				changed = true
			}
		}
	}
	tracer().Infof("FIRST sets complete after %d passes", pass)
	return first
}

// firstOfRHS returns the terminals which may start a string derived from
// B1 … Bk, plus ε if all of B1 … Bk may derive ε. An empty sequence derives ε.
func firstOfRHS(first *SymbolSets, rhs []*Symbol) *SymbolSet {
	k := len(rhs)
	if k == 0 {
		return NewSymbolSet(Epsilon)
	}
	R := first.set(rhs[0]).Without(Epsilon)
	i := 0
	for first.set(rhs[i]).Contains(Epsilon) && i < k-1 {
		R.Union(first.set(rhs[i+1]).Without(Epsilon))
		i++
	}
	if i == k-1 && first.set(rhs[k-1]).Contains(Epsilon) {
		R.Add(Epsilon)
	}
	return R
}
