package ll

// ComputeFirstPlus combines FIRST and FOLLOW sets:
//
//    FIRST+(X) = FIRST(X)                  if ε ∉ FIRST(X)
//    FIRST+(X) = FIRST(X) ∪ FOLLOW(X)      otherwise
//
// FIRST+ is computed for every symbol which has a FIRST set, including
// terminals and ε, as the table builder looks up the leading symbol of
// a rule regardless of its kind.
func ComputeFirstPlus(first, follow *SymbolSets) *SymbolSets {
	firstp := newSymbolSets("FIRST+")
	first.Each(func(A *Symbol, S *SymbolSet) {
		P := S.Copy()
		if S.Contains(Epsilon) {
			P.Union(follow.set(A))
		}
		firstp.put(A, P)
	})
	return firstp
}
