package ll

import "testing"

func TestSymbolSetAdd(t *testing.T) {
	a := &Symbol{Name: "a"}
	b := &Symbol{Name: "b"}
	S := NewSymbolSet(b)
	if !S.Add(a) {
		t.Errorf("expected a to be new in S")
	}
	if S.Add(a) {
		t.Errorf("expected a to be present in S")
	}
	if S.Size() != 2 || S.String() != "{b, a}" {
		t.Errorf("expected S = {b, a}, is %v", S)
	}
	expectNames(t, "sorted S", S.Sorted(), "a", "b")
}

func TestSymbolSetUnion(t *testing.T) {
	a := &Symbol{Name: "a"}
	b := &Symbol{Name: "b"}
	S := NewSymbolSet(a)
	if !S.Union(NewSymbolSet(a, b)) {
		t.Errorf("expected union to change S")
	}
	if S.Union(NewSymbolSet(b)) {
		t.Errorf("expected union not to change S")
	}
	if S.Union(nil) {
		t.Errorf("expected union with nil not to change S")
	}
	W := S.Without(a)
	if W.Contains(a) || !S.Contains(a) {
		t.Errorf("expected Without to return a modified copy")
	}
	if !S.Equals(NewSymbolSet(b, a)) || S.Equals(W) {
		t.Errorf("set equality broken")
	}
	var N *SymbolSet
	if N.Contains(a) || !N.Empty() {
		t.Errorf("expected nil set to be empty")
	}
}

func TestSymbolSetSortedReserved(t *testing.T) {
	eof := &Symbol{Name: EOF.Name, Kind: Terminal}
	S := NewSymbolSet(EOF, eof, Epsilon)
	sorted := S.Sorted()
	if len(sorted) != 3 {
		t.Fatalf("expected 3 symbols, have %v", sorted)
	}
	if sorted[0] != eof || sorted[1] != EOF {
		t.Errorf("expected equally named symbols ordered by kind, have %v", sorted)
	}
}

func TestSymbolSetsCopies(t *testing.T) {
	a := &Symbol{Name: "a"}
	A := &Symbol{Name: "A", Kind: NonTerminal}
	m := newSymbolSets("test")
	m.put(A, NewSymbolSet(a))
	S := m.Get(A)
	S.Add(Epsilon)
	if m.set(A).Contains(Epsilon) {
		t.Errorf("expected Get to return a copy")
	}
	if _, ok := m.Lookup(a); ok {
		t.Errorf("expected no set for a")
	}
	if !m.Get(a).Empty() {
		t.Errorf("expected empty default set for a")
	}
}
