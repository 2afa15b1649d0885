package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// exprGrammar is the classic right-recursive expression grammar from
// "Engineering a Compiler", Figure 3.4.
func exprGrammar(t *testing.T) *Grammar {
	t.Helper()
	b := NewGrammarBuilder("Expr")
	b.Row("*Goal", "Expr")
	b.Row("Expr", "Term Expr'")
	b.Row("Expr'", "+ Term Expr'")
	b.Row("Expr'", "- Term Expr'")
	b.Row("Expr'", "ε")
	b.Row("Term", "Factor Term'")
	b.Row("Term'", "* Factor Term'")
	b.Row("Term'", "/ Factor Term'")
	b.Row("Term'", "ε")
	b.Row("Factor", "( Expr )")
	b.Row("Factor", "num")
	b.Row("Factor", "name")
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// simpleGrammar is S → A, A → a A | ε.
func simpleGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := NewGrammarBuilder("Simple").Row("*S", "A").Row("A", "a A").Row("A", "").Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFirstSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := simpleGrammar(t)
	first := ComputeFirst(g)
	expectSet(t, "FIRST(*S)", first.Get(g.Symbol("*S")), "a", "ε")
	expectSet(t, "FIRST(A)", first.Get(g.Symbol("A")), "a", "ε")
	expectSet(t, "FIRST(a)", first.Get(g.Symbol("a")), "a")
	expectSet(t, "FIRST(#eof)", first.Get(EOF), "#eof")
	expectSet(t, "FIRST(ε)", first.Get(Epsilon), "ε")
	expectNames(t, "FIRST keys", first.Symbols(), "*S", "A", "#eof", "a", "ε")
}

func TestFirstExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := exprGrammar(t)
	first := ComputeFirst(g)
	for _, test := range []struct {
		A     string
		first []string
	}{
		{"*Goal", []string{"(", "name", "num"}},
		{"Expr", []string{"(", "name", "num"}},
		{"Expr'", []string{"+", "-", "ε"}},
		{"Term", []string{"(", "name", "num"}},
		{"Term'", []string{"*", "/", "ε"}},
		{"Factor", []string{"(", "name", "num"}},
		{"*", []string{"*"}},
	} {
		expectSet(t, "FIRST("+test.A+")", first.Get(g.Symbol(test.A)), test.first...)
	}
}

func TestFirstNullableChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Chain")
	b.Row("*S", "A B C d")
	b.Row("*S", "A B")
	b.Row("A", "a").Row("A", "")
	b.Row("B", "b").Row("B", "")
	b.Row("C", "c").Row("C", "")
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	first := ComputeFirst(g)
	expectSet(t, "FIRST(*S)", first.Get(g.Symbol("*S")), "a", "b", "c", "d", "ε")
	R := firstOfRHS(first, g.Rule(0).rhs)
	expectSet(t, "FIRST(A B C d)", R, "a", "b", "c", "d")
	R = firstOfRHS(first, g.Rule(1).rhs)
	expectSet(t, "FIRST(A B)", R, "a", "b", "ε")
}

func TestFirstSoundness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := exprGrammar(t)
	first := ComputeFirst(g)
	for _, r := range g.Rules() {
		for _, w := range firstOfRHS(first, r.rhs).Symbols() {
			if !first.Get(r.LHS).Contains(w) {
				t.Errorf("FIRST(%s) misses %s, derived by rule %v", r.LHS, w, r)
			}
		}
	}
	for _, T := range g.Terminals() {
		expectSet(t, "FIRST("+T.Name+")", first.Get(T), T.Name)
	}
}

func TestFollowSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := simpleGrammar(t)
	follow, err := ComputeFollow(g, ComputeFirst(g))
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, "FOLLOW(*S)", follow.Get(g.Symbol("*S")), "#eof")
	expectSet(t, "FOLLOW(A)", follow.Get(g.Symbol("A")), "#eof")
	expectSet(t, "FOLLOW(ε)", follow.Get(Epsilon), "ε")
}

func TestFollowExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := exprGrammar(t)
	follow, err := ComputeFollow(g, ComputeFirst(g))
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		A      string
		follow []string
	}{
		{"*Goal", []string{"#eof"}},
		{"Expr", []string{"#eof", ")"}},
		{"Expr'", []string{"#eof", ")"}},
		{"Term", []string{"#eof", "+", "-", ")"}},
		{"Term'", []string{"#eof", "+", "-", ")"}},
		{"Factor", []string{"#eof", "+", "-", "*", "/", ")"}},
	} {
		expectSet(t, "FOLLOW("+test.A+")", follow.Get(g.Symbol(test.A)), test.follow...)
	}
}

func TestFollowThroughNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g, err := NewGrammarBuilder("G").Row("*S", "B C d").Row("B", "b").
		Row("C", "c").Row("C", "").Grammar()
	if err != nil {
		t.Fatal(err)
	}
	follow, err := ComputeFollow(g, ComputeFirst(g))
	if err != nil {
		t.Fatal(err)
	}
	expectSet(t, "FOLLOW(B)", follow.Get(g.Symbol("B")), "c", "d")
	expectSet(t, "FOLLOW(C)", follow.Get(g.Symbol("C")), "d")
}

func TestFollowMissingStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g, err := NewGrammarBuilder("G").Row("S", "a").Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if _, err = ComputeFollow(g, ComputeFirst(g)); !errors.Is(err, ErrMissingStartSymbol) {
		t.Errorf("expected ErrMissingStartSymbol, have %v", err)
	}
}

func TestFirstPlusLaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := exprGrammar(t)
	first := ComputeFirst(g)
	follow, err := ComputeFollow(g, first)
	if err != nil {
		t.Fatal(err)
	}
	firstPlus := ComputeFirstPlus(first, follow)
	if firstPlus.Size() != first.Size() {
		t.Errorf("expected FIRST+ for each of %d symbols, have %d", first.Size(), firstPlus.Size())
	}
	first.Each(func(A *Symbol, F *SymbolSet) {
		expected := F.Copy()
		if F.Contains(Epsilon) {
			expected.Union(follow.set(A))
		}
		if !firstPlus.Get(A).Equals(expected) {
			t.Errorf("expected FIRST+(%s) = %v, is %v", A, expected, firstPlus.Get(A))
		}
	})
	expectSet(t, "FIRST+(Expr')", firstPlus.Get(g.Symbol("Expr'")), "#eof", ")", "+", "-", "ε")
	expectSet(t, "FIRST+(Factor)", firstPlus.Get(g.Symbol("Factor")), "(", "name", "num")
}

// --- Helpers ---------------------------------------------------------------

// expectSet compares S to a list of names, disregarding order.
func expectSet(t *testing.T, what string, S *SymbolSet, names ...string) {
	t.Helper()
	if S.Size() != len(names) {
		t.Errorf("expected %s = %v, is %v", what, names, S)
		return
	}
	members := make(map[string]bool)
	for _, A := range S.Symbols() {
		members[A.Name] = true
	}
	for _, n := range names {
		if !members[n] {
			t.Errorf("expected %s = %v, is %v", what, names, S)
			return
		}
	}
}
