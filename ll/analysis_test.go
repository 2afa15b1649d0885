package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAnalysisSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := simpleGrammar(t)
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	A := g.Symbol("A")
	expectSet(t, "FIRST(A)", ga.First(A), "a", "ε")
	expectSet(t, "FOLLOW(A)", ga.Follow(A), "#eof")
	expectSet(t, "FIRST+(A)", ga.FirstPlus(A), "a", "ε", "#eof")
	if !ga.IsLL1() {
		t.Errorf("expected grammar to be LL(1), conflicts are %v", ga.Conflicts())
	}
	if ga.Table().Size() != 4 {
		t.Errorf("expected 4 table entries, have %d", ga.Table().Size())
	}
}

func TestAnalysisExprIsLL1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	ga, err := Analysis(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	if !ga.IsLL1() {
		t.Errorf("expected expression grammar to be LL(1), conflicts are %v", ga.Conflicts())
	}
	if len(ga.Table().RejectedClaims()) == 0 {
		t.Errorf("expected epsilon-alternatives to leave rejected claims")
	}
}

func TestAnalysisConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g, err := NewGrammarBuilder("G").Row("*S", "A").Row("A", "x").Row("A", "x y").Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	if ga.IsLL1() {
		t.Fatalf("expected grammar not to be LL(1)")
	}
	cc := ga.Conflicts()
	if len(cc) != 1 {
		t.Fatalf("expected 1 conflict, have %v", cc)
	}
	c := cc[0]
	if c.LHS.Name != "A" || c.Terminal.Name != "x" || len(c.Alts) != 2 || c.Alts[0] != 0 || c.Alts[1] != 1 {
		t.Errorf("unexpected conflict %v", c)
	}
	t.Logf("conflict: %v", c)
}

func TestAnalysisEpsilonConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	// FOLLOW(A) contains a, which is also predicted by A → a
	g, err := NewGrammarBuilder("G").Row("*S", "A a").Row("A", "a").Row("A", "").Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	cc := ga.Conflicts()
	if len(cc) != 1 || cc[0].LHS.Name != "A" || cc[0].Terminal.Name != "a" {
		t.Errorf("expected conflict on M[A,a], have %v", cc)
	}
}

func TestAnalysisMissingStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g, err := NewGrammarBuilder("G").Row("S", "a").Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if _, err = Analysis(g); !errors.Is(err, ErrMissingStartSymbol) {
		t.Errorf("expected ErrMissingStartSymbol, have %v", err)
	}
}

func TestAnalysisIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := exprGrammar(t)
	fp := make([]string, 3)
	for i, gg := range []*Grammar{g, g, exprGrammar(t)} {
		ga, err := Analysis(gg)
		if err != nil {
			t.Fatal(err)
		}
		if fp[i], err = ga.Fingerprint(); err != nil {
			t.Fatal(err)
		}
	}
	if fp[0] != fp[1] || fp[0] != fp[2] {
		t.Errorf("expected identical fingerprints, have %v", fp)
	}
	ga, _ := Analysis(simpleGrammar(t))
	other, _ := ga.Fingerprint()
	if other == fp[0] {
		t.Errorf("expected different grammars to have different fingerprints")
	}
}

func TestAnalysisSetsAreCopies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := simpleGrammar(t)
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	S := ga.First(g.Symbol("A"))
	S.Add(EOF)
	if ga.First(g.Symbol("A")).Contains(EOF) {
		t.Errorf("expected First() to return a copy")
	}
}
