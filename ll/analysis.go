package ll

import (
	"fmt"

	"github.com/cnf/structhash"
)

// LLAnalysis is the result of analysing a grammar: FIRST, FOLLOW and FIRST+
// sets and the parse table derived from them. It is immutable.
type LLAnalysis struct {
	g         *Grammar
	first     *SymbolSets
	follow    *SymbolSets
	firstPlus *SymbolSets
	table     *ParseTable
	conflicts []Conflict
}

// Analysis runs the analysis pipeline for a grammar. Stages run in order
// and each stage works on the final results of the previous one:
//
//    FIRST → FOLLOW → FIRST+ → parse table
//
// Analysis fails with ErrMissingStartSymbol if g has no start symbol.
func Analysis(g *Grammar) (*LLAnalysis, error) {
	tracer().Debugf("=== analysis of grammar %s ======================", g.Name)
	ga := &LLAnalysis{g: g}
	ga.first = ComputeFirst(g)
	var err error
	if ga.follow, err = ComputeFollow(g, ga.first); err != nil {
		return nil, err
	}
	ga.firstPlus = ComputeFirstPlus(ga.first, ga.follow)
	ga.table = BuildTable(g, ga.firstPlus)
	ga.conflicts = detectConflicts(g, ga.follow, ga.firstPlus)
	if len(ga.conflicts) > 0 {
		tracer().Infof("grammar %s is not LL(1): %d conflicts", g.Name, len(ga.conflicts))
	}
	return ga, nil
}

// Grammar returns the analysed grammar.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(A).
func (ga *LLAnalysis) First(A *Symbol) *SymbolSet {
	return ga.first.Get(A)
}

// Follow returns FOLLOW(A).
func (ga *LLAnalysis) Follow(A *Symbol) *SymbolSet {
	return ga.follow.Get(A)
}

// FirstPlus returns FIRST+(A).
func (ga *LLAnalysis) FirstPlus(A *Symbol) *SymbolSet {
	return ga.firstPlus.Get(A)
}

// FirstSets returns the FIRST sets of all symbols. Clients must not modify them.
func (ga *LLAnalysis) FirstSets() *SymbolSets {
	return ga.first
}

// FollowSets returns the FOLLOW sets of all non-terminals. Clients must not modify them.
func (ga *LLAnalysis) FollowSets() *SymbolSets {
	return ga.follow
}

// FirstPlusSets returns the FIRST+ sets of all symbols. Clients must not modify them.
func (ga *LLAnalysis) FirstPlusSets() *SymbolSets {
	return ga.firstPlus
}

// Table returns the parse table.
func (ga *LLAnalysis) Table() *ParseTable {
	return ga.table
}

// --- Conflicts -------------------------------------------------------------

// Conflict reports a table cell M[LHS,Terminal] which more than one
// alternative of LHS predicts. The table holds the first of Alts.
type Conflict struct {
	LHS      *Symbol
	Terminal *Symbol
	Alts     []int
}

func (c Conflict) String() string {
	return fmt.Sprintf("M[%s,%s] predicted by alternatives %v", c.LHS, c.Terminal, c.Alts)
}

// Conflicts returns the LL(1) conflicts of the grammar, ordered by row and
// column. Conflicts are informational only: the table resolves them in
// favour of the alternative declared first.
func (ga *LLAnalysis) Conflicts() []Conflict {
	return append([]Conflict(nil), ga.conflicts...)
}

// IsLL1 is true if no cell is predicted by more than one alternative.
func (ga *LLAnalysis) IsLL1() bool {
	return len(ga.conflicts) == 0
}

// detectConflicts computes the lookaheads predicting each alternative the way
// BuildTable does, but with ε-alternatives predicting FOLLOW(LHS) only.
// The rest of FIRST+(LHS) belongs to the siblings of an ε-alternative.
func detectConflicts(g *Grammar, follow, firstPlus *SymbolSets) []Conflict {
	var conflicts []Conflict
	for _, A := range g.nonterminals {
		predicted := make(map[*Symbol][]int)
		for _, r := range g.alts[A] {
			lead := NewSymbolSet(Epsilon)
			if !r.IsEpsilon() {
				lead = firstPlus.set(r.rhs[0])
			}
			P := lead.Without(Epsilon)
			if lead.Contains(Epsilon) {
				P.Union(follow.set(A))
			}
			for _, t := range P.Symbols() {
				predicted[t] = append(predicted[t], r.Alt)
			}
		}
		for _, t := range g.terminals {
			if alts := predicted[t]; len(alts) > 1 {
				conflicts = append(conflicts, Conflict{LHS: A, Terminal: t, Alts: alts})
			}
		}
	}
	return conflicts
}

// --- Fingerprints ----------------------------------------------------------

type setsSnapshot struct {
	Symbol  string
	Kind    int
	Members []string
}

type cellSnapshot struct {
	Row, Col, Alt int
}

type analysisSnapshot struct {
	Grammar   string
	First     []setsSnapshot
	Follow    []setsSnapshot
	FirstPlus []setsSnapshot
	Table     []cellSnapshot
}

// Fingerprint returns a hash over the canonical form of all analysis results.
// Analysing the same grammar twice yields the same fingerprint.
func (ga *LLAnalysis) Fingerprint() (string, error) {
	snap := analysisSnapshot{
		Grammar:   ga.g.Name,
		First:     snapshotSets(ga.first),
		Follow:    snapshotSets(ga.follow),
		FirstPlus: snapshotSets(ga.firstPlus),
	}
	ga.table.matrix.Each(func(i, j int, v int32) {
		snap.Table = append(snap.Table, cellSnapshot{Row: i, Col: j, Alt: int(v)})
	})
	return structhash.Hash(snap, 1)
}

func snapshotSets(sets *SymbolSets) []setsSnapshot {
	snap := make([]setsSnapshot, 0, sets.Size())
	sets.Each(func(A *Symbol, S *SymbolSet) {
		entry := setsSnapshot{Symbol: A.Name, Kind: int(A.Kind)}
		for _, B := range S.Sorted() {
			entry.Members = append(entry.Members, B.Name)
		}
		snap = append(snap, entry)
	})
	return snap
}
