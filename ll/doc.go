/*
Package ll implements the analysis steps needed for LL(1) predictive parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients either add
tabular rows, consisting of a left-hand side and a whitespace-separated
right-hand side, or use the fluent rule interface. Symbols are classified
by their spelling: names starting with an upper-case letter are non-terminals,
everything else is a terminal. The start symbol carries a leading marker,
'*' by default.

Example:

    b := ll.NewGrammarBuilder("G")
    b.Row("*S", "A")              // *S ->  A
    b.Row("A", "a A")             // A  ->  a A
    b.Row("A", "ε")               // A  ->
    g, err := b.Grammar()

The same grammar with the fluent interface:

    b.LHS("*S").Sym("A").End()
    b.LHS("A").Sym("a", "A").End()
    b.LHS("A").Epsilon()

This results in the following grammar:

   g.Dump()

   0: [*S] ::= [A]
   1: [A] ::= [a A]
   2: [A] ::= []

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Analysis computes
FIRST, FOLLOW and FIRST+ sets to a fixed point and builds the parse table
from them. Every stage runs exactly once, in this order.

    ga, err := ll.Analysis(g)
    for _, A := range g.NonTerminals() {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
    }

    // Output:
    FIRST(*S) = {a, ε}
    FIRST(A) = {a, ε}

The Parse Table

The table maps a non-terminal and a lookahead terminal to the index of the
alternative (per left-hand side, starting at 0) to expand. Table cells are
claimed on a first-come-first-served basis: if two alternatives compete for
a cell, the one declared first wins. Rejected claims are recorded, but
are not treated as errors.

    T := ga.Table()
    alt, ok := T.LookupName("A", "a")     // => 0, true

Grammars which are not LL(1) still get a table. Use ga.IsLL1() and
ga.Conflicts() to find the cells more than one alternative predicts.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgen.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llgen.ll")
}
