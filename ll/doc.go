/*
Package ll implements static analysis of grammars for LL(1) parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Symbols are
single characters: upper case letters denote non-terminals, lower case
letters denote terminals. Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS('S').N('A').T('b').End()     // S  ->  A b
    b.LHS('A').T('a').End()            // A  ->  a
    b.LHS('A').Epsilon()               // A  ->  ϵ
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   1: S → Ab
   2: A → a
   3: A → ϵ

By convention S is the start symbol of a grammar.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Analysis first runs a
heuristic check for LL(1) conformance, rejecting grammars with direct left
recursion or with alternatives sharing a FIRST symbol. It then runs a fixed
pipeline of stages, each consuming the grammar and the results of prior stages:

    nullable non-terminals
    → BDW  (begins directly with)  → BW  (begins with)  → FIRST sets
    → FDB  (followed directly by)
    → DEO  (directly ends with)    → EO  (ends with)
    → FB   (followed by, including end of input ←)
    → FOLLOW sets for nullable non-terminals
    → SELECT sets for every rule

Example:

    ga, err := ll.Analyze(g)        // analyser for grammar above
    ga.First().Of(llkit.N('A'))     // {a, ϵ}
    ga.Follow().Of(llkit.N('A'))    // {b}
    ga.Select()[2].Set              // {b} for A → ϵ

A nullable non-terminal immediately followed by a terminal is not an end of
that terminal, thus FOLLOW(A) above does not contain the end marker ←. Option
WithTerminalAdjacentEnds(true) adds these pairs to DEO, which yields
FOLLOW(A) = {b, ←} for the grammar above.

Every stage is available on its own as well, for example

    nullable := ll.FindNullable(g)
    bdw := ll.BeginsDirectlyWith(g, nullable)

An analysis produces a report listing the results of every stage, see
Analysis.Report.

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

// tracer traces with key 'llkit.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llkit.ll")
}
