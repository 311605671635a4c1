/*
Package relation implements binary relations over grammar symbols.

A relation is a set of ordered pairs of symbols, for example

    A BW a     // A begins with a

Relations remember the order in which pairs have been added and, for every
pair, how it came into the relation: by direct construction, by transitive
closure or by reflexive closure. Grammar analysis uses this information for
reporting only; the set of pairs is what counts for correctness.

Closures are computed by naive fixpoint iteration. The symbol universe is
small (see llkit.SymbolCount), so every closure is bounded by
SymbolCount² pairs.

    bdw := relation.New(relation.BeginsDirectlyWith)
    bdw.Add(llkit.N('S'), llkit.N('A'))
    bdw.Add(llkit.N('A'), llkit.T('a'))
    bw := relation.Close(bdw, relation.BeginsWith, universe)
    bw.Contains(llkit.N('S'), llkit.T('a'))   // true, transitive

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package relation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llkit.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llkit.ll")
}
