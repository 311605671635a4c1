package ll

import (
	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll/relation"
)

// BeginsDirectlyWith computes relation BDW. For every production of A, A BDW X
// holds for the first symbol X of the production, and for every symbol
// following a prefix of nullable non-terminals. Epsilon productions do not
// contribute.
//
//    S → A b,  A nullable   ⇒   S BDW A,  S BDW b
//
func BeginsDirectlyWith(g *Grammar, nullable *NullableSet) *relation.Relation {
	bdw := relation.New(relation.BeginsDirectlyWith)
	for _, r := range g.Rules() {
		if r.rhs.IsEpsilon() {
			continue
		}
		for _, X := range r.rhs {
			bdw.Add(r.LHS, X)
			if !nullable.IsNullable(X) {
				break
			}
		}
	}
	tracer().Debugf("BDW = %v", bdw)
	return bdw
}

// BeginsWith computes relation BW as the transitive and reflexive closure of BDW.
// Reflexive pairs are added for every left hand side of BDW and for every
// terminal of g.
func BeginsWith(g *Grammar, bdw *relation.Relation) *relation.Relation {
	universe := append([]llkit.Symbol{}, bdw.Lefts()...)
	universe = append(universe, g.Terminals()...)
	bw := relation.Close(bdw, relation.BeginsWith, universe)
	tracer().Debugf("BW = %v", bw)
	return bw
}
