package ll

import (
	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll/relation"
)

// FollowedDirectlyBy computes relation FDB. For every non-terminal X at position i
// of a production, X FDB Y holds for the symbol Y at position i+1. Nullable
// non-terminals pass adjacency on: with N nullable,
//
//    A → X N Y   ⇒   X FDB N,  N FDB Y,  X FDB Y
//
// Runs of more than one nullable non-terminal are bridged as well.
// Positions outside the production contribute nothing.
func FollowedDirectlyBy(g *Grammar, nullable *NullableSet) *relation.Relation {
	fdb := relation.New(relation.FollowedDirectlyBy)
	for _, r := range g.Rules() {
		p := r.rhs
		for i, X := range p {
			if !X.IsNonTerminal() {
				continue
			}
			for j := i + 1; j < len(p); j++ {
				fdb.Add(X, p[j])
				if !nullable.IsNullable(p[j]) {
					break
				}
			}
		}
	}
	tracer().Debugf("FDB = %v", fdb)
	return fdb
}

// DirectlyEndsWith computes relation DEO. Pairs read "X DEO A": X is a direct end of A.
// For every production of A, scanning right to left, every symbol up to and
// including the first terminal or non-nullable non-terminal is a direct end of A.
// A nullable A is an end of itself.
//
// The second return value lists pairs (N, t) for nullable non-terminals N
// immediately followed by a terminal t. These are part of DEO only if
// withAdjacency is set (see option WithTerminalAdjacentEnds).
//
// Pairs are returned in canonical order.
func DirectlyEndsWith(g *Grammar, nullable *NullableSet, withAdjacency bool) (*relation.Relation, []relation.Pair) {
	var pairs, adjacent []relation.Pair
	seen := make(map[relation.Pair]bool)
	for _, r := range g.Rules() {
		A, p := r.LHS, r.rhs
		if p.IsEpsilon() {
			continue
		}
		for i := len(p) - 1; i >= 0; i-- {
			pairs = append(pairs, relation.P(p[i], A))
			if !nullable.IsNullable(p[i]) {
				break
			}
		}
		if nullable.IsNullable(A) {
			pairs = append(pairs, relation.P(A, A))
		}
		for i := 0; i+1 < len(p); i++ {
			if nullable.IsNullable(p[i]) && p[i+1].IsTerminal() {
				adj := relation.P(p[i], p[i+1])
				if !seen[adj] {
					seen[adj] = true
					adjacent = append(adjacent, adj)
				}
			}
		}
	}
	if withAdjacency {
		pairs = append(pairs, adjacent...)
	}
	relation.SortPairs(pairs)
	relation.SortPairs(adjacent)
	deo := relation.New(relation.DirectlyEndsWith)
	for _, pair := range pairs {
		deo.Add(pair.Left, pair.Right)
	}
	tracer().Debugf("DEO = %v", deo)
	return deo, adjacent
}

// EndsWith computes relation EO as the transitive and reflexive closure of DEO.
// Reflexive pairs are added for every non-terminal and every terminal of g.
func EndsWith(g *Grammar, deo *relation.Relation) *relation.Relation {
	universe := append([]llkit.Symbol{}, g.NonTerminals()...)
	for _, A := range g.ReferencedNonTerminals() {
		if !g.IsDefined(A) {
			universe = append(universe, A)
		}
	}
	universe = append(universe, g.Terminals()...)
	eo := relation.Close(deo, relation.EndsWith, universe)
	tracer().Debugf("EO = %v", eo)
	return eo
}

// FollowedBy computes relation FB: X FB Z holds for every chain
//
//    X EO A,  A FDB Y,  Y BW Z
//
// In addition, every non-terminal A with A EO start is followed by the end
// marker ←.
func FollowedBy(eo, fdb, bw *relation.Relation, start llkit.Symbol) *relation.Relation {
	fb := relation.Compose(relation.FollowedBy, eo, fdb, bw)
	eo.Each(func(p relation.Pair) {
		if p.Right == start && p.Left.IsNonTerminal() {
			fb.Add(p.Left, llkit.EndMarker)
		}
	})
	tracer().Debugf("FB = %v", fb)
	return fb
}
