package relation

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/llkit"
)

// Close computes the transitive and reflexive closure of seed. Pairs of seed
// become direct pairs of the result. Reflexive pairs (x,x) are added for every x
// in universe, except for ϵ, if not already present.
//
// seed is not modified.
func Close(seed *Relation, tag Tag, universe []llkit.Symbol) *Relation {
	r := New(tag)
	seed.Each(func(p Pair) {
		r.add(p, Direct)
	})
	closeTransitive(r)
	for _, x := range universe {
		if x.IsEpsilon() {
			continue
		}
		r.add(P(x, x), Reflexive)
	}
	tracer().Debugf("closure %s: %d direct, %d transitive, %d reflexive", tag,
		r.origins.Count(int8(Direct)), r.origins.Count(int8(Transitive)),
		r.origins.Count(int8(Reflexive)))
	return r
}

// closeTransitive adds (a,c) for every (a,b), (b,c) until nothing changes.
// Every pass either adds a pair from the bounded symbol space or terminates.
func closeTransitive(r *Relation) {
	for pass := 1; ; pass++ {
		added := 0
		succ := r.successors()
		for _, p := range r.Pairs() {
			for _, c := range succ[p.Right] {
				if r.add(P(p.Left, c), Transitive) {
					added++
				}
			}
		}
		tracer().Debugf("transitive closure of %s, pass %d: %d new pairs", r.tag, pass, added)
		if added == 0 {
			return
		}
	}
}

// Compose joins relations from left to right: for rels R1, R2, …, Rn the
// result contains (a,z) iff there is a chain (a,b) ∈ R1, (b,c) ∈ R2, … ,
// (y,z) ∈ Rn. All pairs of the result are direct pairs.
// Intermediate joins are free of duplicates, thus bounded by the symbol space.
func Compose(tag Tag, rels ...*Relation) *Relation {
	result := New(tag)
	if len(rels) == 0 {
		return result
	}
	current := rels[0].Pairs()
	for _, next := range rels[1:] {
		succ := next.successors()
		joined := linkedhashset.New()
		for _, p := range current {
			for _, c := range succ[p.Right] {
				joined.Add(P(p.Left, c))
			}
		}
		current = make([]Pair, 0, joined.Size())
		it := joined.Iterator()
		for it.Next() {
			current = append(current, it.Value().(Pair))
		}
		tracer().Debugf("compose %s: %d intermediate pairs", tag, len(current))
	}
	for _, p := range current {
		result.add(p, Direct)
	}
	return result
}
