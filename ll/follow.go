package ll

import (
	"fmt"

	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll/relation"
)

// FollowSets holds FOLLOW(A) for nullable non-terminals A. Non-nullable
// non-terminals are not needed to compute SELECT sets and are left out.
type FollowSets struct {
	sets  map[llkit.Symbol]*SymbolSet
	order []llkit.Symbol
}

// ComputeFollowSets derives FOLLOW(A) = { Y | A FB Y, Y terminal or ← } for every
// nullable non-terminal A.
func ComputeFollowSets(g *Grammar, nullable *NullableSet, fb *relation.Relation) *FollowSets {
	fs := &FollowSets{sets: make(map[llkit.Symbol]*SymbolSet)}
	for _, A := range g.ReferencedNonTerminals() {
		if nullable.IsNullable(A) {
			fs.sets[A] = NewSymbolSet()
			fs.order = append(fs.order, A)
		}
	}
	fb.Each(func(p relation.Pair) {
		if S, ok := fs.sets[p.Left]; ok && (p.Right.IsTerminal() || p.Right.IsEndMarker()) {
			S.Add(p.Right)
		}
	})
	return fs
}

// Of returns FOLLOW(A). The second return value is false if A is not nullable.
func (fs *FollowSets) Of(A llkit.Symbol) (*SymbolSet, bool) {
	S, ok := fs.sets[A]
	return S, ok
}

// NonTerminals returns the nullable non-terminals in order of declaration.
func (fs *FollowSets) NonTerminals() []llkit.Symbol {
	return fs.order
}

// Strings returns the FOLLOW sets in report notation, e.g. "Fol(A) = {b, ←}".
func (fs *FollowSets) Strings() []string {
	lines := make([]string, len(fs.order))
	for i, A := range fs.order {
		lines[i] = fmt.Sprintf("Fol(%s) = %v", A, fs.sets[A])
	}
	return lines
}

// --- Select sets -----------------------------------------------------------

// SelectSet is the SELECT set of a single rule.
type SelectSet struct {
	Rule *Rule
	Set  *SymbolSet
}

func (s SelectSet) String() string {
	return fmt.Sprintf("Sel(%d) = %v   [%v]", s.Rule.Serial, s.Set, s.Rule)
}

// SelectSets holds a SELECT set per rule, in declaration order.
type SelectSets []SelectSet

// ComputeSelectSets derives the SELECT set of every rule A → α:
//
//    α = ϵ :        FOLLOW(A), empty if A is not nullable
//    otherwise:     FIRST(α); if every symbol of α is nullable, FIRST(α) contains ϵ
//                   and FOLLOW(A) is added
//
// Adding FOLLOW(A) for all-nullable productions goes beyond a SELECT set of
// FIRST(α) alone: such a production may derive ϵ, so it is selected by every
// symbol that may follow A, just like an epsilon production.
// An empty SELECT set for an epsilon production hints at a broken grammar.
func ComputeSelectSets(g *Grammar, nullable *NullableSet, first *FirstSets, follow *FollowSets) SelectSets {
	sel := make(SelectSets, 0, g.Size())
	for _, r := range g.Rules() {
		S := NewSymbolSet()
		fol, isNullable := follow.Of(r.LHS)
		if r.rhs.IsEpsilon() {
			if !isNullable {
				tracer().Infof("epsilon rule %v without FOLLOW set", r)
			}
			S.AddAll(fol, true)
		} else {
			S.AddAll(first.OfSequence(r.rhs), true)
			if S.Contains(llkit.Epsilon) {
				S.AddAll(fol, true)
			}
		}
		sel = append(sel, SelectSet{Rule: r, Set: S})
	}
	return sel
}

// For returns the SELECT set of a rule.
func (sel SelectSets) For(r *Rule) *SymbolSet {
	if r == nil || r.Serial < 1 || r.Serial > len(sel) {
		return nil
	}
	return sel[r.Serial-1].Set
}

// Strings returns the SELECT sets in report notation.
func (sel SelectSets) Strings() []string {
	lines := make([]string, len(sel))
	for i, s := range sel {
		lines[i] = s.String()
	}
	return lines
}
