package ll

import (
	"fmt"

	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll/relation"
)

// FirstSets holds FIRST(A) for every non-terminal A of a grammar.
type FirstSets struct {
	sets     map[llkit.Symbol]*SymbolSet
	order    []llkit.Symbol
	nullable *NullableSet
}

// ComputeFirstSets computes FIRST sets in two ways and merges the results:
//
// (a) from the productions: ϵ for epsilon productions, the leading terminal,
// or FIRST of the leading non-terminal, continuing with the next symbol
// as long as the symbols consumed are nullable. This is evaluated as a fixpoint
// over all non-terminals, thus left recursion is harmless.
//
// (b) from relation BW: every terminal t with A BW t is in FIRST(A).
//
// ϵ is in FIRST(A) if and only if A is nullable.
func ComputeFirstSets(g *Grammar, nullable *NullableSet, bw *relation.Relation) *FirstSets {
	fs := &FirstSets{
		sets:     make(map[llkit.Symbol]*SymbolSet),
		nullable: nullable,
	}
	for _, A := range g.NonTerminals() {
		fs.set(A)
	}
	for pass, changed := 1, true; changed; pass++ {
		changed = false
		for _, r := range g.Rules() {
			if fs.set(r.LHS).AddAll(fs.ofRHS(r.rhs), true) {
				changed = true
			}
		}
		tracer().Debugf("FIRST pass %d, changed = %v", pass, changed)
	}
	bw.Each(func(p relation.Pair) {
		if p.Left.IsNonTerminal() && p.Right.IsTerminal() {
			fs.set(p.Left).Add(p.Right)
		}
	})
	return fs
}

func (fs *FirstSets) set(A llkit.Symbol) *SymbolSet {
	S, ok := fs.sets[A]
	if !ok {
		S = NewSymbolSet()
		fs.sets[A] = S
		fs.order = append(fs.order, A)
	}
	return S
}

// ofRHS evaluates FIRST for a right hand side with the sets known so far.
func (fs *FirstSets) ofRHS(p Production) *SymbolSet {
	S := NewSymbolSet()
	if p.IsEpsilon() {
		S.Add(llkit.Epsilon)
		return S
	}
	for _, X := range p {
		switch {
		case X.IsTerminal():
			S.Add(X)
			return S
		case X.IsNonTerminal():
			if F, ok := fs.sets[X]; ok {
				S.AddAll(F, false)
			}
			if !fs.nullable.IsNullable(X) {
				return S
			}
		}
	}
	S.Add(llkit.Epsilon) // all symbols nullable
	return S
}

// Of returns FIRST(A). For a terminal t, FIRST(t) = {t}. For undefined
// non-terminals the result is empty.
func (fs *FirstSets) Of(A llkit.Symbol) *SymbolSet {
	if A.IsTerminal() || A.IsEpsilon() {
		return NewSymbolSet(A)
	}
	if S, ok := fs.sets[A]; ok {
		return S
	}
	return NewSymbolSet()
}

// OfSequence returns FIRST of a sequence of symbols: the union of FIRST(X)
// without ϵ for every symbol X up to and including the first non-nullable
// symbol. ϵ is included if every symbol is nullable.
func (fs *FirstSets) OfSequence(p Production) *SymbolSet {
	return fs.ofRHS(p)
}

// NonTerminals returns the non-terminals with a FIRST set, in order of declaration.
func (fs *FirstSets) NonTerminals() []llkit.Symbol {
	return fs.order
}

// Strings returns the FIRST sets in report notation, e.g. "First(A) = {a, ϵ}".
func (fs *FirstSets) Strings() []string {
	lines := make([]string, len(fs.order))
	for i, A := range fs.order {
		lines[i] = fmt.Sprintf("First(%s) = %v", A, fs.sets[A])
	}
	return lines
}
