package ll

import (
	"github.com/npillmayer/llkit"
)

// CheckLL1 runs a heuristic check for LL(1) conformance on the raw grammar.
// For every non-terminal A it rejects
//
// ■ direct left recursion, i.e. a rule A → A …
//
// ■ alternatives of A which share a FIRST symbol. FIRST is simplified here: the
// leading terminal of a production, or, for a leading non-terminal N, the union
// of the simplified FIRST sets of N's productions. ϵ never conflicts.
// Simplified FIRST sets are computed once per non-terminal.
//
// The check does not consider FOLLOW sets of nullable alternatives. It may
// therefore miss conflicts of a nullable alternative with another one.
// It returns an *LL1Error for rejected grammars.
func CheckLL1(g *Grammar) error {
	leads := newLeadSets(g)
	for _, A := range g.NonTerminals() {
		rules := g.RulesFor(A)
		for _, r := range rules {
			if len(r.rhs) > 0 && r.rhs[0] == A {
				err := &LL1Error{Kind: LeftRecursion, NonTerminal: A, Rule: r}
				tracer().Errorf(err.Error())
				return err
			}
		}
		seen := make(map[llkit.Symbol]*Rule)
		for _, r := range rules {
			first := leads.of(r.rhs)
			for _, X := range first.Values() {
				if X.IsEpsilon() {
					continue
				}
				if other, ok := seen[X]; ok && other != r {
					err := &LL1Error{
						Kind:        FirstFirstConflict,
						NonTerminal: A,
						Rule:        r,
						Other:       other,
						Symbol:      X,
					}
					tracer().Errorf(err.Error())
					return err
				}
				seen[X] = r
			}
		}
	}
	return nil
}

// leadSets holds the simplified FIRST sets of non-terminals: every symbol
// reachable through leading non-terminals. Sets are computed on demand, once
// per non-terminal, by a search over the leading symbols of productions.
// Recursion through leading non-terminals thus contributes nothing new.
type leadSets struct {
	g    *Grammar
	sets map[llkit.Symbol]*SymbolSet
}

func newLeadSets(g *Grammar) *leadSets {
	return &leadSets{g: g, sets: make(map[llkit.Symbol]*SymbolSet)}
}

// of returns the simplified FIRST set of a production, looking at its leading
// symbol only.
func (ls *leadSets) of(p Production) *SymbolSet {
	if len(p) == 0 {
		return NewSymbolSet()
	}
	if X := p[0]; !X.IsNonTerminal() {
		return NewSymbolSet(X)
	}
	return ls.ofNonTerminal(p[0])
}

func (ls *leadSets) ofNonTerminal(A llkit.Symbol) *SymbolSet {
	if S, ok := ls.sets[A]; ok {
		return S
	}
	S := NewSymbolSet()
	visited := map[llkit.Symbol]bool{A: true}
	stack := []llkit.Symbol{A}
	for len(stack) > 0 {
		B := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, q := range ls.g.Productions(B) {
			if len(q) == 0 {
				continue
			}
			switch X := q[0]; {
			case !X.IsNonTerminal():
				S.Add(X)
			case !visited[X]:
				visited[X] = true
				stack = append(stack, X)
			}
		}
	}
	ls.sets[A] = S
	return S
}

// SelectConflict describes two alternatives of a non-terminal with overlapping
// SELECT sets.
type SelectConflict struct {
	NonTerminal llkit.Symbol
	Rules       [2]*Rule
	Symbols     []llkit.Symbol
}

// selectConflicts compares the SELECT sets of all alternatives pairwise.
// ϵ is not considered a conflicting symbol.
func selectConflicts(g *Grammar, sel SelectSets) []SelectConflict {
	var conflicts []SelectConflict
	g.EachNonTerminal(func(A llkit.Symbol, rules []*Rule) {
		for i := 0; i < len(rules); i++ {
			for j := i + 1; j < len(rules); j++ {
				var common []llkit.Symbol
				for _, X := range sel.For(rules[i]).Intersection(sel.For(rules[j])) {
					if !X.IsEpsilon() {
						common = append(common, X)
					}
				}
				if len(common) > 0 {
					conflicts = append(conflicts, SelectConflict{
						NonTerminal: A,
						Rules:       [2]*Rule{rules[i], rules[j]},
						Symbols:     common,
					})
				}
			}
		}
	})
	return conflicts
}
