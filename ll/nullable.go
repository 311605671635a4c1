package ll

import (
	"fmt"

	"github.com/npillmayer/llkit"
)

// NullableSet is the set of non-terminals which are able to derive the empty string.
// It only grows while being computed.
type NullableSet struct {
	nullable map[llkit.Symbol]Production // non-terminal → witnessing production
	order    []llkit.Symbol              // in order of discovery
}

// FindNullable determines all nullable non-terminals of g.
//
// A non-terminal is nullable if it has an epsilon production, or a production
// consisting of nullable non-terminals only. Undefined non-terminals are not
// nullable. Rules are checked in declaration order, repeating until a pass
// finds no new nullable non-terminal. Every pass but the last adds at least one
// non-terminal, thus there are at most |N|+1 passes over the rules.
func FindNullable(g *Grammar) *NullableSet {
	ns := &NullableSet{
		nullable: make(map[llkit.Symbol]Production),
	}
	for pass, changed := 1, true; changed; pass++ {
		changed = false
		for _, r := range g.Rules() {
			if ns.IsNullable(r.LHS) || !ns.derivesEmpty(r.rhs) {
				continue
			}
			ns.record(r.LHS, r.rhs)
			changed = true
		}
		tracer().Debugf("nullable pass %d: %v", pass, ns.order)
	}
	return ns
}

// derivesEmpty is true for [ϵ] and for productions of nullable non-terminals
// known so far.
func (ns *NullableSet) derivesEmpty(p Production) bool {
	if p.IsEpsilon() {
		return true
	}
	for _, X := range p {
		if !ns.IsNullable(X) {
			return false
		}
	}
	return true
}

func (ns *NullableSet) record(A llkit.Symbol, witness Production) {
	tracer().Debugf("%s is nullable, witness %s → %s", A, A, witness)
	ns.nullable[A] = witness
	ns.order = append(ns.order, A)
}

// IsNullable checks if symbol A is a nullable non-terminal.
func (ns *NullableSet) IsNullable(A llkit.Symbol) bool {
	_, ok := ns.nullable[A]
	return ok
}

// Witness returns the production which proves A to be nullable.
func (ns *NullableSet) Witness(A llkit.Symbol) (Production, bool) {
	p, ok := ns.nullable[A]
	return p, ok
}

// NonTerminals returns all nullable non-terminals in order of discovery.
func (ns *NullableSet) NonTerminals() []llkit.Symbol {
	return ns.order
}

// Size returns the number of nullable non-terminals.
func (ns *NullableSet) Size() int {
	return len(ns.order)
}

// Rules returns the witnessing rules, e.g. "A → ϵ", in order of discovery.
func (ns *NullableSet) Rules() []string {
	rules := make([]string, len(ns.order))
	for i, A := range ns.order {
		rules[i] = fmt.Sprintf("%s → %s", A, ns.nullable[A])
	}
	return rules
}
