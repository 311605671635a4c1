package ll

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/llkit"
)

// --- Productions and rules -------------------------------------------------

// Production is the right hand side of a grammar rule, a sequence of terminals
// and non-terminals. The explicit epsilon production is [ϵ], which is distinct
// from an empty sequence.
type Production []llkit.Symbol

// EpsilonProduction returns a new [ϵ].
func EpsilonProduction() Production {
	return Production{llkit.Epsilon}
}

// IsEpsilon is true for [ϵ].
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0].IsEpsilon()
}

func (p Production) String() string {
	var b strings.Builder
	for _, A := range p {
		b.WriteRune(A.Char)
	}
	return b.String()
}

// Rule is a single production occurrence of a grammar: LHS → RHS.
// Serial is the ordinal of the rule in declaration order, starting at 1.
type Rule struct {
	Serial int
	LHS    llkit.Symbol
	rhs    Production
}

// RHS returns the right hand side of a rule.
func (r *Rule) RHS() Production {
	return r.rhs
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s → %s", r.LHS, r.rhs)
}

// --- Grammar ---------------------------------------------------------------

// Grammar maps non-terminals to their alternative productions, in order of
// declaration. Grammars are immutable once built.
//
// Non-terminals referenced on a right hand side without a definition of their own
// are not an error; they are treated as having no productions at all.
type Grammar struct {
	Name      string
	rules     *linkedhashmap.Map // non-terminal → []*Rule
	ruleList  []*Rule            // all rules in declaration order
	terminals []llkit.Symbol     // in order of appearance
	nonterms  []llkit.Symbol     // defined and referenced, in order of appearance
}

// Start returns the conventional start symbol S. It is not checked whether S
// is defined.
func (g *Grammar) Start() llkit.Symbol {
	return llkit.N('S')
}

// NonTerminals returns all defined non-terminals in order of declaration.
func (g *Grammar) NonTerminals() []llkit.Symbol {
	keys := g.rules.Keys()
	nonterms := make([]llkit.Symbol, len(keys))
	for i, k := range keys {
		nonterms[i] = k.(llkit.Symbol)
	}
	return nonterms
}

// ReferencedNonTerminals returns every non-terminal occuring in the grammar,
// defined or not, in order of first appearance.
func (g *Grammar) ReferencedNonTerminals() []llkit.Symbol {
	return g.nonterms
}

// Terminals returns every terminal occuring in a production, in order of first appearance.
func (g *Grammar) Terminals() []llkit.Symbol {
	return g.terminals
}

// IsDefined checks if A has productions.
func (g *Grammar) IsDefined(A llkit.Symbol) bool {
	_, found := g.rules.Get(A)
	return found
}

// RulesFor returns the rules for non-terminal A, in order of declaration.
// Returns nil for undefined non-terminals.
func (g *Grammar) RulesFor(A llkit.Symbol) []*Rule {
	if r, found := g.rules.Get(A); found {
		return r.([]*Rule)
	}
	return nil
}

// Productions returns the alternatives for non-terminal A. It is empty if A is
// undefined.
func (g *Grammar) Productions(A llkit.Symbol) []Production {
	rules := g.RulesFor(A)
	prods := make([]Production, len(rules))
	for i, r := range rules {
		prods[i] = r.rhs
	}
	return prods
}

// Rules returns all rules in declaration order, i.e. grouped by non-terminal.
func (g *Grammar) Rules() []*Rule {
	return g.ruleList
}

// Rule returns rule no. i, with 1 ≤ i ≤ Size(), or nil.
func (g *Grammar) Rule(i int) *Rule {
	if i < 1 || i > len(g.ruleList) {
		return nil
	}
	return g.ruleList[i-1]
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.ruleList)
}

// EachNonTerminal iterates over all defined non-terminals, calling mapper
// with the non-terminal and its rules.
func (g *Grammar) EachNonTerminal(mapper func(A llkit.Symbol, rules []*Rule)) {
	it := g.rules.Iterator()
	for it.Next() {
		mapper(it.Key().(llkit.Symbol), it.Value().([]*Rule))
	}
}

// Strings returns all rules, one string per non-terminal, in the input
// notation "A -> ab | ϵ".
func (g *Grammar) Strings() []string {
	var lines []string
	g.EachNonTerminal(func(A llkit.Symbol, rules []*Rule) {
		alts := make([]string, len(rules))
		for i, r := range rules {
			alts[i] = r.rhs.String()
		}
		lines = append(lines, fmt.Sprintf("%s -> %s", A, strings.Join(alts, " | ")))
	})
	return lines
}

// Fingerprint returns a hash over the rules of g. Grammars with identical rules
// have identical fingerprints.
func (g *Grammar) Fingerprint() string {
	h, err := structhash.Hash(struct{ Rules []string }{g.Strings()}, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar: %v", err)
		return ""
	}
	return h
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s ----------------------------------------------", g.Name)
	for _, r := range g.ruleList {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Repeated definitions for the same
// non-terminal append alternatives.
type GrammarBuilder struct {
	name string
	defs *linkedhashmap.Map // non-terminal → []Production
	err  error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name: gname,
		defs: linkedhashmap.New(),
	}
}

// Define appends alternatives for non-terminal A.
func (gb *GrammarBuilder) Define(A llkit.Symbol, prods ...Production) *GrammarBuilder {
	if !A.IsNonTerminal() {
		gb.fail(fmt.Errorf("%w: left hand side %q is not a non-terminal", ErrMalformedRule, A))
		return gb
	}
	var alts []Production
	if d, found := gb.defs.Get(A); found {
		alts = d.([]Production)
	}
	for _, p := range prods {
		if err := checkProduction(p); err != nil {
			gb.fail(fmt.Errorf("%w: %s -> %s: %v", ErrMalformedRule, A, p, err))
			continue
		}
		alts = append(alts, append(Production(nil), p...))
	}
	gb.defs.Put(A, alts)
	return gb
}

func checkProduction(p Production) error {
	for _, A := range p {
		switch {
		case A.IsEndMarker():
			return fmt.Errorf("end marker not allowed in productions")
		case A.IsEpsilon() && len(p) > 1:
			return fmt.Errorf("ϵ mixed with other symbols")
		case A.Kind == llkit.NoKind:
			return fmt.Errorf("invalid symbol")
		}
	}
	return nil
}

func (gb *GrammarBuilder) fail(err error) {
	tracer().Errorf(err.Error())
	if gb.err == nil {
		gb.err = err
	}
}

// LHS starts a rule for non-terminal r. Complete it with End() or Epsilon().
func (gb *GrammarBuilder) LHS(r rune) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: llkit.N(r)}
}

// Grammar returns the grammar built so far, or the first error encountered
// while building.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if gb.defs.Empty() {
		return nil, ErrEmptyGrammar
	}
	g := &Grammar{
		Name:  gb.name,
		rules: linkedhashmap.New(),
	}
	seen := make(map[llkit.Symbol]bool)
	note := func(A llkit.Symbol) {
		if seen[A] {
			return
		}
		seen[A] = true
		if A.IsNonTerminal() {
			g.nonterms = append(g.nonterms, A)
		} else if A.IsTerminal() {
			g.terminals = append(g.terminals, A)
		}
	}
	it := gb.defs.Iterator()
	for it.Next() {
		A := it.Key().(llkit.Symbol)
		note(A)
		var rules []*Rule
		for _, p := range it.Value().([]Production) {
			r := &Rule{Serial: len(g.ruleList) + 1, LHS: A, rhs: p}
			rules = append(rules, r)
			g.ruleList = append(g.ruleList, r)
			for _, X := range p {
				note(X)
			}
		}
		g.rules.Put(A, rules)
	}
	for _, A := range g.nonterms {
		if !g.IsDefined(A) {
			tracer().Infof("non-terminal %s is referenced but not defined", A)
		}
	}
	return g, nil
}

// RuleBuilder is a builder type for a single rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs llkit.Symbol
	rhs Production
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(r rune) *RuleBuilder {
	rb.rhs = append(rb.rhs, llkit.N(r))
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(r rune) *RuleBuilder {
	rb.rhs = append(rb.rhs, llkit.T(r))
	return rb
}

// End completes a rule.
func (rb *RuleBuilder) End() *GrammarBuilder {
	if rb.rhs == nil {
		rb.rhs = Production{}
	}
	return rb.gb.Define(rb.lhs, rb.rhs)
}

// Epsilon completes a rule as an epsilon production. Symbols appended
// before are discarded.
func (rb *RuleBuilder) Epsilon() *GrammarBuilder {
	return rb.gb.Define(rb.lhs, EpsilonProduction())
}
