package ll

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/llkit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// makeGrammar builds a grammar from short rule notations "A:xyz". An empty
// right side denotes an epsilon production.
func makeGrammar(t *testing.T, name string, rules ...string) *Grammar {
	t.Helper()
	b := NewGrammarBuilder(name)
	for _, rule := range rules {
		parts := strings.SplitN(rule, ":", 2)
		lhs := []rune(parts[0])[0]
		if parts[1] == "" {
			b.LHS(lhs).Epsilon()
			continue
		}
		rb := b.LHS(lhs)
		for _, r := range parts[1] {
			if r >= 'A' && r <= 'Z' {
				rb.N(r)
			} else {
				rb.T(r)
			}
		}
		rb.End()
	}
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS('S').N('A').T('b').End() // S → Ab
	b.LHS('A').T('a').End()        // A → a
	b.LHS('S').T('c').End()        // S → c, appended to S
	b.LHS('A').Epsilon()           // A → ϵ
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	nonterms := g.NonTerminals()
	if len(nonterms) != 2 || nonterms[0] != llkit.N('S') || nonterms[1] != llkit.N('A') {
		t.Errorf("expected non-terminals [S A], have %v", nonterms)
	}
	if g.Size() != 4 {
		t.Fatalf("expected 4 rules, have %d", g.Size())
	}
	// rules are grouped by non-terminal
	expected := []string{"S → Ab", "S → c", "A → a", "A → ϵ"}
	for i, r := range g.Rules() {
		if r.String() != expected[i] || r.Serial != i+1 {
			t.Errorf("expected rule #%d to be %q, is %d: %q", i+1, expected[i], r.Serial, r)
		}
	}
	if !g.Rule(4).RHS().IsEpsilon() {
		t.Errorf("expected rule 4 to be an epsilon production")
	}
	terms := g.Terminals()
	if len(terms) != 3 || terms[0] != llkit.T('b') {
		t.Errorf("expected terminals [b c a], have %v", terms)
	}
	if len(g.Productions(llkit.N('X'))) != 0 {
		t.Errorf("expected undefined non-terminal to have no productions")
	}
	if g.Start() != llkit.N('S') {
		t.Errorf("expected start symbol S")
	}
}

func TestGrammarUndefinedReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:Ab")
	if g.IsDefined(llkit.N('A')) {
		t.Errorf("A should not be defined")
	}
	refs := g.ReferencedNonTerminals()
	if len(refs) != 2 || refs[1] != llkit.N('A') {
		t.Errorf("expected referenced non-terminals [S A], have %v", refs)
	}
}

func TestGrammarBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	if _, err := NewGrammarBuilder("empty").Grammar(); !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("expected empty grammar to be rejected, err = %v", err)
	}
	b := NewGrammarBuilder("G")
	b.Define(llkit.T('a'), Production{llkit.T('b')})
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedRule) {
		t.Errorf("expected terminal LHS to be rejected, err = %v", err)
	}
	b = NewGrammarBuilder("G")
	b.Define(llkit.N('S'), Production{llkit.T('a'), llkit.Epsilon})
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedRule) {
		t.Errorf("expected ϵ mixed with other symbols to be rejected, err = %v", err)
	}
	b = NewGrammarBuilder("G")
	b.Define(llkit.N('S'), Production{llkit.T('a'), llkit.EndMarker})
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedRule) {
		t.Errorf("expected end marker in production to be rejected, err = %v", err)
	}
}

func TestGrammarFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g1 := makeGrammar(t, "G1", "S:Ab", "A:a", "A:")
	g2 := makeGrammar(t, "G2", "S:Ab", "A:a", "A:")
	g3 := makeGrammar(t, "G3", "S:Ab", "A:a")
	if g1.Fingerprint() == "" {
		t.Fatalf("expected a fingerprint")
	}
	if g1.Fingerprint() != g2.Fingerprint() {
		t.Errorf("expected equal grammars to have equal fingerprints")
	}
	if g1.Fingerprint() == g3.Fingerprint() {
		t.Errorf("expected different grammars to have different fingerprints")
	}
	lines := g1.Strings()
	if len(lines) != 2 || lines[1] != "A -> a | ϵ" {
		t.Errorf("unexpected rule strings %v", lines)
	}
}
