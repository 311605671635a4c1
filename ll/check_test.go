package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCheckRejectsCommonPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:a", "S:ab")
	err := CheckLL1(g)
	if !errors.Is(err, ErrNotLL1) {
		t.Fatalf("expected grammar to be rejected, err = %v", err)
	}
	var llerr *LL1Error
	if !errors.As(err, &llerr) || llerr.Kind != FirstFirstConflict || llerr.Symbol != ta {
		t.Errorf("expected a FIRST/FIRST conflict on a, have %v", err)
	}
	t.Logf("error message: %v", err)
}

func TestCheckRejectsLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "A:Aa")
	err := CheckLL1(g)
	var llerr *LL1Error
	if !errors.As(err, &llerr) || llerr.Kind != LeftRecursion || llerr.NonTerminal != nA {
		t.Errorf("expected direct left recursion for A, have %v", err)
	}
}

func TestCheckConflictThroughNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:Ab", "S:ac", "A:a")
	if err := CheckLL1(g); !errors.Is(err, ErrNotLL1) {
		t.Errorf("expected conflict on a via A, err = %v", err)
	}
}

func TestCheckIndirectRecursionTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:Aa", "S:b", "A:Sc")
	err := CheckLL1(g)
	var llerr *LL1Error
	if !errors.As(err, &llerr) || llerr.Kind != FirstFirstConflict || llerr.Symbol != tb {
		t.Errorf("expected conflict on b, have %v", err)
	}
}

func TestCheckIgnoresEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:Ab", "A:a", "A:", "A:B", "B:")
	if err := CheckLL1(g); err != nil {
		t.Errorf("ϵ must not count as a conflict, err = %v", err)
	}
}

func TestCheckMissesNullableConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	// FOLLOW(A) = {a} overlaps FIRST(a): not LL(1), but the heuristic
	// does not see it. The full analysis reports the conflict.
	g := makeGrammar(t, "G", "S:Aa", "A:a", "A:")
	if err := CheckLL1(g); err != nil {
		t.Fatalf("heuristic is expected to pass this grammar, err = %v", err)
	}
	a := analyse(t, g)
	conflicts := a.Conflicts()
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 SELECT conflict, have %v", conflicts)
	}
	c := conflicts[0]
	if c.NonTerminal != nA || len(c.Symbols) != 1 || c.Symbols[0] != ta {
		t.Errorf("expected conflict for A on a, have %+v", c)
	}
	rep := a.Report()
	if _, ok := rep.Section(ConflictSection); !ok {
		t.Errorf("expected report to list SELECT conflicts")
	}
}

func TestAnalyzeRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:a", "S:ab")
	if a, err := Analyze(g); err == nil || a != nil {
		t.Errorf("expected analysis to fail without partial results")
	}
	a, err := Analyze(g, SkipLL1Check(true))
	if err != nil {
		t.Fatalf("expected analysis to run with check disabled, err = %v", err)
	}
	if len(a.Conflicts()) != 1 {
		t.Errorf("expected SELECT conflict on a, have %v", a.Conflicts())
	}
	if _, err := Analyze(nil); !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("expected nil grammar to be rejected")
	}
}
