package ll

import (
	"testing"

	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll/relation"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFollowedDirectlyBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:BAc", "A:a", "A:", "B:b")
	fdb := FollowedDirectlyBy(g, FindNullable(g))
	for _, p := range []relation.Pair{
		relation.P(nB, nA), // adjacent
		relation.P(nA, tc), // adjacent
		relation.P(nB, tc), // across nullable A
	} {
		if !fdb.Contains(p.Left, p.Right) {
			t.Errorf("expected %s, have %v", fdb.Format(p), fdb)
		}
	}
	if fdb.Size() != 3 {
		t.Errorf("expected 3 FDB pairs, have %v", fdb)
	}
}

func TestFollowedDirectlyByRunOfNullables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:XYZd", "X:x", "X:", "Y:y", "Y:", "Z:z", "Z:")
	fdb := FollowedDirectlyBy(g, FindNullable(g))
	if !fdb.Contains(llkit.N('X'), llkit.T('d')) {
		t.Errorf("expected X FDB d across Y and Z, have %v", fdb)
	}
	// terminals have no FDB pairs of their own
	for _, p := range fdb.Pairs() {
		if !p.Left.IsNonTerminal() {
			t.Errorf("unexpected FDB pair %v", p)
		}
	}
}

func TestDirectlyEndsWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:Ab", "A:a", "A:")
	deo, adjacent := DirectlyEndsWith(g, FindNullable(g), false)
	expected := []relation.Pair{relation.P(nA, nA), relation.P(ta, nA), relation.P(tb, nS)}
	pairs := deo.Pairs()
	if len(pairs) != len(expected) {
		t.Fatalf("expected DEO = %v, have %v", expected, deo)
	}
	for i, p := range pairs {
		if p != expected[i] {
			t.Errorf("expected DEO pair #%d to be %v, is %v", i, expected[i], p)
		}
	}
	if len(adjacent) != 1 || adjacent[0] != relation.P(nA, tb) {
		t.Errorf("expected adjacency [(A,b)], have %v", adjacent)
	}
	deo, _ = DirectlyEndsWith(g, FindNullable(g), true)
	if !deo.Contains(nA, tb) {
		t.Errorf("expected A DEO b with adjacency option, have %v", deo)
	}
}

func TestDirectlyEndsWithNullableSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:aBA", "A:", "B:b")
	deo, _ := DirectlyEndsWith(g, FindNullable(g), false)
	if !deo.Contains(nA, nS) || !deo.Contains(nB, nS) {
		t.Errorf("expected A DEO S and B DEO S, have %v", deo)
	}
	if deo.Contains(ta, nS) {
		t.Errorf("B is not nullable, a DEO S must not hold")
	}
}

func TestEndsWithIsClosed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	for _, g := range testGrammars(t) {
		nullable := FindNullable(g)
		deo, _ := DirectlyEndsWith(g, nullable, false)
		eo := EndsWith(g, deo)
		universe := append([]llkit.Symbol{}, g.ReferencedNonTerminals()...)
		universe = append(universe, g.Terminals()...)
		if !eo.IsTransitive() {
			t.Errorf("%s: EO is not transitive", g.Name)
		}
		if !eo.IsReflexiveOver(universe) {
			t.Errorf("%s: EO is not reflexive", g.Name)
		}
	}
}

func TestFollowedBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.ll")
	defer teardown()
	//
	g := makeGrammar(t, "G", "S:Ab", "A:a", "A:")
	nullable := FindNullable(g)
	bw := BeginsWith(g, BeginsDirectlyWith(g, nullable))
	deo, _ := DirectlyEndsWith(g, nullable, false)
	fb := FollowedBy(EndsWith(g, deo), FollowedDirectlyBy(g, nullable), bw, g.Start())
	if !fb.Contains(nA, tb) {
		t.Errorf("expected A FB b, have %v", fb)
	}
	if !fb.Contains(nS, llkit.EndMarker) {
		t.Errorf("expected S FB ←, have %v", fb)
	}
	if fb.Contains(nA, llkit.EndMarker) {
		t.Errorf("A is never at the end of S, have %v", fb)
	}
}
