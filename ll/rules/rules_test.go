package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.rules")
	defer teardown()
	//
	g, err := Parse([]string{"S -> A b", "A -> a | {}"})
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 3 {
		t.Fatalf("expected 3 rules, have %d", g.Size())
	}
	if r := g.Rule(1); r.LHS != llkit.N('S') || r.RHS().String() != "Ab" {
		t.Errorf("expected rule 1 to be S → Ab, is %v", r)
	}
	if r := g.Rule(3); !r.RHS().IsEpsilon() {
		t.Errorf("expected rule 3 to be an epsilon rule, is %v", r)
	}
}

func TestParseAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.rules")
	defer teardown()
	//
	g, err := Parse([]string{"S -> a S b |ϵ\n\nS -> { commentary }|c"})
	if err != nil {
		t.Fatal(err)
	}
	prods := g.Productions(llkit.N('S'))
	expected := []string{"aSb", "ϵ", "ϵ", "c"}
	if len(prods) != len(expected) {
		t.Fatalf("expected %d productions for S, have %v", len(expected), prods)
	}
	for i, p := range prods {
		if p.String() != expected[i] {
			t.Errorf("expected production %d to be %s, is %s", i+1, expected[i], p)
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.rules")
	defer teardown()
	//
	inputs := []struct {
		lines []string
		line  int
		col   int
	}{
		{[]string{"S a b"}, 1, 0},
		{[]string{"S -> a", "s -> b"}, 2, 0},
		{[]string{"S -> a", "SA -> b"}, 2, 0},
		{[]string{"S -> a -> b"}, 1, 7},
		{[]string{"S -> a", "A -> a1"}, 2, 6},
		{[]string{"S -> aϵ"}, 1, 6},
	}
	for i, input := range inputs {
		g, err := Parse(input.lines)
		if err == nil || g != nil {
			t.Errorf("expected input #%d to be rejected", i)
			continue
		}
		if !errors.Is(err, ll.ErrMalformedRule) {
			t.Errorf("expected error #%d to be a malformed rule, is %v", i, err)
		}
		var rerr *RuleError
		if !errors.As(err, &rerr) {
			t.Errorf("expected error #%d to be a RuleError", i)
			continue
		}
		if rerr.Line != input.line || rerr.Span.From() != input.col {
			t.Errorf("expected error #%d at %d:%d, is %d:%d", i, input.line, input.col,
				rerr.Line, rerr.Span.From())
		}
		t.Logf("error #%d: %v", i, err)
	}
}

func TestParseEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.rules")
	defer teardown()
	//
	for _, lines := range [][]string{nil, {""}, {"  ", "\n"}} {
		if _, err := Parse(lines); !errors.Is(err, ll.ErrEmptyGrammar) {
			t.Errorf("expected empty input %q to be rejected, err = %v", lines, err)
		}
	}
}

func TestRespond(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.rules")
	defer teardown()
	//
	resp := Respond([]string{"S -> A b", "A -> a | {}"})
	if resp.Status != StatusSuccess {
		t.Fatalf("expected success, have %v", resp)
	}
	for _, s := range []string{"First(S) = {a, b}", "Fol(A) = {b}", "Sel(1) = {a, b}"} {
		if !strings.Contains(resp.Message, s) {
			t.Errorf("expected report to contain %q", s)
		}
	}
	resp = Respond([]string{"S -> a | a b"})
	if resp.Status != StatusError || !strings.Contains(resp.Message, "not LL(1)") {
		t.Errorf("expected S -> a | ab to be rejected, have %v", resp)
	}
	resp = Respond([]string{"A -> A a"})
	if resp.Status != StatusError || !strings.Contains(resp.Message, "left recursion") {
		t.Errorf("expected A -> Aa to be rejected, have %v", resp)
	}
	resp = Respond([]string{})
	if resp.Status != StatusError || resp.Message != ll.ErrEmptyGrammar.Error() {
		t.Errorf("expected empty input to be rejected, have %v", resp)
	}
}

func TestAnalyzeOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.rules")
	defer teardown()
	//
	a, err := Analyze([]string{"S -> A b", "A -> a | {}"}, ll.WithTerminalAdjacentEnds(true))
	if err != nil {
		t.Fatal(err)
	}
	fol, _ := a.Follow().Of(llkit.N('A'))
	if !fol.Contains(llkit.EndMarker) {
		t.Errorf("expected Follow(A) to contain ← with adjacent ends, is %v", fol)
	}
}

func TestParseErrorShowsCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llkit.rules")
	defer teardown()
	//
	_, err := Parse([]string{"S -> aä"})
	var rerr *RuleError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected a RuleError, have %v", err)
	}
	if !strings.Contains(rerr.Msg, `"ä"`) || rerr.Span != (llkit.Span{6, 8}) {
		t.Errorf("expected message about ä at (6…8), have %q at %v", rerr.Msg, rerr.Span)
	}
}
