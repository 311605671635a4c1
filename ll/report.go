package ll

import (
	"fmt"
	"strings"

	"github.com/npillmayer/llkit/ll/relation"
)

// Section is a titled part of a report.
type Section struct {
	Title string
	Lines []string
}

// Report lists the results of every stage of an analysis, in pipeline order.
type Report struct {
	Grammar     string // name of the grammar
	Fingerprint string // see Grammar.Fingerprint
	Sections    []Section
}

// Titles of report sections.
const (
	NullableRulesSection        = "Nullable Rules"
	NullableNonTerminalsSection = "Nullable Nonterminals"
	BDWSection                  = "BDW Relationships"
	BWSection                   = "BW Relationships"
	FirstSection                = "First Sets"
	FirstOfRHSSection           = "First of Right Side"
	FDBSection                  = "FDB Relationships"
	DEOSection                  = "DEO Relationships"
	EOSection                   = "EO Relationships"
	FBSection                   = "FB Relationships"
	FollowSection               = "Follow Sets of Nullable Nonterminals"
	SelectSection               = "Select Sets"
	ConflictSection             = "Select Conflicts"
)

// Report creates a report for an analysis.
func (a *Analysis) Report() *Report {
	rep := &Report{
		Grammar:     a.g.Name,
		Fingerprint: a.g.Fingerprint(),
	}
	add := func(title string, lines []string) {
		rep.Sections = append(rep.Sections, Section{Title: title, Lines: lines})
	}
	var nullables []string
	for _, A := range a.nullable.NonTerminals() {
		nullables = append(nullables, A.String())
	}
	add(NullableRulesSection, a.nullable.Rules())
	add(NullableNonTerminalsSection, nullables)
	add(BDWSection, formatPairs(a.bdw, a.bdw.Pairs()))
	addClosure(add, BWSection, a.bw)
	add(FirstSection, a.first.Strings())
	var rhs []string
	for _, r := range a.g.Rules() {
		if r.rhs.IsEpsilon() {
			continue
		}
		rhs = append(rhs, fmt.Sprintf("First(%s) = %v", r.rhs, a.first.OfSequence(r.rhs)))
	}
	add(FirstOfRHSSection, rhs)
	add(FDBSection, formatPairs(a.fdb, a.fdb.Pairs()))
	add(DEOSection, formatPairs(a.deo, a.deo.Pairs()))
	addClosure(add, EOSection, a.eo)
	add(FBSection, formatPairs(a.fb, a.fb.Pairs()))
	add(FollowSection, a.follow.Strings())
	add(SelectSection, a.sel.Strings())
	if conflicts := a.Conflicts(); len(conflicts) > 0 {
		var lines []string
		for _, c := range conflicts {
			lines = append(lines, fmt.Sprintf("%s: Sel(%d) ∩ Sel(%d) = %v", c.NonTerminal,
				c.Rules[0].Serial, c.Rules[1].Serial, NewSymbolSet(c.Symbols...)))
		}
		add(ConflictSection, lines)
	}
	return rep
}

func addClosure(add func(string, []string), title string, r *relation.Relation) {
	add(title+" / direct", formatPairs(r, r.PairsOf(relation.Direct)))
	add(title+" / transitive", formatPairs(r, r.PairsOf(relation.Transitive)))
	add(title+" / reflexive", formatPairs(r, r.PairsOf(relation.Reflexive)))
}

func formatPairs(r *relation.Relation, pairs []relation.Pair) []string {
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = r.Format(p)
	}
	return lines
}

// Section returns the section with a given title.
func (rep *Report) Section(title string) (Section, bool) {
	for _, s := range rep.Sections {
		if s.Title == title {
			return s, true
		}
	}
	return Section{}, false
}

// String renders a report as plain text.
func (rep *Report) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Grammar %q  [%s]\n", rep.Grammar, rep.Fingerprint))
	for i, s := range rep.Sections {
		b.WriteString(fmt.Sprintf("\nStep %d: %s\n", i+1, s.Title))
		if len(s.Lines) == 0 {
			b.WriteString("  (none)\n")
		}
		for _, line := range s.Lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
