package ll

import (
	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll/relation"
)

// --- Options ---------------------------------------------------------------

// Option configures an analysis run.
type Option func(c *config)

type config struct {
	start        llkit.Symbol
	adjacentEnds bool
	skipCheck    bool
}

func defaultConfig(g *Grammar) config {
	return config{start: g.Start()}
}

// WithStart sets the start symbol. Default is S.
func WithStart(r rune) Option {
	return func(c *config) {
		c.start = llkit.N(r)
	}
}

// WithTerminalAdjacentEnds sets or clears option TerminalAdjacentEnds:
// include pairs (N, t) in DEO for nullable non-terminals N immediately followed
// by a terminal t. This reproduces a variant of the end-of relation which lets
// N inherit the ends of t, and with it, possibly, the end marker.
// Default is false.
func WithTerminalAdjacentEnds(b bool) Option {
	return func(c *config) {
		c.adjacentEnds = b
	}
}

// SkipLL1Check sets or clears option SkipLL1Check: do not run CheckLL1 before
// analysis. Default is false.
func SkipLL1Check(b bool) Option {
	return func(c *config) {
		c.skipCheck = b
	}
}

// --- Analysis --------------------------------------------------------------

// Analysis holds the results of every stage of the analysis of a grammar.
// It is created by Analyze and not modified afterwards.
type Analysis struct {
	g            *Grammar
	start        llkit.Symbol
	nullable     *NullableSet
	bdw          *relation.Relation
	bw           *relation.Relation
	first        *FirstSets
	fdb          *relation.Relation
	deo          *relation.Relation
	endAdjacency []relation.Pair
	eo           *relation.Relation
	fb           *relation.Relation
	follow       *FollowSets
	sel          SelectSets
}

// Analyze checks a grammar for LL(1) conformance (see CheckLL1) and, if it
// passes, runs the analysis pipeline. Either the complete analysis is returned,
// or an error.
func Analyze(g *Grammar, opts ...Option) (*Analysis, error) {
	if g == nil {
		return nil, ErrEmptyGrammar
	}
	cfg := defaultConfig(g)
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.skipCheck {
		if err := CheckLL1(g); err != nil {
			return nil, err
		}
	}
	if !g.IsDefined(cfg.start) {
		tracer().Infof("start symbol %s is not defined in grammar %q", cfg.start, g.Name)
	}
	a := &Analysis{g: g, start: cfg.start}
	a.nullable = FindNullable(g)
	a.bdw = BeginsDirectlyWith(g, a.nullable)
	a.bw = BeginsWith(g, a.bdw)
	a.first = ComputeFirstSets(g, a.nullable, a.bw)
	a.fdb = FollowedDirectlyBy(g, a.nullable)
	a.deo, a.endAdjacency = DirectlyEndsWith(g, a.nullable, cfg.adjacentEnds)
	a.eo = EndsWith(g, a.deo)
	a.fb = FollowedBy(a.eo, a.fdb, a.bw, a.start)
	a.follow = ComputeFollowSets(g, a.nullable, a.fb)
	a.sel = ComputeSelectSets(g, a.nullable, a.first, a.follow)
	tracer().Infof("analysis of grammar %q complete: %d rules, %d nullable", g.Name,
		g.Size(), a.nullable.Size())
	return a, nil
}

// Grammar returns the analysed grammar.
func (a *Analysis) Grammar() *Grammar {
	return a.g
}

// Start returns the start symbol used for the analysis.
func (a *Analysis) Start() llkit.Symbol {
	return a.start
}

// Nullable returns the nullable non-terminals.
func (a *Analysis) Nullable() *NullableSet {
	return a.nullable
}

// BeginsDirectlyWith returns relation BDW.
func (a *Analysis) BeginsDirectlyWith() *relation.Relation {
	return a.bdw
}

// BeginsWith returns relation BW.
func (a *Analysis) BeginsWith() *relation.Relation {
	return a.bw
}

// First returns the FIRST sets.
func (a *Analysis) First() *FirstSets {
	return a.first
}

// FollowedDirectlyBy returns relation FDB.
func (a *Analysis) FollowedDirectlyBy() *relation.Relation {
	return a.fdb
}

// DirectlyEndsWith returns relation DEO.
func (a *Analysis) DirectlyEndsWith() *relation.Relation {
	return a.deo
}

// EndAdjacency returns the pairs (N, t) of nullable non-terminals immediately
// followed by a terminal (see WithTerminalAdjacentEnds).
func (a *Analysis) EndAdjacency() []relation.Pair {
	return a.endAdjacency
}

// EndsWith returns relation EO.
func (a *Analysis) EndsWith() *relation.Relation {
	return a.eo
}

// FollowedBy returns relation FB.
func (a *Analysis) FollowedBy() *relation.Relation {
	return a.fb
}

// Follow returns the FOLLOW sets of nullable non-terminals.
func (a *Analysis) Follow() *FollowSets {
	return a.follow
}

// Select returns the SELECT sets, one per rule in declaration order.
func (a *Analysis) Select() SelectSets {
	return a.sel
}

// Conflicts returns pairs of alternatives with overlapping SELECT sets. For grammars
// passing CheckLL1 this is usually empty, but the check is a heuristic; this is
// informational only.
func (a *Analysis) Conflicts() []SelectConflict {
	return selectConflicts(a.g, a.sel)
}
