package relation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll/sparse"
)

// Tag names a relation.
type Tag int8

// Relations computed during grammar analysis.
const (
	NoTag              Tag = iota
	BeginsDirectlyWith     // A BDW X:  A → X …, or A → N … X … with nullable prefix
	BeginsWith             // closure of BDW
	FollowedDirectlyBy     // X FDB Y:  … X Y … in some production
	DirectlyEndsWith       // X DEO A:  A → … X, possibly followed by nullable symbols
	EndsWith               // closure of DEO
	FollowedBy             // X FB Y:   Y may appear immediately after X
)

var tagAbbrev = [...]string{"?", "BDW", "BW", "FDB", "DEO", "EO", "FB"}

var tagName = [...]string{
	"<none>",
	"BeginsDirectlyWith",
	"BeginsWith",
	"FollowedDirectlyBy",
	"DirectlyEndsWith",
	"EndsWith",
	"FollowedBy",
}

// Abbrev returns the short name of a relation, as used in reports.
func (t Tag) Abbrev() string {
	if t < 0 || int(t) >= len(tagAbbrev) {
		return "?"
	}
	return tagAbbrev[t]
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagName) {
		return "<none>"
	}
	return tagName[t]
}

// Origin tells how a pair came into a relation.
type Origin int8

// Origins of pairs.
const (
	NoOrigin Origin = iota
	Direct
	Transitive
	Reflexive
)

func (o Origin) String() string {
	switch o {
	case Direct:
		return "direct"
	case Transitive:
		return "transitive"
	case Reflexive:
		return "reflexive"
	}
	return "none"
}

// Pair is an ordered pair of symbols.
type Pair struct {
	Left, Right llkit.Symbol
}

// P is a shortcut to create a pair.
func P(left, right llkit.Symbol) Pair {
	return Pair{Left: left, Right: right}
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s,%s)", p.Left, p.Right)
}

// Relation is a set of pairs of symbols. The zero value is not usable,
// create relations with New.
type Relation struct {
	tag     Tag
	pairs   *linkedhashset.Set // of Pair, in order of insertion
	origins *sparse.TagMatrix  // origin per pair, indexed by symbol index
}

// New creates an empty relation.
func New(tag Tag) *Relation {
	return &Relation{
		tag:     tag,
		pairs:   linkedhashset.New(),
		origins: sparse.NewTagMatrix(llkit.SymbolCount, llkit.SymbolCount, int8(NoOrigin)),
	}
}

// Tag returns the name of r.
func (r *Relation) Tag() Tag {
	return r.tag
}

// Add inserts (a,b) as a direct pair. Returns false if the pair has already
// been present.
func (r *Relation) Add(a, b llkit.Symbol) bool {
	return r.add(P(a, b), Direct)
}

func (r *Relation) add(p Pair, origin Origin) bool {
	if r.pairs.Contains(p) {
		return false
	}
	r.pairs.Add(p)
	r.origins.SetIfNull(p.Left.Index(), p.Right.Index(), int8(origin))
	return true
}

// Contains checks if (a,b) is in r.
func (r *Relation) Contains(a, b llkit.Symbol) bool {
	return r.pairs.Contains(P(a, b))
}

// Size returns the number of pairs in r.
func (r *Relation) Size() int {
	return r.pairs.Size()
}

// Empty is true for relations without pairs.
func (r *Relation) Empty() bool {
	return r.pairs.Empty()
}

// Origin returns how (a,b) came into r, or NoOrigin if (a,b) is not in r.
func (r *Relation) Origin(a, b llkit.Symbol) Origin {
	return Origin(r.origins.Value(a.Index(), b.Index()))
}

// Each calls f for every pair, in order of insertion.
func (r *Relation) Each(f func(Pair)) {
	it := r.pairs.Iterator()
	for it.Next() {
		f(it.Value().(Pair))
	}
}

// Pairs returns all pairs in order of insertion.
func (r *Relation) Pairs() []Pair {
	pairs := make([]Pair, 0, r.pairs.Size())
	r.Each(func(p Pair) {
		pairs = append(pairs, p)
	})
	return pairs
}

// PairsOf returns the pairs of a given origin, in canonical order.
func (r *Relation) PairsOf(origin Origin) []Pair {
	var pairs []Pair
	r.origins.Each(func(i, j int, tag int8) {
		if Origin(tag) == origin {
			pairs = append(pairs, P(llkit.SymbolAt(i), llkit.SymbolAt(j)))
		}
	})
	return pairs
}

// Sorted returns all pairs in canonical order.
func (r *Relation) Sorted() []Pair {
	pairs := r.Pairs()
	SortPairs(pairs)
	return pairs
}

// Image returns every b with (a,b) in r, in order of insertion.
func (r *Relation) Image(a llkit.Symbol) []llkit.Symbol {
	var img []llkit.Symbol
	r.Each(func(p Pair) {
		if p.Left == a {
			img = append(img, p.Right)
		}
	})
	return img
}

// Lefts returns every left hand side of r, in order of first appearance.
func (r *Relation) Lefts() []llkit.Symbol {
	seen := make(map[llkit.Symbol]bool)
	var lefts []llkit.Symbol
	r.Each(func(p Pair) {
		if !seen[p.Left] {
			seen[p.Left] = true
			lefts = append(lefts, p.Left)
		}
	})
	return lefts
}

// Format returns a pair in report notation, e.g. "A BW a".
func (r *Relation) Format(p Pair) string {
	return fmt.Sprintf("%s %s %s", p.Left, r.tag.Abbrev(), p.Right)
}

// IsTransitive checks if (a,b) ∧ (b,c) ⇒ (a,c) holds for r.
func (r *Relation) IsTransitive() bool {
	succ := r.successors()
	for _, p := range r.Pairs() {
		for _, c := range succ[p.Right] {
			if !r.Contains(p.Left, c) {
				return false
			}
		}
	}
	return true
}

// IsReflexiveOver checks if (x,x) is in r for every x of universe except ϵ.
func (r *Relation) IsReflexiveOver(universe []llkit.Symbol) bool {
	for _, x := range universe {
		if !x.IsEpsilon() && !r.Contains(x, x) {
			return false
		}
	}
	return true
}

func (r *Relation) successors() map[llkit.Symbol][]llkit.Symbol {
	succ := make(map[llkit.Symbol][]llkit.Symbol)
	r.Each(func(p Pair) {
		succ[p.Left] = append(succ[p.Left], p.Right)
	})
	return succ
}

func (r *Relation) String() string {
	var b strings.Builder
	b.WriteString(r.tag.Abbrev())
	b.WriteString("{")
	for i, p := range r.Pairs() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("}")
	return b.String()
}

// SortPairs sorts pairs in canonical order: by left symbol, then by right symbol.
func SortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if c := llkit.Compare(pairs[i].Left, pairs[j].Left); c != 0 {
			return c < 0
		}
		return llkit.Compare(pairs[i].Right, pairs[j].Right) < 0
	})
}
