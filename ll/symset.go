package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/llkit"
)

// SymbolSet is a set of grammar symbols. Iteration order is canonical:
// non-terminals, terminals, ϵ, ←.
type SymbolSet struct {
	set *treeset.Set
}

func symbolComparator(a, b interface{}) int {
	return llkit.Compare(a.(llkit.Symbol), b.(llkit.Symbol))
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...llkit.Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.set.Add(A)
	}
	return S
}

// Add inserts symbols into the set. It returns true if S has changed.
func (S *SymbolSet) Add(syms ...llkit.Symbol) bool {
	n := S.set.Size()
	for _, A := range syms {
		S.set.Add(A)
	}
	return S.set.Size() != n
}

// AddAll inserts all symbols of other into S, optionally without ϵ.
// It returns true if S has changed.
func (S *SymbolSet) AddAll(other *SymbolSet, withEpsilon bool) bool {
	if other == nil {
		return false
	}
	changed := false
	for _, A := range other.Values() {
		if A.IsEpsilon() && !withEpsilon {
			continue
		}
		if S.Add(A) {
			changed = true
		}
	}
	return changed
}

// Contains checks membership of A.
func (S *SymbolSet) Contains(A llkit.Symbol) bool {
	return S.set.Contains(A)
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	return S.set.Size()
}

// Empty is true for an empty set.
func (S *SymbolSet) Empty() bool {
	return S.set.Empty()
}

// Values returns the symbols of S in canonical order.
func (S *SymbolSet) Values() []llkit.Symbol {
	syms := make([]llkit.Symbol, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(llkit.Symbol))
	}
	return syms
}

// Intersection returns the symbols contained in both S and other.
func (S *SymbolSet) Intersection(other *SymbolSet) []llkit.Symbol {
	var common []llkit.Symbol
	for _, A := range S.Values() {
		if other.Contains(A) {
			common = append(common, A)
		}
	}
	return common
}

// Equals checks if S and other contain the same symbols.
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, A := range S.Values() {
		if !other.Contains(A) {
			return false
		}
	}
	return true
}

// String returns S in set notation, e.g. "{a, b, ϵ}".
func (S *SymbolSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, A := range S.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(A.String())
	}
	b.WriteString("}")
	return b.String()
}
