/*
Package sparse implements a simple type for sparse matrices of small tags.
It is used to record per-pair information for relations over grammar symbols,
where only a small fraction of the symbol × symbol space is populated.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"strings"
)

// TagMatrix is a sparse m x n matrix of int8 tags. Construct with
//
//     M := NewTagMatrix(54, 54, 0)   // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 1)                 // set a tag
//     v := M.Value(2, 3)             // returns 1
//     M.SetIfNull(2, 3, 2)           // no effect, (2,3) already tagged
//     cnt := M.ValueCount()          // returns 1
//     v = M.Value(10, 10)            // returns 0, i.e. the null-value
//
// Triplets are kept sorted by row, then column.
type TagMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int8
}

type triplet struct {
	row, col int
	tag      int8
}

// NewTagMatrix creates a new matrix of size m x n. The 3rd argument is a null-value,
// indicating empty entries.
func NewTagMatrix(m, n int, nullValue int8) *TagMatrix {
	return &TagMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *TagMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *TagMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *TagMatrix) NullValue() int8 {
	return m.nullval
}

// ValueCount returns the number of non-null positions in the matrix.
func (m *TagMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the tag at position (i,j), or NullValue.
func (m *TagMatrix) Value(i, j int) int8 {
	if k, found := m.find(i, j); found {
		return m.values[k].tag
	}
	return m.nullval
}

// Set a tag at position (i,j). Positions outside the matrix are ignored.
func (m *TagMatrix) Set(i, j int, tag int8) *TagMatrix {
	m.put(i, j, tag, true)
	return m
}

// SetIfNull sets a tag at position (i,j) if the position is still empty.
// It returns true if the tag has been set.
func (m *TagMatrix) SetIfNull(i, j int, tag int8) bool {
	return m.put(i, j, tag, false)
}

// Each calls f for every non-null position, ordered by row, then column.
func (m *TagMatrix) Each(f func(i, j int, tag int8)) {
	for _, t := range m.values {
		f(t.row, t.col, t.tag)
	}
}

// Count returns the number of positions carrying tag.
func (m *TagMatrix) Count(tag int8) int {
	n := 0
	for _, t := range m.values {
		if t.tag == tag {
			n++
		}
	}
	return n
}

func (m *TagMatrix) put(i, j int, tag int8, overwrite bool) bool {
	if i < 0 || j < 0 || i >= m.rowcnt || j >= m.colcnt {
		return false
	}
	at, found := m.find(i, j)
	if found {
		if !overwrite {
			return false
		}
		m.values[at].tag = tag
		return true
	}
	tnew := triplet{row: i, col: j, tag: tag}
	// the following 3 lines have to work for at being the right edge of values or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return true
}

// find does a binary search for (i,j). If (i,j) is not stored, it returns the
// insert position.
func (m *TagMatrix) find(i, j int) (int, bool) {
	lo, hi := 0, len(m.values)
	for lo < hi {
		mid := (lo + hi) / 2
		if m.values[mid].storedLeftOf(i, j) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(m.values) && m.values[lo].storedAt(i, j) {
		return lo, true
	}
	return lo, false
}

func (t triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

func (m *TagMatrix) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("TagMatrix[%dx%d]{", m.rowcnt, m.colcnt))
	for k, t := range m.values {
		if k > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("(%d,%d)=%d", t.row, t.col, t.tag))
	}
	b.WriteString("}")
	return b.String()
}
