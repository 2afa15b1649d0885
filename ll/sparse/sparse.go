/*
Package sparse implements a simple type for sparse integer matrices.
It is used for LL(1) parse tables, which are usually filled very thinly:
a non-terminal has entries only for the terminals which may start one of
its alternatives.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).
Triplets are kept sorted by row, then column.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.SetIfAbsent(2, 3, 123)       // no effect, returns false
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted. Positions outside of the matrix' dimensions
// cause a panic.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row, col int
	value    int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	m.check(i, j)
	if k, found := m.find(i, j); found {
		return m.values[k].value
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j), overwriting an existing one.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	m.check(i, j)
	k, found := m.find(i, j)
	if found {
		m.values[k].value = value
		return m
	}
	m.insert(k, triplet{row: i, col: j, value: value})
	return m
}

// SetIfAbsent sets a value at position (i,j) if no value is present there.
// It returns true if the value has been stored. Otherwise it returns false
// together with the value already present.
func (m *IntMatrix) SetIfAbsent(i, j int, value int32) (bool, int32) {
	m.check(i, j)
	k, found := m.find(i, j)
	if found && m.values[k].value != m.nullval {
		return false, m.values[k].value
	}
	if found {
		m.values[k].value = value
	} else {
		m.insert(k, triplet{row: i, col: j, value: value})
	}
	return true, value
}

// Each calls f for every position holding a value, ordered by row, then column.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, t := range m.values {
		if t.value != m.nullval {
			f(t.row, t.col, t.value)
		}
	}
}

func (m *IntMatrix) String() string {
	return fmt.Sprintf("IntMatrix(%dx%d, %d values)", m.rowcnt, m.colcnt, len(m.values))
}

// find returns the index of the triplet at (i,j) and true, or the index a
// triplet for (i,j) would have to be inserted at and false.
func (m *IntMatrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(k int) bool {
		return !m.values[k].storedLeftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].storedAt(i, j)
}

func (m *IntMatrix) insert(at int, t triplet) {
	// the following 3 lines have to work for at being the right edge of values or not
	m.values = append(m.values, t)       // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = t                     // if not append-case: insert new triplet
}

func (m *IntMatrix) check(i, j int) {
	if i < 0 || j < 0 || i >= m.rowcnt || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix: index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}
