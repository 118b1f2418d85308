// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// grid3x4 is
//
//	[ 0  1  2  3]
//	[10 11 12 13]
//	[20 21 22 23]
func grid3x4(t *testing.T) *matrix.Matrix[int] {
	return mustFromRows(t, [][]int{
		{0, 1, 2, 3},
		{10, 11, 12, 13},
		{20, 21, 22, 23},
	})
}

func TestLinearIterationStorageOrder(t *testing.T) {
	m := grid3x4(t)
	var got []int
	for it, end := m.CBegin(), m.CEnd(); !it.Equal(end); it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, m.Data(), got)
	require.Equal(t, m.Size(), matrix.Distance(m.Begin(), m.End()))
}

func TestLinearIteratorWrites(t *testing.T) {
	m := mustDense[int](t, 2, 2)
	k := 1
	for it, end := m.Begin(), m.End(); !it.Equal(end); it.Next() {
		it.Set(k)
		k++
	}
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())

	it := m.Begin().Add(3)
	*it.Ptr() = 40
	require.Equal(t, 40, mustAt(t, m, 1, 1))
}

func TestRowIteration(t *testing.T) {
	m := grid3x4(t)
	for r := 0; r < m.Rows(); r++ {
		first, last := m.CRowBegin(r), m.CRowEnd(r)
		require.Equal(t, m.Cols(), matrix.Distance(first, last))
		require.Equal(t, r*m.Cols(), first.Offset())
		c := 0
		for it := first; !it.Equal(last); it.Next() {
			require.Equal(t, 10*r+c, it.Value())
			c++
		}
		require.Equal(t, m.Cols(), c)
	}

	// Writes through a row iterator land in that row only.
	matrix.Fill(m.RowBegin(1), m.RowEnd(1), -1)
	require.Equal(t, []int{0, 1, 2, 3, -1, -1, -1, -1, 20, 21, 22, 23}, m.Data())
}

func TestIteratorArithmetic(t *testing.T) {
	m := grid3x4(t)
	it := m.Begin()
	it.Next()
	it.Next()
	require.Equal(t, 2, it.Value())
	it.Prev()
	require.Equal(t, 1, it.Value())
	require.Equal(t, 13, it.Add(6).Value())
	require.Equal(t, 0, it.Add(6).Sub(7).Value())
	require.Equal(t, 11, it.At(4))
	require.True(t, m.Begin().Less(it))
	require.False(t, it.Less(m.Begin()))
	require.Equal(t, -1, m.Begin().Distance(it))

	c := it.Const()
	require.Equal(t, it.Value(), c.Value())
	require.Equal(t, it.Offset(), c.Offset())
	require.True(t, c.Equal(m.CBegin().Add(1)))
}

func TestColumnIteration(t *testing.T) {
	m := grid3x4(t)
	for c := 0; c < m.Cols(); c++ {
		first, last := m.CColBegin(c), m.CColEnd(c)
		require.Equal(t, m.Rows(), matrix.Distance(first, last))
		require.Equal(t, c, first.Column())
		r := 0
		for it := first; !it.Equal(last); it.Next() {
			require.Equal(t, 10*r+c, it.Value())
			require.Equal(t, r*m.Cols()+c, it.Offset())
			r++
		}
		require.Equal(t, m.Rows(), r)
	}
}

func TestColumnIteratorContract(t *testing.T) {
	m := grid3x4(t)
	it := m.ColBegin(2)

	it.Next()
	require.Equal(t, 12, it.Value())
	it.Next()
	require.Equal(t, 22, it.Value())
	it.Prev()
	require.Equal(t, 12, it.Value())

	// Arbitrary offsets move whole strides.
	require.Equal(t, 22, it.Add(1).Value())
	require.Equal(t, 2, it.Sub(1).Value())
	require.Equal(t, 22, m.ColBegin(2).At(2))

	// Distance counts logical steps, not buffer elements.
	require.Equal(t, 3, m.ColEnd(2).Distance(m.ColBegin(2)))
	require.Equal(t, -1, m.ColBegin(2).Distance(it))

	// Ordering follows the row position.
	require.True(t, m.ColBegin(2).Less(it))
	require.False(t, it.Less(m.ColBegin(2)))

	// Writes go to the addressed cell.
	it.Set(-12)
	require.Equal(t, -12, mustAt(t, m, 1, 2))
	*it.Add(1).Ptr() = -22
	require.Equal(t, -22, mustAt(t, m, 2, 2))
}

func TestColumnIteratorEqualityIncludesColumn(t *testing.T) {
	m := grid3x4(t)
	// Same row start, different columns: never equal.
	require.False(t, m.ColBegin(0).Equal(m.ColBegin(1)))
	require.True(t, m.ColBegin(1).Equal(m.ColBegin(1)))
	// End of one column is not the end of another.
	require.False(t, m.ColEnd(0).Equal(m.ColEnd(3)))
	require.True(t, m.ColBegin(3).Add(m.Rows()).Equal(m.ColEnd(3)))
}

func TestColumnIteratorConstConversion(t *testing.T) {
	m := grid3x4(t)
	it := m.ColBegin(1).Add(2)
	c := it.Const()
	require.Equal(t, it.Value(), c.Value())
	require.Equal(t, it.Column(), c.Column())
	require.Equal(t, it.Offset(), c.Offset())
	require.True(t, c.Equal(m.CColBegin(1).Add(2)))
	require.Equal(t, 1, c.Distance(m.CColBegin(1).Add(1)))
	require.Equal(t, 1, c.Sub(2).At(0))
	c.Prev()
	require.Equal(t, 11, c.Value())
	require.True(t, m.CColBegin(1).Less(c))
}

// TestRowColumnDuality: advancing column c by r steps and row r by c steps
// reach the same cell as At(r, c).
func TestRowColumnDuality(t *testing.T) {
	m := randInts(t, 5, 7, 99)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			want := mustAt(t, m, r, c)
			require.Equal(t, want, m.CColBegin(c).Add(r).Value(), "col %d step %d", c, r)
			require.Equal(t, want, m.CRowBegin(r).Add(c).Value(), "row %d step %d", r, c)
		}
	}
}

func TestSingleRowAndColumnShapes(t *testing.T) {
	row := mustFromRows(t, [][]int{{1, 2, 3}})
	require.Equal(t, 1, matrix.Distance(row.CColBegin(2), row.CColEnd(2)))
	require.Equal(t, 3, row.CColBegin(2).Value())

	col := mustFromRows(t, [][]int{{1}, {2}, {3}})
	require.Equal(t, 3, matrix.Distance(col.CColBegin(0), col.CColEnd(0)))
	require.Equal(t, 3, col.CColBegin(0).At(2))
	require.Equal(t, 1, matrix.Distance(col.CRowBegin(1), col.CRowEnd(1)))
}

func TestIteratorPreconditionsPanic(t *testing.T) {
	m := grid3x4(t)
	require.Panics(t, func() { m.RowBegin(3) })
	require.Panics(t, func() { m.RowEnd(-1) })
	require.Panics(t, func() { m.ColBegin(4) })
	require.Panics(t, func() { m.CColEnd(-1) })

	var empty matrix.Matrix[int]
	require.Panics(t, func() { empty.RowBegin(0) })
	require.Panics(t, func() { empty.ColBegin(0) })
}
