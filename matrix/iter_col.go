// SPDX-License-Identifier: MIT

// Package matrix - strided column iteration.
//
// Column data is not contiguous in row-major storage: logical neighbours in
// column c sit Cols() elements apart. ColIterator keeps the current row start
// and the fixed column, and moves by whole rows.
//
// Contract highlights:
//   - Value/At/Set/Ptr address data[rowStart + col].
//   - Next/Prev/Add/Sub move by stride (= Cols()) per logical step.
//   - Distance is (raw offset difference) / stride; undefined for iterators
//     over matrices of different width.
//   - Equal compares both the position and the column.
//   - Const converts mutable to read-only; there is no conversion back.
package matrix

import "fmt"

// ColIterator is a mutable random-access cursor down one column.
type ColIterator[T Element] struct{ c cursor[T] }

// ConstColIterator is the read-only counterpart of ColIterator.
type ConstColIterator[T Element] struct{ c cursor[T] }

var (
	_ Writable[float64, ColIterator[float64]]          = ColIterator[float64]{}
	_ RandomAccess[float64, ColIterator[float64]]      = ColIterator[float64]{}
	_ RandomAccess[float64, ConstColIterator[float64]] = ConstColIterator[float64]{}
)

// ColBegin returns an iterator at (0, col).
// Panics when col is outside [0, Cols()).
func (m *Matrix[T]) ColBegin(col int) ColIterator[T] {
	if col < 0 || col >= m.cols {
		panic(fmt.Sprintf("%s: %d not in [0,%d)", panicColIndex, col, m.cols))
	}

	return ColIterator[T]{cursor[T]{data: m.data, cur: 0, lane: col, stride: m.cols}}
}

// ColEnd returns ColBegin(col).Add(Rows()).
func (m *Matrix[T]) ColEnd(col int) ColIterator[T] {
	return m.ColBegin(col).Add(m.rows)
}

// CColBegin is the read-only form of ColBegin.
func (m *Matrix[T]) CColBegin(col int) ConstColIterator[T] { return m.ColBegin(col).Const() }

// CColEnd is the read-only form of ColEnd.
func (m *Matrix[T]) CColEnd(col int) ConstColIterator[T] { return m.ColEnd(col).Const() }

// ---------- ColIterator ----------

// Value returns the element under the cursor.
func (it ColIterator[T]) Value() T { return it.c.get() }

// At returns the element k rows further down without moving.
func (it ColIterator[T]) At(k int) T { return it.c.getAt(k) }

// Set stores v under the cursor.
func (it ColIterator[T]) Set(v T) { it.c.put(v) }

// Ptr returns the address of the element under the cursor.
func (it ColIterator[T]) Ptr() *T { return it.c.ref() }

// Next moves one row down.
func (it *ColIterator[T]) Next() { it.c = it.c.moved(1) }

// Prev moves one row up.
func (it *ColIterator[T]) Prev() { it.c = it.c.moved(-1) }

// Add returns a copy moved k rows.
func (it ColIterator[T]) Add(k int) ColIterator[T] { return ColIterator[T]{it.c.moved(k)} }

// Sub returns a copy moved -k rows.
func (it ColIterator[T]) Sub(k int) ColIterator[T] { return ColIterator[T]{it.c.moved(-k)} }

// Distance returns it - other in rows.
func (it ColIterator[T]) Distance(other ColIterator[T]) int { return it.c.steps(other.c) }

// Equal reports whether both iterators sit on the same row start and column.
func (it ColIterator[T]) Equal(other ColIterator[T]) bool { return it.c.same(other.c) }

// Less orders iterators by row position.
func (it ColIterator[T]) Less(other ColIterator[T]) bool { return it.c.before(other.c) }

// Column returns the fixed column index.
func (it ColIterator[T]) Column() int { return it.c.lane }

// Offset returns the buffer index addressed by the iterator.
func (it ColIterator[T]) Offset() int { return it.c.offset() }

// Const converts to the read-only variant.
func (it ColIterator[T]) Const() ConstColIterator[T] { return ConstColIterator[T](it) }

// ---------- ConstColIterator ----------

// Value returns the element under the cursor.
func (it ConstColIterator[T]) Value() T { return it.c.get() }

// At returns the element k rows further down without moving.
func (it ConstColIterator[T]) At(k int) T { return it.c.getAt(k) }

// Next moves one row down.
func (it *ConstColIterator[T]) Next() { it.c = it.c.moved(1) }

// Prev moves one row up.
func (it *ConstColIterator[T]) Prev() { it.c = it.c.moved(-1) }

// Add returns a copy moved k rows.
func (it ConstColIterator[T]) Add(k int) ConstColIterator[T] {
	return ConstColIterator[T]{it.c.moved(k)}
}

// Sub returns a copy moved -k rows.
func (it ConstColIterator[T]) Sub(k int) ConstColIterator[T] {
	return ConstColIterator[T]{it.c.moved(-k)}
}

// Distance returns it - other in rows.
func (it ConstColIterator[T]) Distance(other ConstColIterator[T]) int { return it.c.steps(other.c) }

// Equal reports whether both iterators sit on the same row start and column.
func (it ConstColIterator[T]) Equal(other ConstColIterator[T]) bool { return it.c.same(other.c) }

// Less orders iterators by row position.
func (it ConstColIterator[T]) Less(other ConstColIterator[T]) bool { return it.c.before(other.c) }

// Column returns the fixed column index.
func (it ConstColIterator[T]) Column() int { return it.c.lane }

// Offset returns the buffer index addressed by the iterator.
func (it ConstColIterator[T]) Offset() int { return it.c.offset() }
