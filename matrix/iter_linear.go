// SPDX-License-Identifier: MIT

// Package matrix - linear and row iteration.
//
// Purpose:
//   - Iterator / ConstIterator walk the buffer with stride 1: either the
//     whole buffer in storage order (Begin/End) or one row (RowBegin/RowEnd).
//   - The mutable variant converts to the read-only one via Const(); there is
//     no conversion back.
//
// Invalidation: Assign, Swap, MulInPlace and Clear replace the buffer;
// iterators obtained before them keep pointing at the old storage.
package matrix

import "fmt"

// Iterator is a mutable random-access cursor over a contiguous range.
type Iterator[T Element] struct{ c cursor[T] }

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T Element] struct{ c cursor[T] }

// Compile-time assertions for the iterator contracts.
var (
	_ Writable[float64, Iterator[float64]]          = Iterator[float64]{}
	_ RandomAccess[float64, Iterator[float64]]      = Iterator[float64]{}
	_ RandomAccess[float64, ConstIterator[float64]] = ConstIterator[float64]{}
)

func linear[T Element](data []T, off int) cursor[T] {
	return cursor[T]{data: data, cur: off, stride: 1}
}

// ---------- Matrix accessors ----------

// Begin returns an iterator at the first element in storage order.
func (m *Matrix[T]) Begin() Iterator[T] { return Iterator[T]{linear(m.data, 0)} }

// End returns the past-the-end iterator of the storage range.
func (m *Matrix[T]) End() Iterator[T] { return Iterator[T]{linear(m.data, m.Size())} }

// CBegin is the read-only form of Begin.
func (m *Matrix[T]) CBegin() ConstIterator[T] { return m.Begin().Const() }

// CEnd is the read-only form of End.
func (m *Matrix[T]) CEnd() ConstIterator[T] { return m.End().Const() }

// RowBegin returns an iterator at (row, 0).
// Panics when row is outside [0, Rows()): callers validate indices first.
func (m *Matrix[T]) RowBegin(row int) Iterator[T] {
	m.mustRow(row)
	return Iterator[T]{linear(m.data, row*m.cols)}
}

// RowEnd returns the past-the-end iterator of row, RowBegin(row).Add(Cols()).
func (m *Matrix[T]) RowEnd(row int) Iterator[T] {
	return m.RowBegin(row).Add(m.cols)
}

// CRowBegin is the read-only form of RowBegin.
func (m *Matrix[T]) CRowBegin(row int) ConstIterator[T] { return m.RowBegin(row).Const() }

// CRowEnd is the read-only form of RowEnd.
func (m *Matrix[T]) CRowEnd(row int) ConstIterator[T] { return m.RowEnd(row).Const() }

func (m *Matrix[T]) mustRow(row int) {
	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("%s: %d not in [0,%d)", panicRowIndex, row, m.rows))
	}
}

// ---------- Iterator ----------

// Value returns the element under the cursor.
func (it Iterator[T]) Value() T { return it.c.get() }

// At returns the element k steps ahead without moving.
func (it Iterator[T]) At(k int) T { return it.c.getAt(k) }

// Set stores v under the cursor.
func (it Iterator[T]) Set(v T) { it.c.put(v) }

// Ptr returns the address of the element under the cursor.
func (it Iterator[T]) Ptr() *T { return it.c.ref() }

// Next moves one element forward.
func (it *Iterator[T]) Next() { it.c = it.c.moved(1) }

// Prev moves one element back.
func (it *Iterator[T]) Prev() { it.c = it.c.moved(-1) }

// Add returns a copy moved k elements.
func (it Iterator[T]) Add(k int) Iterator[T] { return Iterator[T]{it.c.moved(k)} }

// Sub returns a copy moved -k elements.
func (it Iterator[T]) Sub(k int) Iterator[T] { return Iterator[T]{it.c.moved(-k)} }

// Distance returns it - other in elements.
func (it Iterator[T]) Distance(other Iterator[T]) int { return it.c.steps(other.c) }

// Equal reports whether both iterators address the same element.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.c.same(other.c) }

// Less orders iterators by buffer position.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.c.before(other.c) }

// Offset returns the buffer index addressed by the iterator.
func (it Iterator[T]) Offset() int { return it.c.offset() }

// Const converts to the read-only variant.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T](it) }

// ---------- ConstIterator ----------

// Value returns the element under the cursor.
func (it ConstIterator[T]) Value() T { return it.c.get() }

// At returns the element k steps ahead without moving.
func (it ConstIterator[T]) At(k int) T { return it.c.getAt(k) }

// Next moves one element forward.
func (it *ConstIterator[T]) Next() { it.c = it.c.moved(1) }

// Prev moves one element back.
func (it *ConstIterator[T]) Prev() { it.c = it.c.moved(-1) }

// Add returns a copy moved k elements.
func (it ConstIterator[T]) Add(k int) ConstIterator[T] { return ConstIterator[T]{it.c.moved(k)} }

// Sub returns a copy moved -k elements.
func (it ConstIterator[T]) Sub(k int) ConstIterator[T] { return ConstIterator[T]{it.c.moved(-k)} }

// Distance returns it - other in elements.
func (it ConstIterator[T]) Distance(other ConstIterator[T]) int { return it.c.steps(other.c) }

// Equal reports whether both iterators address the same element.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool { return it.c.same(other.c) }

// Less orders iterators by buffer position.
func (it ConstIterator[T]) Less(other ConstIterator[T]) bool { return it.c.before(other.c) }

// Offset returns the buffer index addressed by the iterator.
func (it ConstIterator[T]) Offset() int { return it.c.offset() }
