// SPDX-License-Identifier: MIT

// Package matrix - gods interoperability.
//
// Matrix satisfies containers.Container, and Walker exposes any linear, row
// or column range as a containers.ReverseIteratorWithIndex, so the matrix can
// be handed to code written against github.com/emirpasic/gods.
// Walkers box every value into interface{}; use the typed iterators in hot paths.
package matrix

import "github.com/emirpasic/gods/containers"

var (
	_ containers.Container                = (*Matrix[float64])(nil)
	_ containers.ReverseIteratorWithIndex = (*Walker[float64])(nil)
)

// Values returns all elements in storage order, boxed. Complexity: O(r*c).
func (m *Matrix[T]) Values() []interface{} {
	out := make([]interface{}, 0, m.Size())
	for it, end := m.CBegin(), m.CEnd(); !it.Equal(end); it.Next() {
		out = append(out, it.Value())
	}

	return out
}

// Walker is a stateful gods-style iterator over n logical slots starting at
// first. Index() is the logical step (column for rows, row for columns).
type Walker[T Element] struct {
	first cursor[T]
	n     int
	index int // -1 before the first slot, n past the last
}

// Walk iterates the whole buffer in storage order.
func (m *Matrix[T]) Walk() *Walker[T] {
	return &Walker[T]{first: m.Begin().c, n: m.Size(), index: -1}
}

// WalkRow iterates row r. Panics when r is out of range.
func (m *Matrix[T]) WalkRow(r int) *Walker[T] {
	return &Walker[T]{first: m.RowBegin(r).c, n: m.cols, index: -1}
}

// WalkCol iterates column c top to bottom. Panics when c is out of range.
func (m *Matrix[T]) WalkCol(c int) *Walker[T] {
	return &Walker[T]{first: m.ColBegin(c).c, n: m.rows, index: -1}
}

func (w *Walker[T]) within() bool { return w.index >= 0 && w.index < w.n }

// Next moves to the next slot and reports whether it exists.
// The first call moves to the first slot.
func (w *Walker[T]) Next() bool {
	if w.index < w.n {
		w.index++
	}

	return w.within()
}

// Prev moves to the previous slot and reports whether it exists.
func (w *Walker[T]) Prev() bool {
	if w.index >= 0 {
		w.index--
	}

	return w.within()
}

// Value returns the current element, boxed.
func (w *Walker[T]) Value() interface{} { return w.first.getAt(w.index) }

// Typed returns the current element without boxing.
func (w *Walker[T]) Typed() T { return w.first.getAt(w.index) }

// Index returns the current logical position.
func (w *Walker[T]) Index() int { return w.index }

// Begin resets to the before-first state.
func (w *Walker[T]) Begin() { w.index = -1 }

// End resets to the past-last state.
func (w *Walker[T]) End() { w.index = w.n }

// First moves to the first slot; false when the range is empty.
func (w *Walker[T]) First() bool {
	w.Begin()
	return w.Next()
}

// Last moves to the last slot; false when the range is empty.
func (w *Walker[T]) Last() bool {
	w.End()
	return w.Prev()
}

// NextTo advances until f returns true for the current slot.
// Reports false when the range is exhausted first.
func (w *Walker[T]) NextTo(f func(index int, value interface{}) bool) bool {
	for w.Next() {
		if f(w.Index(), w.Value()) {
			return true
		}
	}

	return false
}

// PrevTo moves back until f returns true for the current slot.
func (w *Walker[T]) PrevTo(f func(index int, value interface{}) bool) bool {
	for w.Prev() {
		if f(w.Index(), w.Value()) {
			return true
		}
	}

	return false
}
