// SPDX-License-Identifier: MIT

// Package matrix: element and iterator constraints.
// This file contains ONLY type-level contracts shared by storage, iteration
// and arithmetic. Implementations live in dense.go, iter_*.go and ops_*.go.
package matrix

import "golang.org/x/exp/constraints"

// Element is the capability bound for matrix cells.
// Every Element has a usable zero value (default construction), is copied by
// assignment and supports +, -, * and ==.
type Element interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Float restricts tolerance-based comparisons (AllClose) to real floats.
type Float interface {
	constraints.Float
}

// Readable is the forward read contract shared by every iterator in this
// package. I is the iterator type itself, so algorithms stay monomorphic.
//
// Complexity: every method is O(1).
type Readable[T Element, I any] interface {
	// Value returns the element under the cursor.
	Value() T

	// Add returns a copy moved k logical steps (k may be negative).
	Add(k int) I

	// Equal reports whether both cursors address the same logical slot.
	Equal(other I) bool
}

// Writable extends Readable with element stores through the cursor.
type Writable[T Element, I any] interface {
	Readable[T, I]

	// Set stores v under the cursor.
	Set(v T)
}

// RandomAccess adds O(1) distance between two cursors of the same range.
type RandomAccess[T Element, I any] interface {
	Readable[T, I]

	// Distance returns the number of logical steps from other to the receiver.
	Distance(other I) int
}
