// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the two wrappers
// used across the package. All operations return these sentinels (possibly
// wrapped) and tests check them via errors.Is. Panics are reserved for
// precondition violations on iterator construction (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping.
// Wrap with matrixErrorf/denseErrorf at the detection site; callers still
// match with errors.Is.

var (
	// ErrInvalidDimensions indicates that a requested dimension is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when the requested shape cannot be represented:
	// rows*cols overflows int, or a literal initializer is ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaN signals a NaN value was stored while the numeric policy rejects it.
	ErrNaN = errors.New("matrix: NaN encountered")
)

// Panic messages for precondition violations (no magic strings).
const (
	panicRowIndex = "matrix: row index out of range"
	panicColIndex = "matrix: column index out of range"
	panicEpsilon  = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with Matrix method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
