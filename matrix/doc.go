// Package matrix provides Matrix[T], a generic dense row-major container with
// value semantics, three iterator families and an arithmetic layer.
//
// The matrix package provides:
//
//   - Storage & lifecycle: NewDense, FromRows, NewFromData, Clone, Assign,
//     Swap and Clear over one contiguous buffer. Any zero-area shape is
//     normalized to the canonical empty matrix (0×0, no buffer).
//   - Iteration: linear (Begin/End), row (RowBegin/RowEnd) and strided column
//     (ColBegin/ColEnd) cursors, each with a read-only variant obtained via
//     Const().
//   - Generic algorithms (InnerProduct, Transform, Transform2, EqualRange,
//     Copy, Fill, Accumulate, Distance) that run unchanged on all three.
//   - Arithmetic: Add, Sub, Scale, ScaleLeft, Mul, Hadamard, Transpose, MatVec
//     and the in-place AddInPlace, SubInPlace, ScaleInPlace, MulInPlace.
//     Shape mismatches are reported as ErrDimensionMismatch.
//
// Precondition violations on iterator construction (row or column out of
// range) panic; checked accessors (At, Set, Ptr, RowView) return ErrOutOfRange.
//
// A Matrix is not safe for concurrent mutation; serialize access externally.
//
// See the examples in this package for usage patterns.
package matrix
