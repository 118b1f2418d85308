// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T] storage (row-major) & lifecycle.
//
// Purpose:
//   - Own a single contiguous buffer of rows*cols elements with the explicit
//     index formula i*cols + j.
//   - Guarantee value semantics: every constructor copies caller data, Clone
//     is always deep, Assign is clone-then-swap.
//   - Normalize every zero-area shape to the canonical empty state
//     (rows=0, cols=0, data=nil) so "0×5" is never observable.
//
// Complexity quicksheet:
//   - NewDense/FromRows/Clone: O(r*c); At/Set/Swap/Clear: O(1).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxApply    = "Apply"
	ctxNew      = "NewDense"
	ctxFromRows = "FromRows"
	ctxFromData = "NewFromData"
	ctxAssign   = "Assign"
	ctxFill     = "Fill"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense row-major matrix of T.
//   - rows, cols hold dimensions; both are 0 iff the matrix is empty.
//   - data is a flat buffer of length rows*cols (nil when empty).
//   - opts is the numeric policy resolved at construction.
//
// The zero value is the canonical empty matrix and is ready to use.
// A Matrix exclusively owns its buffer; copy it with Clone or Assign,
// never by dereferencing (*m) into another variable.
type Matrix[T Element] struct {
	rows, cols int
	data       []T
	opts       Options
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// NewEmpty returns the canonical empty matrix. No allocation beyond the header.
func NewEmpty[T Element](opts ...Option) *Matrix[T] {
	return &Matrix[T]{opts: gatherOptions(opts...)}
}

// NewDense creates a rows×cols matrix of zero values.
//
// Implementation:
//   - Stage 1: reject negative dimensions (ErrInvalidDimensions).
//   - Stage 2: collapse any zero-area shape to the canonical empty state.
//   - Stage 3: reject rows*cols overflow (ErrBadShape) before allocating.
//   - Stage 4: allocate the zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	n, err := checkedArea(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	m := &Matrix[T]{opts: gatherOptions(opts...)}
	if n == 0 {
		return m, nil // canonical empty: no allocation
	}
	m.rows, m.cols = rows, cols
	m.data = make([]T, n) // make() zero-fills deterministically

	return m, nil
}

// FromRows builds a matrix from a literal 2D initializer, copying elements
// in row-major order. All rows must have the same length.
//
// Behavior highlights:
//   - An empty outer slice, or rows of length zero, yield the canonical empty matrix.
//   - Ragged input is rejected with ErrBadShape.
//   - The source slices are copied; later edits to them are not observed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Element](rows [][]T, opts ...Option) (*Matrix[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
	}
	m, err := NewDense[T](r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		base := i * m.cols
		for j = 0; j < m.cols; j++ {
			v := rows[i][j]
			if m.opts.validateNaN && isNaN(v) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaN)
			}
			m.data[base+j] = v
		}
	}

	return m, nil
}

// NewFromData builds a rows×cols matrix from a flat row-major slice.
// The slice is copied; len(data) must equal rows*cols.
func NewFromData[T Element](rows, cols int, data []T, opts ...Option) (*Matrix[T], error) {
	n, err := checkedArea(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxFromData, err)
	}
	if len(data) != n {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w", ctxFromData, len(data), n, ErrDimensionMismatch)
	}
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromData, err)
	}
	if m.opts.validateNaN {
		for k, v := range data {
			if isNaN(v) {
				return nil, denseErrorf(ctxFromData, k/cols, k%cols, ErrNaN)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// checkedArea validates (rows, cols) and returns rows*cols.
// Zero area is legal; the caller normalizes it.
func checkedArea(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	n := rows * cols
	if n/rows != cols {
		return 0, ErrBadShape // overflow: cannot be allocated
	}

	return n, nil
}

// isNaN is the generic NaN probe: only NaN compares unequal to itself.
func isNaN[T Element](v T) bool { return v != v }

// ---------- Shape queries ----------

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Size returns rows*cols.
func (m *Matrix[T]) Size() int { return m.rows * m.cols }

// Empty reports Size() == 0.
func (m *Matrix[T]) Empty() bool { return m.Size() == 0 }

// Options returns the numeric policy carried by m.
func (m *Matrix[T]) Options() Options { return m.opts }

// ---------- Element access ----------

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.cols + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Returns ErrOutOfRange for bad indices and
// ErrNaN when the NaN guard is on.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaN && isNaN(v) {
		return denseErrorf(ctxSet, row, col, ErrNaN)
	}
	m.data[off] = v

	return nil
}

// Ptr returns a pointer to the cell at (row, col), the mutable reference
// form of At. The pointer is invalidated by Assign, Swap, MulInPlace and Clear.
func (m *Matrix[T]) Ptr(row, col int) (*T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return &m.data[off], nil
}

// Data returns the full row-major buffer without copying, for interop with
// external numeric routines. Writes through the slice mutate m.
// Returns nil for an empty matrix.
func (m *Matrix[T]) Data() []T { return m.data }

// RowView returns row r as a shared sub-slice of the buffer.
func (m *Matrix[T]) RowView(r int) ([]T, error) {
	if r < 0 || r >= m.rows {
		return nil, fmt.Errorf("Matrix.RowView(%d): %w", r, ErrOutOfRange)
	}
	base := r * m.cols

	return m.data[base : base+m.cols : base+m.cols], nil
}

// ---------- Lifecycle ----------

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, opts: m.opts}
	if m.data != nil {
		out.data = make([]T, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// Assign replaces the contents of m with a deep copy of src.
// The copy is fully built before it is swapped in, so a failure leaves m
// untouched. Self-assignment is a no-op.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	tmp := src.Clone()
	m.Swap(tmp) // tmp now holds the old state and is dropped

	return nil
}

// Swap exchanges the complete state of m and other in O(1). Never fails.
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	m.rows, other.rows = other.rows, m.rows
	m.cols, other.cols = other.cols, m.cols
	m.data, other.data = other.data, m.data
	m.opts, other.opts = other.opts, m.opts
}

// Clear releases the buffer and returns m to the canonical empty state.
// The numeric policy is kept. Safe on an already empty matrix.
func (m *Matrix[T]) Clear() {
	m.rows, m.cols = 0, 0
	m.data = nil
}

// ---------- Visitors ----------

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in row-major order.
// With the NaN guard on, the first NaN aborts with ErrNaN; elements written
// before it stay updated. For all-or-nothing semantics apply on a Clone and
// Assign it back.
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, base int
	var nv T
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			nv = f(i, j, m.data[base+j])
			if m.opts.validateNaN && isNaN(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaN)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// Fill sets every element to v.
// With the NaN guard on, a NaN v is rejected with ErrNaN and m is unchanged.
// Writes through iterators are never guarded.
func (m *Matrix[T]) Fill(v T) error {
	if m.opts.validateNaN && isNaN(v) {
		return matrixErrorf(ctxFill, ErrNaN)
	}
	Fill(m.Begin(), m.End(), v)

	return nil
}

// String renders one bracketed row per line, values formatted with %v.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
