// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical
//     constructors and kernels. No logic is duplicated here.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a rows×cols matrix of zeros. Alias of NewDense.
func NewZeros[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns I_n. NewIdentity(0) is the canonical empty matrix.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Element](n int, opts ...Option) (*Matrix[T], error) {
	I, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	// Walk the diagonal: one step down a column plus one step right is n+1.
	diag := I.Begin()
	for i := 0; i < n; i++ {
		diag.Add(i * (n + 1)).Set(1)
	}

	return I, nil
}

// ZerosLike returns a zero matrix with the shape and policy of m.
func ZerosLike[T Element](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	out, err := NewDense[T](m.rows, m.cols)
	if err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	out.opts = m.opts

	return out, nil
}

// IdentityLike returns the identity of dimension Rows(m); m must be square.
func IdentityLike[T Element](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	out, err := NewIdentity[T](m.rows)
	if err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	out.opts = m.opts

	return out, nil
}

// ---------- Linear algebra aliases ----------

// Sum is an alias for Add.
func Sum[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// ScaleBy is an alias for Scale.
func ScaleBy[T Element](m *Matrix[T], k T) (*Matrix[T], error) { return Scale(m, k) }

// T is an alias for Transpose.
func T[E Element](m *Matrix[E]) (*Matrix[E], error) { return Transpose(m) }

// ---------- Reductions ----------

// RowSums returns r[i] = Σ_j m[i,j], one Accumulate per row range.
// Complexity: O(r*c).
func RowSums[T Element](m *Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	var zero T
	out := make([]T, m.rows)
	for i := range out {
		out[i] = Accumulate(m.CRowBegin(i), m.CRowEnd(i), zero)
	}

	return out, nil
}

// ColSums returns c[j] = Σ_i m[i,j], one Accumulate per strided column.
// Complexity: O(r*c).
func ColSums[T Element](m *Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	var zero T
	out := make([]T, m.cols)
	for j := range out {
		out[j] = Accumulate(m.CColBegin(j), m.CColEnd(j), zero)
	}

	return out, nil
}

// Trace returns Σ_i m[i,i]; m must be square.
func Trace[T Element](m *Matrix[T]) (T, error) {
	var sum T
	if err := ValidateSquare(m); err != nil {
		return sum, matrixErrorf("Trace", err)
	}
	for i := 0; i < m.rows; i++ {
		sum += m.ColBegin(i).At(i)
	}

	return sum, nil
}
