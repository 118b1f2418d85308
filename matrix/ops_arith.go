// SPDX-License-Identifier: MIT
// Package matrix - arithmetic layer.
//
// Purpose:
//   - Elementwise add/sub, scalar scaling, matrix product, Hadamard product,
//     transpose and matrix-vector product, all written against the iterator
//     contracts (no raw index arithmetic in the kernels).
//   - In-place forms (AddInPlace, SubInPlace, ScaleInPlace, MulInPlace) mutate
//     the receiver; free forms return a fresh matrix and never touch operands.
//
// Shape policy:
//   - Every binary operation validates shapes first and reports
//     ErrDimensionMismatch; receivers are left untouched on error.
//   - Results inherit the numeric policy of the left operand.
package matrix

// Operation name constants for uniform error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opAddIn     = "AddInPlace"
	opSubIn     = "SubInPlace"
	opScaleIn   = "ScaleInPlace"
	opMulIn     = "MulInPlace"
)

func plus[T Element](a, b T) T  { return a + b }
func minus[T Element](a, b T) T { return a - b }
func times[T Element](a, b T) T { return a * b }

// combineInPlace runs m[k] = f(m[k], o[k]) in storage order after a shape check.
func (m *Matrix[T]) combineInPlace(o *Matrix[T], f func(T, T) T, tag string) error {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return matrixErrorf(tag, err)
	}
	Transform2(m.CBegin(), m.CEnd(), o.CBegin(), m.Begin(), f)

	return nil
}

// AddInPlace performs m += o elementwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m unchanged).
//
// Complexity: O(r*c).
func (m *Matrix[T]) AddInPlace(o *Matrix[T]) error { return m.combineInPlace(o, plus[T], opAddIn) }

// SubInPlace performs m -= o elementwise.
func (m *Matrix[T]) SubInPlace(o *Matrix[T]) error { return m.combineInPlace(o, minus[T], opSubIn) }

// ScaleInPlace multiplies every element by k.
// Complexity: O(r*c).
func (m *Matrix[T]) ScaleInPlace(k T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScaleIn, err)
	}
	Transform(m.CBegin(), m.CEnd(), m.Begin(), func(v T) T { return v * k })

	return nil
}

// MulInPlace replaces m with m × o.
// The product is computed into a temporary and swapped in, since writing into
// m while its rows are still being read would corrupt later dot products.
// Iterators on m are invalidated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m unchanged).
//
// Complexity: O(r*n*c) time, O(r*c) extra space.
func (m *Matrix[T]) MulInPlace(o *Matrix[T]) error {
	prod, err := mul(m, o)
	if err != nil {
		return matrixErrorf(opMulIn, err)
	}
	m.Swap(prod)

	return nil
}

// binary clones a and applies f against b elementwise.
func binary[T Element](a, b *Matrix[T], f func(T, T) T, tag string) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res := a.Clone()
	Transform2(res.CBegin(), res.CEnd(), b.CBegin(), res.Begin(), f)

	return res, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func Add[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return binary(a, b, plus[T], opAdd) }

// Sub returns a - b.
func Sub[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return binary(a, b, minus[T], opSub) }

// Hadamard returns the elementwise product a ⊙ b.
func Hadamard[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return binary(a, b, times[T], opHadamard)
}

// Scale returns m * k.
// Complexity: O(r*c).
func Scale[T Element](m *Matrix[T], k T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	Transform(res.CBegin(), res.CEnd(), res.Begin(), func(v T) T { return v * k })

	return res, nil
}

// ScaleLeft returns k * m; identical to Scale(m, k) for every Element.
func ScaleLeft[T Element](k T, m *Matrix[T]) (*Matrix[T], error) { return Scale(m, k) }

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: allocate the (a.Rows × b.Cols) result.
//   - Stage 3: result(i,j) = InnerProduct(row i of a, column j of b, 0),
//     written through one linear iterator in storage order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	res, err := mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

func mul[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	res, err := NewDense[T](a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	res.opts = a.opts

	var zero T
	out := res.Begin()
	for i := 0; i < a.rows; i++ {
		rowFirst, rowLast := a.CRowBegin(i), a.CRowEnd(i)
		for j := 0; j < b.cols; j++ {
			out.Set(InnerProduct(rowFirst, rowLast, b.CColBegin(j), zero))
			out.Next()
		}
	}

	return res, nil
}

// Transpose returns a new Cols×Rows matrix holding mᵀ.
// Column j of m is copied into row j of the result. Out-of-place only.
// Complexity: O(r*c).
func Transpose[T Element](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense[T](m.cols, m.rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.opts = m.opts
	for j := 0; j < m.cols; j++ {
		Copy[T](m.CColBegin(j), m.CColEnd(j), res.RowBegin(j))
	}

	return res, nil
}

// MatVec returns y = m·x with len(x) == Cols().
// Complexity: O(r*c).
func MatVec[T Element](m *Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	var zero T
	y := make([]T, m.rows)
	xv := ConstIterator[T]{linear(x, 0)}
	for i := range y {
		y[i] = InnerProduct(m.CRowBegin(i), m.CRowEnd(i), xv, zero)
	}

	return y, nil
}
