// SPDX-License-Identifier: MIT

package matrix

import "math"

const opAllClose = "AllClose"

// Equal reports whether a and b have the same shape and equal elements in
// storage order. Two nil matrices are equal; nil never equals non-nil.
// NaN elements compare unequal, as with ==.
// Complexity: O(r*c).
func Equal[T Element](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}

	return EqualRange[T](a.CBegin(), a.CEnd(), b.CBegin())
}

// NotEqual is the negation of Equal.
func NotEqual[T Element](a, b *Matrix[T]) bool { return !Equal(a, b) }

// Equal is the method form of the package-level Equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool { return Equal(m, o) }

// AllClose checks |a-b| <= atol + rtol*|b| elementwise for identical shapes.
// NaN is never close to anything; +Inf is close only to +Inf (same for -Inf).
// rtol and atol are taken by absolute value.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func AllClose[T Float](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	ai, bi := a.CBegin(), b.CBegin()
	for end := a.CEnd(); !ai.Equal(end); ai, bi = ai.Add(1), bi.Add(1) {
		if !closeTo(float64(ai.Value()), float64(bi.Value()), rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// ApproxEqual is AllClose with rtol=0 and atol taken from a's options
// (WithEpsilon). Shape mismatches and nil operands report false.
func ApproxEqual[T Float](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	ok, err := AllClose(a, b, 0, a.opts.eps)

	return err == nil && ok
}

func closeTo(x, y, rtol, atol float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
