// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	a := mustDense[float64](t, 2, 3)
	b := mustDense[float64](t, 2, 3)
	c := mustDense[float64](t, 3, 2)

	require.NoError(t, matrix.ValidateSameShape(a, b))
	require.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateBinarySameShape(a, b))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, c), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := mustDense[int](t, 2, 3)
	b := mustDense[int](t, 3, 4)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateMulCompatible(matrix.NewEmpty[int](), matrix.NewEmpty[int]()))
}

// TestValidateSquareAndVecLen covers the remaining single-operand checks.
func TestValidateSquareAndVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(mustDense[int](t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(mustDense[int](t, 3, 2)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare[int](nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
