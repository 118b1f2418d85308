// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for storage, iterator and kernel tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// mustFromRows builds a matrix from a literal or fails the test.
func mustFromRows[T matrix.Element](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustDense allocates an r×c zero matrix or fails the test.
func mustDense[T matrix.Element](tb testing.TB, r, c int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T matrix.Element](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// randInts returns an r×c matrix of small integers from a fixed seed, so
// integer arithmetic stays exact in associativity checks.
func randInts(tb testing.TB, r, c int, seed int64) *matrix.Matrix[int64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense[int64](tb, r, c)
	for it, end := m.Begin(), m.End(); !it.Equal(end); it.Next() {
		it.Set(rng.Int63n(21) - 10)
	}

	return m
}

// randFloats fills an r×c matrix with values in [-1, 1) from a fixed seed.
func randFloats(tb testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense[float64](tb, r, c)
	data := m.Data()
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}

	return m
}
