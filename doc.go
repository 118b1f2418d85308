// SPDX-License-Identifier: MIT

// Package lvmatrix is a small, dependency-light home for a generic dense
// matrix container.
//
// What is inside:
//
//	matrix/   — Matrix[T]: row-major storage with value semantics, linear,
//	            row and strided column iterators, elementwise and matrix
//	            arithmetic over any integer, float or complex element type.
//	examples/ — a runnable walkthrough printing products as terminal tables.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul(a, b) // [[19, 22], [43, 50]]
//
// The library is single-threaded by contract and never logs; every failure
// is a sentinel error matched with errors.Is.
package lvmatrix
