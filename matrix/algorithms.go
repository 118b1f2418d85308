// SPDX-License-Identifier: MIT

// Package matrix - generic range algorithms.
//
// Purpose:
//   - Express the numeric kernels once over the iterator contracts in
//     types.go, so the same code runs on the whole buffer, on a row or on a
//     strided column.
//   - A range is a half-open pair [first, last); secondary ranges are given
//     by their start only and must be at least as long as the primary one.
//
// Type inference: when T does not appear in the arguments (EqualRange, Copy)
// pass it explicitly, e.g. EqualRange[float64](a, b, c); the iterator types
// are still inferred.
package matrix

// InnerProduct returns init + Σ first[k]*first2[k] over [first, last).
// Complexity: O(n).
func InnerProduct[T Element, A Readable[T, A], B Readable[T, B]](first, last A, first2 B, init T) T {
	acc := init
	for ; !first.Equal(last); first, first2 = first.Add(1), first2.Add(1) {
		acc += first.Value() * first2.Value()
	}

	return acc
}

// Accumulate returns init + Σ first[k] over [first, last).
func Accumulate[T Element, A Readable[T, A]](first, last A, init T) T {
	acc := init
	for ; !first.Equal(last); first = first.Add(1) {
		acc += first.Value()
	}

	return acc
}

// Transform writes f(first[k]) to out[k] and returns out advanced past the
// last write. out may alias first.
func Transform[T Element, A Readable[T, A], O Writable[T, O]](first, last A, out O, f func(T) T) O {
	for ; !first.Equal(last); first, out = first.Add(1), out.Add(1) {
		out.Set(f(first.Value()))
	}

	return out
}

// Transform2 writes f(first[k], first2[k]) to out[k] and returns out advanced
// past the last write. out may alias first or first2 position-for-position.
func Transform2[T Element, A Readable[T, A], B Readable[T, B], O Writable[T, O]](first, last A, first2 B, out O, f func(T, T) T) O {
	for ; !first.Equal(last); first, first2, out = first.Add(1), first2.Add(1), out.Add(1) {
		out.Set(f(first.Value(), first2.Value()))
	}

	return out
}

// EqualRange reports whether first[k] == first2[k] for every k in [first, last).
func EqualRange[T Element, A Readable[T, A], B Readable[T, B]](first, last A, first2 B) bool {
	for ; !first.Equal(last); first, first2 = first.Add(1), first2.Add(1) {
		if first.Value() != first2.Value() {
			return false
		}
	}

	return true
}

// Copy writes [first, last) to out and returns out advanced past the last write.
func Copy[T Element, A Readable[T, A], O Writable[T, O]](first, last A, out O) O {
	for ; !first.Equal(last); first, out = first.Add(1), out.Add(1) {
		out.Set(first.Value())
	}

	return out
}

// Fill stores v into every slot of [first, last).
func Fill[T Element, O Writable[T, O]](first, last O, v T) {
	for ; !first.Equal(last); first = first.Add(1) {
		first.Set(v)
	}
}

// Distance returns the number of steps from first to last.
// Complexity: O(1).
func Distance[I interface{ Distance(other I) int }](first, last I) int {
	return last.Distance(first)
}
