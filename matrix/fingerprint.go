// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"reflect"

	"github.com/cnf/structhash"
)

// fingerprintVersion is bumped whenever the hashed layout changes.
const fingerprintVersion = 2

// snapshot is the hashed view of a matrix: shape, element kind and
// storage-order values widened to one of three lanes. Complex elements are
// written as (real, imag) pairs into Floats, since structhash has no complex
// encoding. The policy is excluded, so equal matrices hash equally regardless
// of options.
type snapshot struct {
	Rows   int       `hash:"name:rows"`
	Cols   int       `hash:"name:cols"`
	Kind   string    `hash:"name:kind"`
	Ints   []int64   `hash:"name:ints"`
	Uints  []uint64  `hash:"name:uints"`
	Floats []float64 `hash:"name:floats"`
}

// Fingerprint returns a stable content hash of shape and elements.
// Equal matrices (see Equal) without NaN elements share a fingerprint, which
// makes it usable as a cache key for memoized products; -0 and +0 hash alike.
// Complexity: O(r*c).
func (m *Matrix[T]) Fingerprint() (string, error) {
	if m == nil {
		return "", matrixErrorf("Fingerprint", ErrNilMatrix)
	}
	h, err := structhash.Hash(m.hashView(), fingerprintVersion)
	if err != nil {
		return "", fmt.Errorf("Fingerprint: %w", err)
	}

	return h, nil
}

// hashView flattens m into its hashed snapshot.
func (m *Matrix[T]) hashView() snapshot {
	var zero T
	kind := reflect.TypeOf(zero).Kind()
	s := snapshot{
		Rows:   m.rows,
		Cols:   m.cols,
		Kind:   kind.String(),
		Ints:   []int64{},
		Uints:  []uint64{},
		Floats: []float64{},
	}
	for _, v := range m.data {
		rv := reflect.ValueOf(v)
		switch kind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			s.Ints = append(s.Ints, rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			s.Uints = append(s.Uints, rv.Uint())
		case reflect.Float32, reflect.Float64:
			s.Floats = append(s.Floats, unsignedZero(rv.Float()))
		case reflect.Complex64, reflect.Complex128:
			c := rv.Complex()
			s.Floats = append(s.Floats, unsignedZero(real(c)), unsignedZero(imag(c)))
		}
	}

	return s
}

// unsignedZero maps -0 to +0 so values that compare equal format equally.
func unsignedZero(f float64) float64 {
	if f == 0 {
		return 0
	}

	return f
}
