// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options are resolved once per constructor call and the resulting policy
//     travels with the Matrix (Clone, Assign and Swap carry it).
//   - The NaN guard is meaningful for float and complex element types; for
//     integers it never fires because x != x is always false.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaN toggles NaN rejection on Set and literal ingestion.
	// Off by default: arithmetic results are never checked, so a guard on
	// writes only is opt-in.
	DefaultValidateNaN = false
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps         float64 // >= 0; DefaultEpsilon
	validateNaN bool    // DefaultValidateNaN
}

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
// Panics when eps is NaN, ±Inf or negative (programmer error).
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilon)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaN makes Set and literal constructors reject NaN with ErrNaN.
func WithValidateNaN() Option {
	return func(o *Options) { o.validateNaN = true }
}

// WithNoValidateNaN disables the NaN guard.
func WithNoValidateNaN() Option {
	return func(o *Options) { o.validateNaN = false }
}

// NewMatrixOptions resolves option setters against the documented defaults.
// Last writer wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaN reports whether the NaN guard is enabled.
func (o Options) ValidateNaN() bool { return o.validateNaN }

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:         DefaultEpsilon,
		validateNaN: DefaultValidateNaN,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins
		}
	}

	return o
}
