// SPDX-License-Identifier: MIT

// Package approx - tolerance-based floating-point comparison.
//
// Purpose:
//   - Provide the single equality rule shared by matrices, tuples and colors.
//   - Keep the tolerance in one named constant instead of inline literals.
//
// Behavior highlights:
//   - Equal(a, b) is true iff |a-b| < Epsilon (strict).
//   - NaN never compares equal (the absolute difference is NaN).
//   - ±Inf compares false against everything, itself included (Inf-Inf is NaN).
//
// Complexity quicksheet:
//   - Equal/EqualEps: O(1); EqualSlices: O(n).
package approx

import "math"

// Epsilon is the absolute tolerance under which two float64 values are
// considered equal across the toolkit.
const Epsilon = 1e-5

const panicEpsInvalid = "approx: EqualEps: eps must be finite, non-negative"

// Equal reports whether |a-b| < Epsilon.
// Complexity: O(1).
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// EqualEps reports whether |a-b| < eps for a caller-provided tolerance.
// Panics when eps is negative or non-finite (programmer error).
// Complexity: O(1).
func EqualEps(a, b, eps float64) bool {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsInvalid)
	}

	return math.Abs(a-b) < eps
}

// EqualSlices reports whether a and b have the same length and every
// corresponding pair satisfies Equal.
// Complexity: O(n).
func EqualSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
