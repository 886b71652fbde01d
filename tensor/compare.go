// Package tensor: numeric comparison policy.
package tensor

import "math"

// DefaultEpsilon defines the non-negative tolerance used by AllClose when
// callers have no stronger requirement.
const DefaultEpsilon = 1e-9

// SameShape reports whether two tensors have identical dimensionality and
// per-axis lengths.
func SameShape(a, b *Dense) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most eps. NaN never compares close to anything.
// Complexity: O(size).
func AllClose(a, b *Dense, eps float64) bool {
	if !SameShape(a, b) {
		return false
	}
	for i := range a.data {
		// The negated form keeps NaN from comparing close to anything.
		if !(math.Abs(a.data[i]-b.data[i]) <= eps) {
			return false
		}
	}

	return true
}
