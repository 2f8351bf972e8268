// Package geom provides the epsilon-tolerant primitives used by the
// intersection engine: points, vectors, lines, planes and axis-aligned boxes.
//
// Every floating comparison in the engine goes through Equal/IsZero so that
// a single absolute tolerance governs boundary inclusion everywhere.
package geom

import "math"

// Epsilon is the absolute tolerance below which two values are considered equal.
const Epsilon = 1e-6

// Equal reports whether a and b differ by at most Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// IsZero reports whether a is within Epsilon of zero.
func IsZero(a float64) bool {
	return Equal(a, 0)
}
