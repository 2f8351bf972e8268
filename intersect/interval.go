package intersect

import (
	"math"

	"github.com/akmonengine/triangles/geom"
)

// Interval is a closed range [T0, T1] of parameters along a line.
type Interval struct {
	T0, T1 float64
}

// NewInterval orders its endpoints so that T0 <= T1.
func NewInterval(a, b float64) Interval {
	if b < a {
		a, b = b, a
	}
	return Interval{T0: a, T1: b}
}

// Valid reports whether both endpoints are finite and ordered.
// A single-point interval is valid.
func (i Interval) Valid() bool {
	if math.IsNaN(i.T0) || math.IsNaN(i.T1) || math.IsInf(i.T0, 0) || math.IsInf(i.T1, 0) {
		return false
	}
	return i.T0 <= i.T1
}

// Overlaps reports whether the two ranges share at least one parameter,
// within Epsilon. Touching endpoints count.
func (i Interval) Overlaps(other Interval) bool {
	if !i.Valid() || !other.Valid() {
		return false
	}
	return i.T1 >= other.T0-geom.Epsilon && other.T1 >= i.T0-geom.Epsilon
}
