package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Point
	Max Point
}

// BoundsOf returns the smallest box containing every valid point.
// ok is false when no point is valid.
func BoundsOf(points ...Point) (box AABB, ok bool) {
	for _, p := range points {
		if !p.Valid() {
			continue
		}
		if !ok {
			box = AABB{Min: p, Max: p}
			ok = true
			continue
		}
		box = box.Extend(p)
	}
	return box, ok
}

// Extend grows the box to include p.
func (a AABB) Extend(p Point) AABB {
	for i := range p {
		a.Min[i] = math.Min(a.Min[i], p[i])
		a.Max[i] = math.Max(a.Max[i], p[i])
	}
	return a
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point Point) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// ContainsPointTolerant is ContainsPoint with every face pushed out by Epsilon.
func (a AABB) ContainsPointTolerant(point Point) bool {
	return a.Grow(Epsilon).ContainsPoint(point)
}

// Contains reports whether other lies entirely inside a.
func (a AABB) Contains(other AABB) bool {
	return a.ContainsPoint(other.Min) && a.ContainsPoint(other.Max)
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Size returns the extent of the box along each axis.
func (a AABB) Size() Vector {
	return a.Max.Sub(a.Min)
}

// Center returns the midpoint of the box.
func (a AABB) Center() Point {
	return a.Min.Add(a.Size().Scale(0.5))
}

// Grow pushes every face outwards by margin. A negative margin shrinks the
// box; a box shrunk past its center collapses to that center.
func (a AABB) Grow(margin float64) AABB {
	m := mgl64.Vec3{margin, margin, margin}
	out := AABB{
		Min: Point(mgl64.Vec3(a.Min).Sub(m)),
		Max: Point(mgl64.Vec3(a.Max).Add(m)),
	}
	c := a.Center()
	for i := range out.Min {
		if out.Min[i] > out.Max[i] {
			out.Min[i], out.Max[i] = c[i], c[i]
		}
	}
	return out
}

// Octant returns one of the eight boxes obtained by splitting a at its
// center. Bit 0 of i selects the upper half in x, bit 1 in y, bit 2 in z.
func (a AABB) Octant(i int) AABB {
	if i < 0 || i > 7 {
		panic("geom: octant index out of range")
	}

	c := a.Center()
	out := AABB{Min: a.Min, Max: c}
	for axis := 0; axis < 3; axis++ {
		if i&(1<<axis) != 0 {
			out.Min[axis] = c[axis]
			out.Max[axis] = a.Max[axis]
		}
	}
	return out
}
