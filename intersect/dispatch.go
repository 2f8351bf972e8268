// Package intersect decides whether two triangles share at least one point.
//
// Every triangle is first reduced to what it really is (a proper triangle,
// a segment or a point) and the pair is routed to the algorithm for that
// combination of shapes. All comparisons use geom.Epsilon.
package intersect

import "github.com/akmonengine/triangles/shape"

// rank orders shape types from most to least specific.
func rank(t shape.Type) int {
	switch t {
	case shape.TypeTriangle:
		return 3
	case shape.TypeSegment:
		return 2
	case shape.TypePoint:
		return 1
	default:
		return 0
	}
}

// Intersects reports whether t1 and t2 touch or overlap. A triangle of
// type None intersects nothing. The result does not depend on argument
// order.
func Intersects(t1, t2 shape.Triangle) bool {
	if t1.Type() == shape.TypeNone || t2.Type() == shape.TypeNone {
		return false
	}

	r1, r2 := rank(t1.Type()), rank(t2.Type())
	if r1 < r2 || (r1 == r2 && t2.Less(t1)) {
		t1, t2 = t2, t1
	}

	switch t1.Type() {
	case shape.TypeTriangle:
		switch t2.Type() {
		case shape.TypeTriangle:
			return TriangleTriangle(t1, t2)
		case shape.TypeSegment:
			return TriangleSegment(t1, t2.Segment())
		case shape.TypePoint:
			return PointInTriangle(t2.A(), t1)
		}
	case shape.TypeSegment:
		switch t2.Type() {
		case shape.TypeSegment:
			return SegmentSegment(t1.Segment(), t2.Segment())
		case shape.TypePoint:
			return SegmentPoint(t1.Segment(), t2.A())
		}
	case shape.TypePoint:
		return t1.A().Equal(t2.A())
	}

	return false
}
