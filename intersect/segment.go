package intersect

import (
	"github.com/akmonengine/triangles/geom"
	"github.com/akmonengine/triangles/shape"
)

// parallelCutoff is the |n.d| below which the crossing of a segment with a
// plane is not computed at all. It guards the division, it is not a
// tolerance.
const parallelCutoff = 1e-12

// SegmentSegment reports whether two closed segments share a point.
func SegmentSegment(s1, s2 shape.Segment) bool {
	l1, l2 := s1.Line(), s2.Line()

	if l1.Contains(s2.P) && l1.Contains(s2.Q) {
		// Collinear: the projections must overlap on every axis.
		b1, b2 := s1.Bounds(), s2.Bounds()
		for axis := 0; axis < 3; axis++ {
			if b1.Max[axis] < b2.Min[axis]-geom.Epsilon || b2.Max[axis] < b1.Min[axis]-geom.Epsilon {
				return false
			}
		}
		return true
	}

	p := geom.IntersectLines(l1, l2)
	if p.Valid() {
		return s1.Covers(p) && s2.Covers(p)
	}

	// Nearly parallel segments can still meet at an endpoint.
	return s1.Contains(s2.P) || s1.Contains(s2.Q) || s2.Contains(s1.P) || s2.Contains(s1.Q)
}

// TriangleSegment reports whether the closed segment s touches the proper
// triangle t.
//
// A proper crossing is found with the Möller-Trumbore ray/triangle test
// bounded to the segment, evaluated without tolerance. Contacts on the
// boundary, and segments lying in the triangle's plane, are caught by the
// distance based tests: an endpoint on the triangle, or the segment
// meeting one of its edges.
func TriangleSegment(t shape.Triangle, s shape.Segment) bool {
	if crosses(t, s) {
		return true
	}

	if PointInTriangle(s.P, t) || PointInTriangle(s.Q, t) {
		return true
	}
	for _, edge := range t.Edges() {
		if SegmentSegment(edge, s) {
			return true
		}
	}

	return false
}

func crosses(t shape.Triangle, s shape.Segment) bool {
	d := s.Q.Sub(s.P)
	n := t.Plane().Normal()
	if dn := n.Dot(d.Normalize()); dn > -parallelCutoff && dn < parallelCutoff {
		return false
	}

	a := t.A()
	e1 := t.B().Sub(a)
	e2 := t.C().Sub(a)

	h := d.Cross(e2)
	f := 1 / e1.Dot(h)

	rel := s.P.Sub(a)
	u := f * rel.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	q := rel.Cross(e1)
	v := f * d.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	at := f * e2.Dot(q)
	return at >= 0 && at <= 1
}
