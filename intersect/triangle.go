package intersect

import (
	"math"

	"github.com/akmonengine/triangles/geom"
	"github.com/akmonengine/triangles/shape"
)

// TriangleTriangle reports whether two proper triangles share a point.
//
// Triangles lying in the same plane are compared in 2D. Otherwise each
// triangle must straddle (or touch) the other's plane; both are then
// clipped against the line where the planes meet and the two resulting
// ranges along that line must overlap. Planes too close to parallel for
// that line to be computed fall back to testing every edge of each
// triangle against the other triangle.
func TriangleTriangle(t1, t2 shape.Triangle) bool {
	p1, p2 := t1.Plane(), t2.Plane()
	d1 := distances(p2, t1)
	d2 := distances(p1, t2)

	if p1.Coincident(p2) && onPlane(d1) && onPlane(d2) {
		return coplanar(t1, t2)
	}

	if sameSide(d1) || sameSide(d2) {
		return false
	}

	if p1.Parallel(p2) {
		return edgesCross(t1, t2)
	}
	line, ok := geom.IntersectPlanes(p1, p2)
	if !ok {
		return edgesCross(t1, t2)
	}

	return span(t1, line).Overlaps(span(t2, line))
}

// distances returns the signed distance of each vertex of t to plane,
// snapped to 0 within Epsilon.
func distances(plane geom.Plane, t shape.Triangle) [3]float64 {
	var out [3]float64
	for i, v := range t.Vertices() {
		if d := plane.Substitute(v); !geom.IsZero(d) {
			out[i] = d
		}
	}
	return out
}

func onPlane(d [3]float64) bool {
	return d[0] == 0 && d[1] == 0 && d[2] == 0
}

// sameSide reports whether every distance is strictly positive or every
// distance is strictly negative.
func sameSide(d [3]float64) bool {
	positive, negative := 0, 0
	for _, v := range d {
		switch {
		case v > 0:
			positive++
		case v < 0:
			negative++
		}
	}
	return positive == 3 || negative == 3
}

// edgesCross reports whether an edge of either triangle touches the other.
func edgesCross(t1, t2 shape.Triangle) bool {
	for _, edge := range t1.Edges() {
		if TriangleSegment(t2, edge) {
			return true
		}
	}
	for _, edge := range t2.Edges() {
		if TriangleSegment(t1, edge) {
			return true
		}
	}
	return false
}

// span returns the parameter range along line covered by t, assuming t
// touches line. The range is empty (invalid) when no edge reaches it.
func span(t shape.Triangle, line geom.Line) Interval {
	lo, hi := math.Inf(1), math.Inf(-1)

	for _, edge := range t.Edges() {
		p := geom.IntersectLines(edge.Line(), line)
		if !p.Valid() || !edge.Covers(p) {
			continue
		}
		at := p.Sub(line.Anchor).Dot(line.Dir)
		lo = math.Min(lo, at)
		hi = math.Max(hi, at)
	}

	if lo > hi {
		return Interval{T0: math.NaN(), T1: math.NaN()}
	}
	return Interval{T0: lo, T1: hi}
}

// coplanar compares two triangles lying in the same plane: they meet when
// a vertex of one lies in the other or when any pair of edges crosses.
func coplanar(t1, t2 shape.Triangle) bool {
	for _, v := range t1.Vertices() {
		if PointInTriangle(v, t2) {
			return true
		}
	}
	for _, v := range t2.Vertices() {
		if PointInTriangle(v, t1) {
			return true
		}
	}

	for _, e1 := range t1.Edges() {
		for _, e2 := range t2.Edges() {
			if SegmentSegment(e1, e2) {
				return true
			}
		}
	}

	return false
}
