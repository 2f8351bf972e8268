package shape

import "github.com/akmonengine/triangles/geom"

// Segment is the closed set of points between P and Q.
type Segment struct {
	P, Q geom.Point
}

// Line returns the supporting line, anchored at P.
func (s Segment) Line() geom.Line {
	return geom.LineThrough(s.P, s.Q)
}

// Bounds returns the axis-aligned box spanned by the endpoints.
func (s Segment) Bounds() geom.AABB {
	box, _ := geom.BoundsOf(s.P, s.Q)
	return box
}

// Covers reports whether p, already known to lie on the supporting line,
// falls between the endpoints (with tolerance).
func (s Segment) Covers(p geom.Point) bool {
	return s.Bounds().ContainsPointTolerant(p)
}

// Contains reports whether p lies on the segment.
func (s Segment) Contains(p geom.Point) bool {
	return s.Line().Contains(p) && s.Covers(p)
}
