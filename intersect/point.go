package intersect

import (
	"github.com/akmonengine/triangles/geom"
	"github.com/akmonengine/triangles/shape"
)

// PointInTriangle reports whether p lies on the closed triangle t.
//
// p must be within Epsilon of the triangle's plane. Then, for each edge,
// the side of p is the normal of the plane through the edge and p. Inside
// the triangle all three normals agree; on an edge that edge's normal
// vanishes and the other two agree; on a vertex two vanish.
func PointInTriangle(p geom.Point, t shape.Triangle) bool {
	if !t.Plane().Contains(p) {
		return false
	}

	a, b, c := t.A(), t.B(), t.C()

	sides := [3]struct {
		from, to geom.Point
	}{
		{b, a},
		{a, c},
		{c, b},
	}

	var normals []geom.Vector
	for _, s := range sides {
		edge := s.to.Sub(s.from)
		rel := p.Sub(s.from)
		if edge.Normalize().Cross(rel).IsZero() {
			continue
		}
		normals = append(normals, edge.Cross(rel).Normalize())
	}

	switch len(normals) {
	case 0:
		// Only possible for a degenerate triangle.
		return false
	case 1:
		return true
	case 2:
		return normals[0].Equal(normals[1])
	default:
		return normals[0].Equal(normals[1]) && normals[1].Equal(normals[2])
	}
}

// SegmentPoint reports whether p lies on the closed segment s.
func SegmentPoint(s shape.Segment, p geom.Point) bool {
	return s.Contains(p)
}
