// Package shape holds the triangle type and its degeneracy classification.
package shape

import (
	"fmt"
	"sort"

	"github.com/akmonengine/triangles/geom"
)

// Type is what a triangle collapses to once its vertices are compared
// with the engine tolerance.
type Type int

const (
	// TypeNone marks a triangle with an invalid vertex; it intersects nothing.
	TypeNone Type = iota
	// TypePoint marks three pairwise-equal vertices.
	TypePoint
	// TypeSegment marks two equal vertices or three collinear ones.
	TypeSegment
	// TypeTriangle marks a proper, non-degenerate triangle.
	TypeTriangle
)

func (t Type) String() string {
	switch t {
	case TypePoint:
		return "point"
	case TypeSegment:
		return "segment"
	case TypeTriangle:
		return "triangle"
	default:
		return "none"
	}
}

// Triangle is an immutable triple of vertices with a caller-assigned ID.
//
// Vertices are stored in decreasing order of squared distance from the
// origin (ties broken by decreasing coordinates), so two triangles built
// from the same points in any order are identical values.
type Triangle struct {
	ID int

	a, b, c geom.Point
	kind    Type
}

// New builds a triangle from three vertices.
func New(id int, p1, p2, p3 geom.Point) Triangle {
	pts := [3]geom.Point{p1, p2, p3}
	sort.SliceStable(pts[:], func(i, j int) bool {
		ni, nj := pts[i].Norm(), pts[j].Norm()
		if ni != nj {
			return ni > nj
		}
		return pts[j].Less(pts[i])
	})

	t := Triangle{ID: id, a: pts[0], b: pts[1], c: pts[2]}
	t.kind = classify(t.a, t.b, t.c)
	return t
}

// FromCoords builds a triangle from nine coordinates x1 y1 z1 x2 ... z3.
func FromCoords(id int, x1, y1, z1, x2, y2, z2, x3, y3, z3 float64) Triangle {
	return New(id,
		geom.NewPoint(x1, y1, z1),
		geom.NewPoint(x2, y2, z2),
		geom.NewPoint(x3, y3, z3),
	)
}

func classify(a, b, c geom.Point) Type {
	if !a.Valid() || !b.Valid() || !c.Valid() {
		return TypeNone
	}

	ab, bc, ac := a.Equal(b), b.Equal(c), a.Equal(c)
	if ab && bc && ac {
		return TypePoint
	}
	if ab || bc || ac || geom.Collinear(a, b, c) {
		return TypeSegment
	}

	return TypeTriangle
}

func (t Triangle) A() geom.Point { return t.a }
func (t Triangle) B() geom.Point { return t.b }
func (t Triangle) C() geom.Point { return t.c }

// Vertices returns the canonically ordered vertices.
func (t Triangle) Vertices() [3]geom.Point {
	return [3]geom.Point{t.a, t.b, t.c}
}

// Type returns the classification computed at construction.
func (t Triangle) Type() Type {
	return t.kind
}

// Plane returns the supporting plane. It is degenerate unless Type is TypeTriangle.
func (t Triangle) Plane() geom.Plane {
	return geom.PlaneThrough(t.a, t.b, t.c)
}

// Edges returns the three sides as segments: ab, bc, ca.
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{
		{P: t.a, Q: t.b},
		{P: t.b, Q: t.c},
		{P: t.c, Q: t.a},
	}
}

// Segment returns the effective segment of a degenerate triangle: the two
// vertices that lie farthest apart.
func (t Triangle) Segment() Segment {
	best := Segment{P: t.a, Q: t.b}
	bestLen := t.a.Sub(t.b).Len()

	if l := t.b.Sub(t.c).Len(); l > bestLen {
		best, bestLen = Segment{P: t.b, Q: t.c}, l
	}
	if l := t.a.Sub(t.c).Len(); l > bestLen {
		best = Segment{P: t.a, Q: t.c}
	}

	return best
}

// Bounds returns the axis-aligned box around the vertices.
func (t Triangle) Bounds() geom.AABB {
	box, _ := geom.BoundsOf(t.a, t.b, t.c)
	return box
}

// Less orders triangles by ID, then by vertices, giving a total order that
// does not depend on argument position.
func (t Triangle) Less(other Triangle) bool {
	if t.ID != other.ID {
		return t.ID < other.ID
	}
	for i, v := range t.Vertices() {
		w := other.Vertices()[i]
		if v != w {
			return v.Less(w)
		}
	}
	return false
}

func (t Triangle) String() string {
	return fmt.Sprintf("#%d %s{%v %v %v}", t.ID, t.kind, t.a, t.b, t.c)
}
