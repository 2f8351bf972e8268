package geom

import "fmt"

// Plane is the set of points satisfying Ax + By + Cz + D = 0, with (A, B, C)
// a unit normal. A plane built from collinear points has a zero normal and
// is reported as degenerate.
type Plane struct {
	a, b, c, d float64
}

// PlaneThrough builds the plane containing p1, p2 and p3.
func PlaneThrough(p1, p2, p3 Point) Plane {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	d := -n.Dot(p1.Vector())

	l := n.Len()
	if IsZero(l) {
		return Plane{n.X(), n.Y(), n.Z(), d}
	}

	return Plane{n.X() / l, n.Y() / l, n.Z() / l, d / l}
}

// Normal returns (A, B, C).
func (p Plane) Normal() Vector {
	return Vector{p.a, p.b, p.c}
}

func (p Plane) A() float64 { return p.a }
func (p Plane) B() float64 { return p.b }
func (p Plane) C() float64 { return p.c }
func (p Plane) D() float64 { return p.d }

// Degenerate reports whether the plane was built from collinear points.
func (p Plane) Degenerate() bool {
	return p.Normal().IsZero()
}

// Substitute evaluates the plane equation at pt. The sign tells which
// half-space pt lies in and the magnitude is its distance to the plane.
func (p Plane) Substitute(pt Point) float64 {
	return p.a*pt.X() + p.b*pt.Y() + p.c*pt.Z() + p.d
}

// Contains reports whether pt lies within Epsilon of the plane.
func (p Plane) Contains(pt Point) bool {
	return IsZero(p.Substitute(pt))
}

// Parallel reports whether the normals are parallel, in either orientation.
func (p Plane) Parallel(other Plane) bool {
	return p.Normal().Cross(other.Normal()).IsZero()
}

// Equal reports whether all four coefficients match, or all four of the
// negated plane do.
func (p Plane) Equal(other Plane) bool {
	same := Equal(p.a, other.a) && Equal(p.b, other.b) &&
		Equal(p.c, other.c) && Equal(p.d, other.d)
	flipped := Equal(-p.a, other.a) && Equal(-p.b, other.b) &&
		Equal(-p.c, other.c) && Equal(-p.d, other.d)
	return same || flipped
}

// Coincident reports whether two parallel planes are the same plane,
// comparing the coefficients after aligning the orientation of the normals.
func (p Plane) Coincident(other Plane) bool {
	if !p.Parallel(other) {
		return false
	}
	if p.Normal().Dot(other.Normal()) < 0 {
		other = Plane{-other.a, -other.b, -other.c, -other.d}
	}
	return p.Equal(other)
}

func (p Plane) String() string {
	return fmt.Sprintf("%gx + %gy + %gz + %g = 0", p.a, p.b, p.c, p.d)
}

// IntersectPlanes returns the line shared by two non-parallel planes.
//
// The direction is the cross product of the normals. The anchor solves the
// 2x2 system left after fixing one coordinate to zero, trying z, then y,
// then x, and keeping the first system whose determinant is non-zero.
// The returned direction is unit length.
func IntersectPlanes(p1, p2 Plane) (Line, bool) {
	dir := p1.Normal().Cross(p2.Normal())
	if dir.IsZero() {
		return Line{}, false
	}

	var anchor Point
	detZ := p1.a*p2.b - p2.a*p1.b
	detY := p1.a*p2.c - p2.a*p1.c
	detX := p1.b*p2.c - p2.b*p1.c

	switch {
	case !IsZero(detZ):
		// A1x + B1y = -D1, A2x + B2y = -D2
		anchor = Point{
			(p1.b*p2.d - p2.b*p1.d) / detZ,
			(p2.a*p1.d - p1.a*p2.d) / detZ,
			0,
		}
	case !IsZero(detY):
		// A1x + C1z = -D1, A2x + C2z = -D2
		anchor = Point{
			(p1.c*p2.d - p2.c*p1.d) / detY,
			0,
			(p2.a*p1.d - p1.a*p2.d) / detY,
		}
	case !IsZero(detX):
		// B1y + C1z = -D1, B2y + C2z = -D2
		anchor = Point{
			0,
			(p1.c*p2.d - p2.c*p1.d) / detX,
			(p2.b*p1.d - p1.b*p2.d) / detX,
		}
	default:
		return Line{}, false
	}

	return Line{Dir: dir.Normalize(), Anchor: anchor}, true
}
