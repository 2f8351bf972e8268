package geom

import "fmt"

// Line is the set Anchor + t*Dir for every scalar t.
type Line struct {
	Dir    Vector
	Anchor Point
}

// LineThrough returns the line through p and q, anchored at p.
func LineThrough(p, q Point) Line {
	return Line{Dir: q.Sub(p), Anchor: p}
}

// At returns Anchor + t*Dir.
func (l Line) At(t float64) Point {
	return l.Anchor.Add(l.Dir.Scale(t))
}

// Valid reports whether the line has a finite anchor and a non-zero direction.
func (l Line) Valid() bool {
	return l.Anchor.Valid() && l.Dir.Valid() && !l.Dir.IsZero()
}

// Contains reports whether p lies within Epsilon of the line.
func (l Line) Contains(p Point) bool {
	return p.Sub(l.Anchor).Cross(l.Dir.Normalize()).IsZero()
}

// Parallel reports whether the two directions are parallel.
func (l Line) Parallel(other Line) bool {
	return l.Dir.Normalize().Cross(other.Dir.Normalize()).IsZero()
}

// Equal reports whether both lines describe the same set of points:
// the directions are parallel and the displacement between the anchors
// is parallel to them.
func (l Line) Equal(other Line) bool {
	return l.Parallel(other) && other.Contains(l.Anchor)
}

func (l Line) String() string {
	return fmt.Sprintf("%v + t%v", l.Anchor, l.Dir)
}

// IntersectLines returns the point where l1 and l2 meet.
//
// The closest-point parameters are found from the 2x2 normal equations
// written for unit directions, whose determinant is |u1 x u2|^2. Parallel
// lines and skew lines (closest points further apart than Epsilon) yield
// InvalidPoint. This is the only line-line kernel in the engine; every
// predicate that needs a crossing point goes through it.
func IntersectLines(l1, l2 Line) Point {
	if l1.Parallel(l2) {
		return InvalidPoint()
	}

	u1 := l1.Dir.Normalize()
	u2 := l2.Dir.Normalize()
	w := l1.Anchor.Sub(l2.Anchor)

	b := u1.Dot(u2)
	d := u1.Dot(w)
	e := u2.Dot(w)
	cross := u1.Cross(u2)
	denom := cross.Dot(cross)

	s := (b*e - d) / denom
	t := (e - b*d) / denom

	p1 := l1.Anchor.Add(u1.Scale(s))
	p2 := l2.Anchor.Add(u2.Scale(t))
	if !IsZero(p1.Sub(p2).Len()) {
		return InvalidPoint()
	}

	return p2
}
