package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a location in 3D space.
// A point holding NaN in every component is the "no such point" sentinel.
type Point mgl64.Vec3

// NewPoint builds a point from its coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{x, y, z}
}

// InvalidPoint returns the sentinel used when an intersection does not exist.
func InvalidPoint() Point {
	nan := math.NaN()
	return Point{nan, nan, nan}
}

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }
func (p Point) Z() float64 { return p[2] }

// Valid reports whether all three components are finite.
func (p Point) Valid() bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Norm returns the squared distance from the origin.
func (p Point) Norm() float64 {
	v := mgl64.Vec3(p)
	return v.Dot(v)
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector(mgl64.Vec3(p).Sub(mgl64.Vec3(q)))
}

// Add translates p by v.
func (p Point) Add(v Vector) Point {
	return Point(mgl64.Vec3(p).Add(mgl64.Vec3(v)))
}

// Vector reinterprets p as a displacement from the origin.
func (p Point) Vector() Vector {
	return Vector(p)
}

// Equal is true only when both points are valid and every component
// differs by at most Epsilon.
func (p Point) Equal(q Point) bool {
	if !p.Valid() || !q.Valid() {
		return false
	}
	return Equal(p[0], q[0]) && Equal(p[1], q[1]) && Equal(p[2], q[2])
}

// Less orders points lexicographically by x, then y, then z.
func (p Point) Less(q Point) bool {
	for i := range p {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return false
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p[0], p[1], p[2])
}

// Collinear reports whether a, b and c lie on one line.
func Collinear(a, b, c Point) bool {
	return b.Sub(a).Cross(c.Sub(a)).IsZero()
}
