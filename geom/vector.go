package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a direction or displacement in 3D space.
type Vector mgl64.Vec3

func (v Vector) X() float64 { return v[0] }
func (v Vector) Y() float64 { return v[1] }
func (v Vector) Z() float64 { return v[2] }

func (v Vector) Add(w Vector) Vector {
	return Vector(mgl64.Vec3(v).Add(mgl64.Vec3(w)))
}

func (v Vector) Sub(w Vector) Vector {
	return Vector(mgl64.Vec3(v).Sub(mgl64.Vec3(w)))
}

func (v Vector) Scale(s float64) Vector {
	return Vector(mgl64.Vec3(v).Mul(s))
}

func (v Vector) Dot(w Vector) float64 {
	return mgl64.Vec3(v).Dot(mgl64.Vec3(w))
}

func (v Vector) Cross(w Vector) Vector {
	return Vector(mgl64.Vec3(v).Cross(mgl64.Vec3(w)))
}

func (v Vector) Len() float64 {
	return mgl64.Vec3(v).Len()
}

// Normalize returns the unit vector along v.
// A vector shorter than Epsilon is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if IsZero(l) {
		return v
	}
	return v.Scale(1 / l)
}

// IsZero reports whether every component is within Epsilon of zero.
func (v Vector) IsZero() bool {
	return IsZero(v[0]) && IsZero(v[1]) && IsZero(v[2])
}

func (v Vector) Valid() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Equal is true only when both vectors are valid and every component
// differs by at most Epsilon.
func (v Vector) Equal(w Vector) bool {
	if !v.Valid() || !w.Valid() {
		return false
	}
	return Equal(v[0], w[0]) && Equal(v[1], w[1]) && Equal(v[2], w[2])
}

// Point reinterprets v as a location relative to the origin.
func (v Vector) Point() Point {
	return Point(v)
}

func (v Vector) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v[0], v[1], v[2])
}
