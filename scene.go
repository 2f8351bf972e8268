// Package triangles finds which triangles of a set intersect at least one
// other triangle.
//
// BroadPhase partitions the set into an octree so that only triangles
// sharing a branch are compared; NarrowPhase walks the tree and runs the
// exact predicate from package intersect on the surviving pairs.
package triangles

import (
	"github.com/akmonengine/triangles/geom"
	"github.com/akmonengine/triangles/shape"
)

// Scene is an ordered set of triangles to be checked against each other.
type Scene struct {
	// Triangles in insertion order
	Triangles []shape.Triangle
	// Config tunes the partition; the zero value is the reference setup.
	Config Config
}

// AddTriangle appends t as is, keeping its ID.
func (s *Scene) AddTriangle(t shape.Triangle) {
	s.Triangles = append(s.Triangles, t)
}

// Add builds a triangle from three points and gives it the next ID in
// insertion order.
func (s *Scene) Add(p1, p2, p3 geom.Point) shape.Triangle {
	t := shape.New(len(s.Triangles), p1, p2, p3)
	s.AddTriangle(t)
	return t
}

// Partition builds the broad-phase tree for the current triangles.
func (s *Scene) Partition() *Octree {
	return BroadPhase(s.Triangles, s.Config)
}

// Intersections returns the sorted IDs of every triangle intersecting at
// least one other, and the intersecting pairs.
func (s *Scene) Intersections() ([]int, []Pair) {
	return NarrowPhase(s.Partition())
}

// FindIntersections returns the sorted IDs of every triangle that
// intersects at least one other triangle of the set. The tree depth is
// derived from the number of triangles.
func FindIntersections(triangles []shape.Triangle) []int {
	ids, _ := NarrowPhase(BuildPartition(triangles, DepthHint(len(triangles))))
	return ids
}
