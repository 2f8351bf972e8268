package triangles

import (
	"github.com/akmonengine/triangles/geom"
	"github.com/akmonengine/triangles/shape"
)

// ============================================================================
// Configuration
// ============================================================================

const (
	// DEFAULT_MIN_CELL_SIZE is the largest node extent that is never split.
	DEFAULT_MIN_CELL_SIZE = 1.0
	// BASE_DEPTH is the depth limit for inputs whose DepthHint is 0.
	BASE_DEPTH = 8
	// PARTITION_MARGIN is the gap left on each side of a split plane, so
	// triangles owned by sibling subtrees are always further apart than
	// any tolerance used by the predicates.
	PARTITION_MARGIN = 1e3 * geom.Epsilon
)

// Config tunes how the partition is built and traversed.
// Zero values select the defaults.
type Config struct {
	// MinCellSize stops splitting once the largest side of a node is at or
	// below this size.
	MinCellSize float64
	// MaxDepth stops splitting at this depth (root is depth 0).
	MaxDepth int
	// Workers is the number of goroutines used by NarrowPhase.
	Workers int
}

func (c Config) withDefaults(n int) Config {
	if c.MinCellSize <= 0 {
		c.MinCellSize = DEFAULT_MIN_CELL_SIZE
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = BASE_DEPTH + 2*DepthHint(n)
	}
	c.Workers = max(DEFAULT_WORKERS, c.Workers)
	return c
}

// DepthHint grows with the number of triangles so that larger inputs are
// allowed deeper trees and leaf lists stay short.
func DepthHint(n int) int {
	switch {
	case n < 1000:
		return 0
	case n < 10000:
		return 1
	case n < 100000:
		return 2
	default:
		return 3
	}
}

// ============================================================================
// Types
// ============================================================================

// Node - a region of space and the triangles that fit in it but in none of
// its children
type Node struct {
	Bounds    geom.AABB
	Triangles []shape.Triangle
	Depth     int

	// Parent is the index of the parent node, -1 for the root.
	Parent int
	// Children holds the index of the node for each octant, -1 when absent.
	Children [8]int
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	for _, c := range n.Children {
		if c >= 0 {
			return false
		}
	}
	return true
}

// Octree - arena of nodes; node 0 is the root
type Octree struct {
	Nodes []Node
	// Discarded holds the triangles of type None. They can never intersect
	// and are not stored in any node.
	Discarded []shape.Triangle

	config Config
}

// Stats summarizes the shape of a built tree.
type Stats struct {
	Triangles int
	Discarded int
	Nodes     int
	Leaves    int
	MaxDepth  int
	// MaxLoad is the largest number of triangles held by a single node.
	MaxLoad int
	// RootLoad is the number of triangles no child could take.
	RootLoad int
}

// ============================================================================
// Construction
// ============================================================================

// BuildTree builds the partition for triangles.
//
// The root region is the bounding box of every valid vertex. A node is split
// at its center when it holds more than one triangle, its largest side
// exceeds MinCellSize and it is shallower than MaxDepth. Each triangle moves
// to the child whose region contains it, or stays in the node when it
// spans several octants. A child region stops PARTITION_MARGIN short of
// the split planes.
func BuildTree(triangles []shape.Triangle, config Config) *Octree {
	config = config.withDefaults(len(triangles))

	tree := &Octree{config: config}

	var points []geom.Point
	owned := make([]shape.Triangle, 0, len(triangles))
	for _, t := range triangles {
		if t.Type() == shape.TypeNone {
			tree.Discarded = append(tree.Discarded, t)
			continue
		}
		owned = append(owned, t)
		vertices := t.Vertices()
		points = append(points, vertices[:]...)
	}

	bounds, _ := geom.BoundsOf(points...)
	tree.Nodes = append(tree.Nodes, newNode(bounds, owned, 0, -1))
	tree.divide(0)

	return tree
}

// BuildPartition builds a tree whose depth limit is derived from depthHint.
func BuildPartition(triangles []shape.Triangle, depthHint int) *Octree {
	return BuildTree(triangles, Config{MaxDepth: BASE_DEPTH + 2*depthHint})
}

func newNode(bounds geom.AABB, triangles []shape.Triangle, depth, parent int) Node {
	n := Node{
		Bounds:    bounds,
		Triangles: triangles,
		Depth:     depth,
		Parent:    parent,
	}
	for i := range n.Children {
		n.Children[i] = -1
	}
	return n
}

func (o *Octree) canSplit(idx int) bool {
	node := &o.Nodes[idx]
	if len(node.Triangles) <= 1 || node.Depth >= o.config.MaxDepth {
		return false
	}

	size := node.Bounds.Size()
	longest := max(size.X(), size.Y(), size.Z())
	return longest > o.config.MinCellSize
}

// divide - splits node idx and recurses into the children it created
func (o *Octree) divide(idx int) {
	if !o.canSplit(idx) {
		return
	}

	bounds := o.Nodes[idx].Bounds
	var regions [8]geom.AABB
	var usable [8]bool
	for i := range regions {
		regions[i], usable[i] = childRegion(bounds, i)
	}

	var buckets [8][]shape.Triangle
	kept := make([]shape.Triangle, 0)
	for _, t := range o.Nodes[idx].Triangles {
		box := t.Bounds()
		placed := false
		for i := range regions {
			if usable[i] && regions[i].Contains(box) {
				buckets[i] = append(buckets[i], t)
				placed = true
				break
			}
		}
		if !placed {
			kept = append(kept, t)
		}
	}
	o.Nodes[idx].Triangles = kept

	depth := o.Nodes[idx].Depth + 1
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}

		// Appending may move the arena; only indices are kept across it.
		child := len(o.Nodes)
		o.Nodes = append(o.Nodes, newNode(regions[i], bucket, depth, idx))
		o.Nodes[idx].Children[i] = child

		o.divide(child)
	}
}

// childRegion returns octant i of bounds with the faces lying on the split
// planes pulled back by PARTITION_MARGIN. Axes too thin to split are not
// split: only the lower octant along them is usable, spanning the full
// extent.
func childRegion(bounds geom.AABB, i int) (geom.AABB, bool) {
	region := bounds.Octant(i)
	center := bounds.Center()
	size := bounds.Size()

	for axis := 0; axis < 3; axis++ {
		upper := i&(1<<axis) != 0
		switch {
		case size[axis] <= 2*PARTITION_MARGIN:
			if upper {
				return geom.AABB{}, false
			}
			region.Min[axis] = bounds.Min[axis]
			region.Max[axis] = bounds.Max[axis]
		case upper:
			region.Min[axis] = center[axis] + PARTITION_MARGIN
		default:
			region.Max[axis] = center[axis] - PARTITION_MARGIN
		}
	}

	return region, true
}

// ============================================================================
// Queries
// ============================================================================

// Root returns the root node.
func (o *Octree) Root() *Node {
	return &o.Nodes[0]
}

// Config returns the resolved configuration the tree was built with.
func (o *Octree) Config() Config {
	return o.config
}

// Ancestors returns the indices of the ancestors of node idx, closest first.
func (o *Octree) Ancestors(idx int) []int {
	var out []int
	for p := o.Nodes[idx].Parent; p >= 0; p = o.Nodes[p].Parent {
		out = append(out, p)
	}
	return out
}

// Owner returns the index of the node holding the triangle with the given
// ID, or -1.
func (o *Octree) Owner(id int) int {
	for i := range o.Nodes {
		for _, t := range o.Nodes[i].Triangles {
			if t.ID == id {
				return i
			}
		}
	}
	return -1
}

func (o *Octree) Stats() Stats {
	s := Stats{
		Discarded: len(o.Discarded),
		Nodes:     len(o.Nodes),
		RootLoad:  len(o.Root().Triangles),
	}

	for i := range o.Nodes {
		n := &o.Nodes[i]
		s.Triangles += len(n.Triangles)
		s.MaxLoad = max(s.MaxLoad, len(n.Triangles))
		s.MaxDepth = max(s.MaxDepth, n.Depth)
		if n.IsLeaf() {
			s.Leaves++
		}
	}

	return s
}
