package triangles

import (
	"sort"

	"github.com/akmonengine/triangles/geom"
	"github.com/akmonengine/triangles/intersect"
	"github.com/akmonengine/triangles/shape"
)

const DEFAULT_WORKERS = 1

// Pair - two intersecting triangle IDs, A < B
type Pair struct {
	A, B int
}

// makePair creates a normalized pair with consistent ordering
func makePair(a, b int) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// NEARBY_MARGIN pads the boxes compared by nearby. It exceeds the reach
// of every predicate tolerance and stays well below PARTITION_MARGIN.
const NEARBY_MARGIN = 10 * geom.Epsilon

// nearby rejects pairs whose bounding boxes are apart before the exact
// predicate runs.
func nearby(t1, t2 shape.Triangle) bool {
	return t1.Bounds().Grow(NEARBY_MARGIN).Overlaps(t2.Bounds())
}

type pairSet map[Pair]struct{}

func (s pairSet) test(t1, t2 shape.Triangle) {
	if nearby(t1, t2) && intersect.Intersects(t1, t2) {
		s[makePair(t1.ID, t2.ID)] = struct{}{}
	}
}

// BroadPhase partitions the triangles so that only triangles sharing a
// branch of the tree are ever compared.
func BroadPhase(triangles []shape.Triangle, config Config) *Octree {
	return BuildTree(triangles, config)
}

// NarrowPhase walks the tree and runs the exact predicate on every
// candidate pair: the pairs inside each node, and each node's triangles
// against the triangles of all its ancestors. It returns the sorted,
// deduplicated IDs of the triangles that intersect at least one other,
// and the intersecting pairs themselves.
//
// With more than one worker the subtrees under the root are collected
// concurrently and merged afterwards.
func NarrowPhase(tree *Octree) ([]int, []Pair) {
	if len(tree.Nodes) == 0 {
		return nil, nil
	}

	found := make(pairSet)
	root := tree.Root()
	tree.collectNode(0, nil, found)

	if tree.config.Workers <= 1 {
		for _, child := range root.Children {
			if child >= 0 {
				tree.collect(child, root.Triangles, found)
			}
		}
		return collected(found)
	}

	var results [8]pairSet
	task(tree.config.Workers, root.Children[:], func(i int, child int) {
		if child < 0 {
			return
		}
		results[i] = make(pairSet)
		tree.collect(child, root.Triangles, results[i])
	})

	for _, r := range results {
		for p := range r {
			found[p] = struct{}{}
		}
	}

	return collected(found)
}

// collect tests node idx and its whole subtree. ancestors is read-only;
// every child receives a fresh slice.
func (o *Octree) collect(idx int, ancestors []shape.Triangle, found pairSet) {
	o.collectNode(idx, ancestors, found)

	node := &o.Nodes[idx]
	if node.IsLeaf() {
		return
	}

	next := make([]shape.Triangle, 0, len(ancestors)+len(node.Triangles))
	next = append(next, ancestors...)
	next = append(next, node.Triangles...)

	for _, child := range node.Children {
		if child >= 0 {
			o.collect(child, next, found)
		}
	}
}

func (o *Octree) collectNode(idx int, ancestors []shape.Triangle, found pairSet) {
	own := o.Nodes[idx].Triangles

	for i := 0; i < len(own); i++ {
		for j := i + 1; j < len(own); j++ {
			found.test(own[i], own[j])
		}
		for _, a := range ancestors {
			found.test(own[i], a)
		}
	}
}

// BruteForce compares every pair of triangles with the same predicate as
// NarrowPhase, without any partition.
func BruteForce(triangles []shape.Triangle) ([]int, []Pair) {
	found := make(pairSet)
	for i := 0; i < len(triangles); i++ {
		for j := i + 1; j < len(triangles); j++ {
			found.test(triangles[i], triangles[j])
		}
	}
	return collected(found)
}

func collected(found pairSet) ([]int, []Pair) {
	pairs := make([]Pair, 0, len(found))
	seen := make(map[int]bool)
	ids := make([]int, 0)

	for p := range found {
		pairs = append(pairs, p)
		for _, id := range [2]int{p.A, p.B} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	sort.Ints(ids)
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	return ids, pairs
}
