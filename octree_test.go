package triangles

import (
	"math"
	"math/rand"
	"testing"

	"github.com/akmonengine/triangles/geom"
	"github.com/akmonengine/triangles/shape"
)

// randomTriangles returns n small triangles scattered in [0, extent]^3.
func randomTriangles(rng *rand.Rand, n int, extent, spread float64) []shape.Triangle {
	out := make([]shape.Triangle, n)
	for i := range out {
		base := geom.NewPoint(rng.Float64()*extent, rng.Float64()*extent, rng.Float64()*extent)
		var pts [3]geom.Point
		for k := range pts {
			pts[k] = geom.NewPoint(
				base.X()+(rng.Float64()*2-1)*spread,
				base.Y()+(rng.Float64()*2-1)*spread,
				base.Z()+(rng.Float64()*2-1)*spread,
			)
		}
		out[i] = shape.New(i, pts[0], pts[1], pts[2])
	}
	return out
}

func TestDepthHint(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{9999, 1},
		{10000, 2},
		{99999, 2},
		{100000, 3},
		{5000000, 3},
	}

	for _, tt := range tests {
		if got := DepthHint(tt.n); got != tt.want {
			t.Errorf("DepthHint(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}.withDefaults(20000)
	if c.MinCellSize != DEFAULT_MIN_CELL_SIZE {
		t.Errorf("MinCellSize = %v, want %v", c.MinCellSize, DEFAULT_MIN_CELL_SIZE)
	}
	if c.MaxDepth != BASE_DEPTH+4 {
		t.Errorf("MaxDepth = %d, want %d", c.MaxDepth, BASE_DEPTH+4)
	}
	if c.Workers != DEFAULT_WORKERS {
		t.Errorf("Workers = %d, want %d", c.Workers, DEFAULT_WORKERS)
	}

	custom := Config{MinCellSize: 0.5, MaxDepth: 3, Workers: 4}.withDefaults(20000)
	if custom != (Config{MinCellSize: 0.5, MaxDepth: 3, Workers: 4}) {
		t.Errorf("explicit values were overridden: %+v", custom)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	tree := BuildTree(nil, Config{})
	if len(tree.Nodes) != 1 || !tree.Root().IsLeaf() {
		t.Fatalf("expected a single empty root, got %d nodes", len(tree.Nodes))
	}

	ids, pairs := NarrowPhase(tree)
	if len(ids) != 0 || len(pairs) != 0 {
		t.Errorf("NarrowPhase on empty tree = %v, %v", ids, pairs)
	}
}

func TestBuildTreeSingleTriangle(t *testing.T) {
	tree := BuildTree([]shape.Triangle{
		shape.FromCoords(0, 0, 0, 0, 10, 0, 0, 0, 10, 0),
	}, Config{})

	if len(tree.Nodes) != 1 {
		t.Errorf("a single triangle should not split the root, got %d nodes", len(tree.Nodes))
	}
	if len(tree.Root().Triangles) != 1 {
		t.Errorf("root holds %d triangles, want 1", len(tree.Root().Triangles))
	}
}

func TestBuildTreeSplitsApartTriangles(t *testing.T) {
	near := shape.FromCoords(0, 0, 0, 0, 1, 0, 0, 0, 1, 0)
	far := shape.FromCoords(1, 9, 9, 1, 10, 9, 1, 9, 10, 1)
	spanning := shape.FromCoords(2, 0, 0, 0, 10, 10, 1, 0, 10, 1)

	tree := BuildTree([]shape.Triangle{near, far, spanning}, Config{})
	root := tree.Root()

	if len(root.Triangles) != 1 || root.Triangles[0].ID != 2 {
		t.Errorf("root should keep only the spanning triangle, got %v", root.Triangles)
	}
	if root.Children[0] < 0 || root.Children[7] < 0 {
		t.Fatalf("expected children in octants 0 and 7, got %v", root.Children)
	}
	if got := tree.Owner(0); got != root.Children[0] {
		t.Errorf("Owner(0) = %d, want %d", got, root.Children[0])
	}
	if got := tree.Owner(1); got != root.Children[7] {
		t.Errorf("Owner(1) = %d, want %d", got, root.Children[7])
	}
	if got := tree.Ancestors(tree.Owner(1)); len(got) != 1 || got[0] != 0 {
		t.Errorf("Ancestors = %v, want [0]", got)
	}
}

func TestBuildTreeFlatScene(t *testing.T) {
	// Every vertex has z = 0: the tree must still split in x and y.
	tris := []shape.Triangle{
		shape.FromCoords(0, 0, 0, 0, 1, 0, 0, 0, 1, 0),
		shape.FromCoords(1, 9, 9, 0, 10, 9, 0, 9, 10, 0),
	}

	tree := BuildTree(tris, Config{})
	if len(tree.Root().Triangles) != 0 {
		t.Errorf("root kept %d triangles, want 0", len(tree.Root().Triangles))
	}
	if tree.Root().Children[0] < 0 || tree.Root().Children[3] < 0 {
		t.Errorf("expected children in octants 0 and 3, got %v", tree.Root().Children)
	}
}

func TestBuildTreeDiscardsNone(t *testing.T) {
	tris := []shape.Triangle{
		shape.FromCoords(0, 0, 0, 0, 1, 0, 0, 0, 1, 0),
		shape.FromCoords(1, math.NaN(), 0, 0, 1, 0, 0, 0, 1, 0),
	}

	tree := BuildTree(tris, Config{})
	if len(tree.Discarded) != 1 || tree.Discarded[0].ID != 1 {
		t.Errorf("Discarded = %v", tree.Discarded)
	}
	if tree.Owner(1) != -1 {
		t.Errorf("a None triangle should not be owned by any node")
	}
}

func TestBuildTreeRespectsLimits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tris := randomTriangles(rng, 500, 100, 2)

	shallow := BuildTree(tris, Config{MaxDepth: 2})
	if s := shallow.Stats(); s.MaxDepth > 2 {
		t.Errorf("MaxDepth = %d, limit was 2", s.MaxDepth)
	}

	coarse := BuildTree(tris, Config{MinCellSize: 60})
	for i := range coarse.Nodes {
		n := &coarse.Nodes[i]
		if n.IsLeaf() {
			continue
		}
		size := n.Bounds.Size()
		if max(size.X(), size.Y(), size.Z()) <= 60 {
			t.Errorf("node %d of size %v was split", i, size)
		}
	}
}

func TestBuildPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tris := randomTriangles(rng, 800, 100, 3)

	for hint := 0; hint <= 3; hint++ {
		tree := BuildPartition(tris, hint)

		if got, want := tree.Config().MaxDepth, BASE_DEPTH+2*hint; got != want {
			t.Errorf("hint %d: MaxDepth = %d, want %d", hint, got, want)
		}
		if got := tree.Config().MinCellSize; got != DEFAULT_MIN_CELL_SIZE {
			t.Errorf("hint %d: MinCellSize = %v", hint, got)
		}
		assertContainment(t, tree, len(tris))
	}
}

// assertContainment checks that every triangle is owned by exactly one
// node and that this node's region contains it.
func assertContainment(t *testing.T, tree *Octree, want int) {
	t.Helper()

	owners := make(map[int]int)
	for i := range tree.Nodes {
		n := &tree.Nodes[i]
		for _, tri := range n.Triangles {
			if _, dup := owners[tri.ID]; dup {
				t.Errorf("triangle %d owned twice", tri.ID)
			}
			owners[tri.ID] = i
			for _, v := range tri.Vertices() {
				if !n.Bounds.ContainsPoint(v) {
					t.Errorf("node %d %v does not contain vertex %v of triangle %d", i, n.Bounds, v, tri.ID)
				}
			}
		}
		if n.Parent >= 0 && !tree.Nodes[n.Parent].Bounds.Contains(n.Bounds) {
			t.Errorf("node %d escapes its parent", i)
		}
	}

	if len(owners) != want {
		t.Errorf("%d triangles owned, want %d", len(owners), want)
	}
}

// Every triangle is owned by exactly one node, and that node's region
// contains it.
func TestBuildTreeContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tris := randomTriangles(rng, 2000, 100, 5)

	tree := BuildTree(tris, Config{})
	assertContainment(t, tree, len(tris))

	s := tree.Stats()
	if s.Triangles != len(tris) || s.Nodes != len(tree.Nodes) || s.Leaves == 0 {
		t.Errorf("unexpected stats %+v", s)
	}
	if s.Nodes == 1 {
		t.Error("2000 scattered triangles should split the root")
	}
}
