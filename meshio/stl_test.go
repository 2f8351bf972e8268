package meshio

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/akmonengine/triangles/shape"
)

func TestSTLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.stl")
	in := []shape.Triangle{
		shape.FromCoords(0, 0, 0, 0, 1, 0, 0, 0, 1, 0),
		shape.FromCoords(1, 2, 2, 2, 4, 2, 2, 2, 4, 2),
		shape.FromCoords(2, math.NaN(), 0, 0, 1, 0, 0, 0, 1, 0),
	}

	if err := SaveSTL(path, in); err != nil {
		t.Fatalf("SaveSTL: %v", err)
	}

	out, err := LoadSTL(path)
	if err != nil {
		t.Fatalf("LoadSTL: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("loaded %d facets, want 2 (None skipped)", len(out))
	}

	for i := range out {
		if out[i].Vertices() != in[i].Vertices() {
			t.Errorf("facet %d = %v, want %v", i, out[i], in[i])
		}
		if out[i].ID != i {
			t.Errorf("facet %d has ID %d", i, out[i].ID)
		}
	}
}

func TestSplit(t *testing.T) {
	tris := []shape.Triangle{
		shape.FromCoords(0, 0, 0, 0, 1, 0, 0, 0, 1, 0),
		shape.FromCoords(1, 0, 0, 0, 1, 0, 0, 0, 1, 0),
		shape.FromCoords(2, 0, 0, 0, 1, 0, 0, 0, 1, 0),
	}

	hit, clear := Split(tris, []int{2, 0})
	if len(hit) != 2 || hit[0].ID != 0 || hit[1].ID != 2 {
		t.Errorf("hit = %v", hit)
	}
	if len(clear) != 1 || clear[0].ID != 1 {
		t.Errorf("clear = %v", clear)
	}
}

func TestExportVisualization(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "scene")
	tris := []shape.Triangle{
		shape.FromCoords(0, 0, 0, 0, 1, 0, 0, 0, 1, 0),
		shape.FromCoords(1, 5, 5, 5, 6, 5, 5, 5, 6, 5),
	}

	paths, err := ExportVisualization(prefix, tris, []int{0})
	if err != nil {
		t.Fatalf("ExportVisualization: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v", paths)
	}

	for i, path := range paths {
		got, err := LoadSTL(path)
		if err != nil {
			t.Fatalf("LoadSTL(%s): %v", path, err)
		}
		if len(got) != 1 || got[0].Vertices() != tris[i].Vertices() {
			t.Errorf("%s holds %v, want %v", path, got, tris[i])
		}
	}
}
