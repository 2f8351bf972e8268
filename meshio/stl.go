package meshio

import (
	"fmt"

	"github.com/akmonengine/triangles/geom"
	"github.com/akmonengine/triangles/shape"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// LoadSTL reads an ASCII or binary STL file. Facets get the IDs 0..N-1 in
// file order.
func LoadSTL(path string) ([]shape.Triangle, error) {
	mesh, err := render.LoadSTL(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	triangles := make([]shape.Triangle, 0, len(mesh))
	for id, facet := range mesh {
		triangles = append(triangles, shape.New(id,
			fromVec(facet[0]),
			fromVec(facet[1]),
			fromVec(facet[2]),
		))
	}

	return triangles, nil
}

// SaveSTL writes triangles as a binary STL mesh. Triangles of type None
// have no representable vertices and are skipped.
func SaveSTL(path string, triangles []shape.Triangle) error {
	mesh := make([]*sdf.Triangle3, 0, len(triangles))
	for _, t := range triangles {
		if t.Type() == shape.TypeNone {
			continue
		}
		mesh = append(mesh, &sdf.Triangle3{toVec(t.A()), toVec(t.B()), toVec(t.C())})
	}

	if err := render.SaveSTL(path, mesh); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Split separates the triangles whose ID is in ids from the others,
// preserving order.
func Split(triangles []shape.Triangle, ids []int) (hit, clear []shape.Triangle) {
	marked := make(map[int]bool, len(ids))
	for _, id := range ids {
		marked[id] = true
	}

	for _, t := range triangles {
		if marked[t.ID] {
			hit = append(hit, t)
		} else {
			clear = append(clear, t)
		}
	}
	return hit, clear
}

// ExportVisualization writes the intersecting triangles to
// prefix+"_intersecting.stl" and the rest to prefix+"_clear.stl", so the
// two sets can be loaded in any mesh viewer with different colors. It
// returns the paths written.
func ExportVisualization(prefix string, triangles []shape.Triangle, ids []int) ([]string, error) {
	hit, clear := Split(triangles, ids)

	outputs := []struct {
		path string
		tris []shape.Triangle
	}{
		{prefix + "_intersecting.stl", hit},
		{prefix + "_clear.stl", clear},
	}

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if err := SaveSTL(out.path, out.tris); err != nil {
			return paths, err
		}
		paths = append(paths, out.path)
	}

	return paths, nil
}

func fromVec(v v3.Vec) geom.Point {
	return geom.NewPoint(v.X, v.Y, v.Z)
}

func toVec(p geom.Point) v3.Vec {
	return v3.Vec{X: p.X(), Y: p.Y(), Z: p.Z()}
}
