package cloth

import (
	"math"
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func TestMesh_NormalsUnitLength(t *testing.T) {
	mesh := NewMesh()
	mesh.Gravity = vec3.T{0, -0.02, 0}
	points := []Vector{{0, 5}, {3, 5}, {3, 8}, {0, 8}}
	if err := mesh.Build(points, [][]int{loop(4)}, 0.75, 1); err != nil {
		t.Fatal(err)
	}
	if err := mesh.SetPinned(3, true); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20; i++ {
		mesh.Advance()
	}

	used := make([]bool, mesh.VertexCount())
	for _, f := range mesh.Faces() {
		if f.Valid() {
			for _, i := range f.Indices {
				used[i] = true
			}
		}
	}
	for i, n := range mesh.Normals() {
		if !used[i] {
			continue
		}
		if l := n.Length(); math.Abs(l-1) > 1e-9 {
			t.Errorf("Vertex %d normal %v has length %v", i, n, l)
		}
	}
}

func TestMesh_NormalsUnusedVertex(t *testing.T) {
	mesh := NewMesh()
	points := []Vector{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0.5, 0.5}}
	if err := mesh.Build(points, [][]int{{0, 1, 2, 3}}, 1, 1); err != nil {
		t.Fatal(err)
	}
	mesh.Advance()

	n := mesh.Normals()[4]
	if !n.IsZero() {
		t.Errorf("Expected zero normal for an unused vertex, got %v", n)
	}
}

func TestMesh_FlatNormals(t *testing.T) {
	mesh := NewMesh()
	mesh.Jitter = 0

	ccw := []Vector{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if err := mesh.Build(ccw, [][]int{loop(4)}, 1, 1); err != nil {
		t.Fatal(err)
	}
	for i, n := range mesh.Normals() {
		if !n.PracticallyEquals(&vec3.UnitZ, 1e-12) {
			t.Errorf("Vertex %d: expected +z normal for counter-clockwise faces, got %v", i, n)
		}
	}

	cw := []Vector{{0, 2}, {2, 2}, {2, 0}, {0, 0}}
	if err := mesh.Build(cw, [][]int{loop(4)}, 1, 1); err != nil {
		t.Fatal(err)
	}
	down := vec3.UnitZ.Inverted()
	for i, n := range mesh.Normals() {
		if !n.PracticallyEquals(&down, 1e-12) {
			t.Errorf("Vertex %d: expected -z normal for clockwise faces, got %v", i, n)
		}
	}
}

func TestMesh_NormalsDegenerateFace(t *testing.T) {
	mesh := NewMesh()
	mesh.Jitter = 0
	if err := mesh.Build(square, [][]int{loop(4)}, 10, 1); err != nil {
		t.Fatal(err)
	}

	// a face cut down to an edge must not break normals or triangulation
	mesh.faces = append(mesh.faces, Face{Indices: []int{0, 1}})
	mesh.UpdateNormals()
	if n := mesh.Faces()[1].Normal; !n.IsZero() {
		t.Errorf("Expected zero normal for a two sided face, got %v", n)
	}
	if n := mesh.Normals()[0]; !n.PracticallyEquals(&vec3.UnitZ, 1e-12) {
		t.Errorf("Expected the two sided face to be ignored, got %v", n)
	}
	if tris := mesh.triangulate(); len(tris) != 6 {
		t.Errorf("Expected only the square's triangles, got %v", tris)
	}
}
