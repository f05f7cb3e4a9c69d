package cloth

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Face is a simple polygon given by indices into the mesh's vertices, in
// the winding order of the outline it came from.
type Face struct {
	Indices []int
	Normal  vec3.T
}

func (f Face) String() string {
	return fmt.Sprint("Face ", f.Indices)
}

// Valid reports whether the face still spans an area.
func (f *Face) Valid() bool {
	return len(f.Indices) >= 3
}

// Area is the signed area of the face projected onto the outline plane.
func (f *Face) Area(vertices []Vertex) float64 {
	points := make([]Vector, len(f.Indices))
	for i, idx := range f.Indices {
		points[i] = vertices[idx].Plane()
	}
	return PolygonArea(points)
}

// appendLoop appends idx unless it repeats the last index.
func appendLoop(loop []int, idx int) []int {
	if n := len(loop); n > 0 && loop[n-1] == idx {
		return loop
	}
	return append(loop, idx)
}

// closeLoop drops trailing indices that repeat the first one.
func closeLoop(loop []int) []int {
	for len(loop) > 1 && loop[len(loop)-1] == loop[0] {
		loop = loop[:len(loop)-1]
	}
	return loop
}
