package cloth

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// VertexEpsilon is the per-axis distance under which two points are the same vertex.
const VertexEpsilon = 1e-4

type Vertex struct {
	Position vec3.T
	// Previous is the position before the last Integrate; velocity is implied by the difference.
	Previous vec3.T
	Pinned   bool

	faceCount int
}

func NewVertex(p vec3.T) Vertex {
	return Vertex{
		Position: p,
		Previous: p,
	}
}

func (v Vertex) String() string {
	return fmt.Sprint("Vertex ", v.Position)
}

// Plane returns the vertex projected onto the outline plane.
func (v *Vertex) Plane() Vector {
	return Vector{v.Position[0], v.Position[1]}
}

func (v *Vertex) Near(p *vec3.T) bool {
	return math.Abs(v.Position[0]-p[0]) < VertexEpsilon &&
		math.Abs(v.Position[1]-p[1]) < VertexEpsilon &&
		math.Abs(v.Position[2]-p[2]) < VertexEpsilon
}

// findOrAddVertex returns the index of a vertex within VertexEpsilon of p,
// appending a new one when none exists.
func (mesh *Mesh) findOrAddVertex(p vec3.T) int {
	for i := range mesh.vertices {
		if mesh.vertices[i].Near(&p) {
			return i
		}
	}
	mesh.vertices = append(mesh.vertices, NewVertex(p))
	return len(mesh.vertices) - 1
}
