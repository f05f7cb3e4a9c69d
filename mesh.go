package cloth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/ungerik/go3d/float64/vec3"
)

var (
	ErrInvalidParameter  = errors.New("cloth: invalid parameter")
	ErrDegeneratePolygon = errors.New("cloth: polygon needs at least 3 indices")
	ErrIndexOutOfRange   = errors.New("cloth: vertex index out of range")
)

// Renderer receives the mesh's vertex data after it is built and after
// every Advance. The slices are only valid for the duration of the call.
type Renderer interface {
	Create(positions, normals []vec3.T, indices []uint32)
	Update(positions, normals []vec3.T)
}

// Mesh is a cloth surface cut from 2D outlines together with the solver
// state that moves it. A Mesh is not safe for concurrent use.
type Mesh struct {
	SegmentLength   float64
	TensileStrength float64

	Iterations int // relaxation passes per tick
	Damping    float64
	Gravity    vec3.T
	Jitter     float64 // bound of the random z offset applied at build

	Renderer Renderer

	vertices []Vertex
	faces    []Face
	links    []Link
	normals  []vec3.T
	indices  []uint32

	acceleration vec3.T
	rand         *rand.Rand
}

func NewMesh() *Mesh {
	return &Mesh{
		Iterations: 6,
		Damping:    0.01,
		Jitter:     0.5,
		rand:       rand.New(rand.NewSource(1)),
	}
}

// Seed resets the source used to jitter vertices during Build.
func (mesh *Mesh) Seed(seed int64) {
	mesh.rand = rand.New(rand.NewSource(seed))
}

// Clear discards every vertex, face and link.
func (mesh *Mesh) Clear() {
	mesh.vertices = nil
	mesh.faces = nil
	mesh.links = nil
	mesh.normals = nil
	mesh.indices = nil
	mesh.acceleration = vec3.Zero
}

// Build replaces the mesh with a grid cut from the given polygons. Each
// polygon is a loop of indices into points. The outline is cut every
// segmentLength along both axes and every resulting face edge becomes a
// link relaxed with tensileStrength.
func (mesh *Mesh) Build(points []Vector, polygons [][]int, segmentLength, tensileStrength float64) error {
	mesh.Clear()

	if !(segmentLength > 0) {
		return fmt.Errorf("%w: segment length %v must be positive", ErrInvalidParameter, segmentLength)
	}
	if !(tensileStrength >= 0) {
		return fmt.Errorf("%w: tensile strength %v must not be negative", ErrInvalidParameter, tensileStrength)
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d is %v", ErrInvalidParameter, i, p)
		}
	}
	for p, poly := range polygons {
		if len(poly) < 3 {
			return fmt.Errorf("%w: polygon %d has %d", ErrDegeneratePolygon, p, len(poly))
		}
		for _, i := range poly {
			if i < 0 || i >= len(points) {
				return fmt.Errorf("%w: polygon %d references %d of %d points", ErrIndexOutOfRange, p, i, len(points))
			}
		}
	}

	mesh.SegmentLength = segmentLength
	mesh.TensileStrength = tensileStrength

	bb := NewBBForPoints(points)
	mesh.vertices = make([]Vertex, 0, len(points))
	for _, p := range points {
		mesh.vertices = append(mesh.vertices, NewVertex(vec3.T{p.X, p.Y, 0}))
	}
	mesh.faces = make([]Face, 0, len(polygons))
	for _, poly := range polygons {
		mesh.faces = append(mesh.faces, Face{Indices: append([]int(nil), poly...)})
	}

	for k := 1; ; k++ {
		y := bb.Bottom() + float64(k)*segmentLength
		if y > bb.Top() {
			break
		}
		mesh.CutFaces(CutLine(Horizontal, y))
	}
	for k := 1; ; k++ {
		x := bb.Left() + float64(k)*segmentLength
		if x > bb.Right() {
			break
		}
		mesh.CutFaces(CutLine(Vertical, x))
	}

	mesh.jitter()
	mesh.normals = make([]vec3.T, len(mesh.vertices))

	for f := range mesh.faces {
		loop := mesh.faces[f].Indices
		if len(loop) < 2 {
			continue
		}
		prev := loop[len(loop)-1]
		for _, i := range loop {
			mesh.links = append(mesh.links, NewLink(mesh.vertices, prev, i))
			prev = i
		}
	}

	mesh.UpdateNormals()
	mesh.indices = mesh.triangulate()

	if mesh.Renderer != nil {
		mesh.Renderer.Create(mesh.Positions(nil), mesh.normals, mesh.indices)
	}
	return nil
}

// jitter moves every vertex off the flat plane by a small random amount.
// The cloth starts at rest in its jittered shape.
func (mesh *Mesh) jitter() {
	if mesh.rand == nil {
		mesh.rand = rand.New(rand.NewSource(1))
	}
	for i := range mesh.vertices {
		v := &mesh.vertices[i]
		if mesh.Jitter > 0 {
			v.Position[2] += (mesh.rand.Float64()*2 - 1) * mesh.Jitter
		}
		v.Previous = v.Position
	}
}

// triangulate fans every face from its first vertex. Faces that are not
// convex may produce overlapping triangles.
func (mesh *Mesh) triangulate() []uint32 {
	var indices []uint32
	for _, f := range mesh.faces {
		loop := f.Indices
		for i := 1; i < len(loop)-1; i++ {
			indices = append(indices, uint32(loop[0]), uint32(loop[i+1]), uint32(loop[i]))
		}
	}
	return indices
}

func (mesh *Mesh) VertexCount() int { return len(mesh.vertices) }
func (mesh *Mesh) FaceCount() int   { return len(mesh.faces) }
func (mesh *Mesh) LinkCount() int   { return len(mesh.links) }

// Vertices returns the mesh's vertices. The slice must not be modified.
func (mesh *Mesh) Vertices() []Vertex { return mesh.vertices }

// Faces returns the mesh's faces. The slice must not be modified.
func (mesh *Mesh) Faces() []Face { return mesh.faces }

// Links returns the mesh's links. The slice must not be modified.
func (mesh *Mesh) Links() []Link { return mesh.links }

// Normals returns one averaged normal per vertex.
func (mesh *Mesh) Normals() []vec3.T { return mesh.normals }

// Indices returns the triangle list, three vertex indices per triangle.
func (mesh *Mesh) Indices() []uint32 { return mesh.indices }

// Positions copies every vertex position into dst, growing it as needed.
func (mesh *Mesh) Positions(dst []vec3.T) []vec3.T {
	dst = dst[:0]
	for i := range mesh.vertices {
		dst = append(dst, mesh.vertices[i].Position)
	}
	return dst
}

// Area is the total signed area of all faces projected onto the outline plane.
func (mesh *Mesh) Area() float64 {
	var area float64
	for f := range mesh.faces {
		area += mesh.faces[f].Area(mesh.vertices)
	}
	return area
}

func (mesh *Mesh) SetPinned(i int, pinned bool) error {
	if i < 0 || i >= len(mesh.vertices) {
		return fmt.Errorf("%w: %d of %d vertices", ErrIndexOutOfRange, i, len(mesh.vertices))
	}
	mesh.vertices[i].Pinned = pinned
	return nil
}

func (mesh *Mesh) Pinned(i int) bool {
	if i < 0 || i >= len(mesh.vertices) {
		return false
	}
	return mesh.vertices[i].Pinned
}
