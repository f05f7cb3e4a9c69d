package cloth

import (
	"log"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// CutExtent is half the length of a grid cut line; far beyond any cloth.
const CutExtent = 1e10

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// CutLine returns the endpoints of the grid line at the given coordinate:
// y for Horizontal lines, x for Vertical ones.
func CutLine(axis Axis, at float64) (Vector, Vector) {
	if axis == Horizontal {
		return Vector{-CutExtent, at}, Vector{CutExtent, at}
	}
	return Vector{at, -CutExtent}, Vector{at, CutExtent}
}

// CutFaces splits every face the line p-q passes through into two faces.
// The original face keeps one side and the other is appended to the mesh.
// Crossing points are shared with any existing vertex within VertexEpsilon.
func (mesh *Mesh) CutFaces(p, q Vector) {
	index := NewIntersectionIndex()
	var split [][]int

	// faces appended by this cut are not visited again
	count := len(mesh.faces)
	for f := 0; f < count; f++ {
		face := &mesh.faces[f]
		if len(face.Indices) < 2 {
			continue
		}

		index.Reset()
		mesh.intersectFace(face, p, q, index)
		if index.Count() < 2 {
			continue
		}

		old, created := splitLoop(face.Indices, index)
		if len(old) < 3 {
			log.Printf("cloth: cut left a %d sided face %v", len(old), old)
		}
		face.Indices = old
		for _, loop := range created {
			if len(loop) < 3 {
				log.Printf("cloth: cut created a %d sided face %v", len(loop), loop)
			}
			split = append(split, loop)
		}
	}

	for _, loop := range split {
		mesh.faces = append(mesh.faces, Face{Indices: loop})
	}
}

// intersectFace records in index where p-q crosses each edge of the face.
// A vertex on the line is recorded once, by the edge arriving at it from off
// the line; edges running along the line record nothing.
func (mesh *Mesh) intersectFace(face *Face, p, q Vector, index *IntersectionIndex) {
	n := len(face.Indices)
	prev := n - 1
	for i := 0; i < n; i++ {
		a := mesh.vertices[face.Indices[prev]]
		b := mesh.vertices[face.Indices[i]]

		t, crossing := SegmentIntersection(a.Plane(), b.Plane(), p, q)
		if crossing != CrossingHit {
			prev = i
			continue
		}

		vertex := face.Indices[i]
		if t < 1 {
			point := vec3.Interpolate(&a.Position, &b.Position, t)
			snapToLine(&point, &a.Position, &b.Position, p, q)
			vertex = mesh.findOrAddVertex(point)
		}

		// a crossing at a corner belongs to the edge coming into that corner
		along := false
		switch vertex {
		case face.Indices[i]:
			along = nearLine(a.Plane(), p, q)
		case face.Indices[prev]:
			along = nearLine(mesh.vertices[face.Indices[(prev+n-1)%n]].Plane(), p, q)
		}
		if !along && !index.Contains(vertex) {
			index.Insert(prev, i, vertex)
		}
		prev = i
	}
}

// snapToLine puts a crossing of edge a-b exactly on an axis aligned line
// p-q, and keeps any coordinate the edge holds constant. An edge ending at
// the point then crosses the same line again at exactly t == 1.
func snapToLine(point, a, b *vec3.T, p, q Vector) {
	for axis := 0; axis < 2; axis++ {
		if a[axis] == b[axis] {
			point[axis] = a[axis]
		}
	}
	switch {
	case p.Y == q.Y:
		point[1] = p.Y
	case p.X == q.X:
		point[0] = p.X
	}
}

// nearLine reports whether v is within VertexEpsilon of the line through p and q.
func nearLine(v, p, q Vector) bool {
	s := q.Sub(p)
	return math.Abs(v.Sub(p).Cross(s)) < VertexEpsilon*s.Length()
}

// splitLoop walks the loop, switching between the old face and a new face
// at every recorded crossing. The crossing vertex ends one loop and starts
// the next.
func splitLoop(indices []int, index *IntersectionIndex) (old []int, created [][]int) {
	var current []int
	inOld := true

	n := len(indices)
	prev := n - 1
	for i := 0; i < n; i++ {
		if inOld {
			old = appendLoop(old, indices[prev])
		} else {
			current = appendLoop(current, indices[prev])
		}

		if vertex, ok := index.Find(prev, i); ok {
			old = appendLoop(old, vertex)
			current = appendLoop(current, vertex)
			inOld = !inOld
			if inOld {
				created = append(created, closeLoop(current))
				current = nil
			}
		}
		prev = i
	}

	// An odd number of crossings leaves a run that wraps around to the
	// start of the old face.
	if !inOld {
		for _, idx := range old {
			current = appendLoop(current, idx)
		}
		old = current
	}
	return closeLoop(old), created
}
