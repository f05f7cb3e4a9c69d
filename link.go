package cloth

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Link is a structural spring between two vertices.
type Link struct {
	A, B       int
	RestLength float64
}

func NewLink(vertices []Vertex, a, b int) Link {
	return Link{
		A:          a,
		B:          b,
		RestLength: vec3.Distance(&vertices[a].Position, &vertices[b].Position),
	}
}

func (l Link) String() string {
	return fmt.Sprintf("Link %d-%d (%f)", l.A, l.B, l.RestLength)
}

// Length is the current distance between the link's vertices.
func (l *Link) Length(vertices []Vertex) float64 {
	return vec3.Distance(&vertices[l.A].Position, &vertices[l.B].Position)
}

// Solve moves the link's unpinned endpoints toward the rest length, scaled by
// stiffness. Coincident endpoints are left alone.
func (l *Link) Solve(vertices []Vertex, stiffness float64) {
	a := &vertices[l.A]
	b := &vertices[l.B]

	correction := vec3.Sub(&b.Position, &a.Position)
	length := correction.Length()
	if length == 0 {
		return
	}

	correction.Scale((1 - l.RestLength/length) * 0.5 * stiffness)
	if !a.Pinned {
		a.Position.Add(&correction)
	}
	if !b.Pinned {
		b.Position.Sub(&correction)
	}
}
