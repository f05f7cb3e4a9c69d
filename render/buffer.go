// Package render holds the CPU side of the cloth's GPU buffers.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/ungerik/go3d/float64/vec3"
)

// Buffer keeps float32 copies of a mesh's positions, normals and triangle
// indices in the layout a vertex buffer upload expects. It implements
// cloth.Renderer.
type Buffer struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32

	// Version is bumped on every Create or Update so a draw loop can tell
	// when to re-upload.
	Version uint64
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Create(positions, normals []vec3.T, indices []uint32) {
	b.Indices = append(b.Indices[:0], indices...)
	b.Update(positions, normals)
}

func (b *Buffer) Update(positions, normals []vec3.T) {
	b.Positions = copyVec3(b.Positions, positions)
	b.Normals = copyVec3(b.Normals, normals)
	b.Version++
}

// Bounds returns the corners of the box around every position.
func (b *Buffer) Bounds() (lo, hi mgl32.Vec3) {
	if len(b.Positions) == 0 {
		return
	}
	inf := float32(math.Inf(1))
	lo = mgl32.Vec3{inf, inf, inf}
	hi = mgl32.Vec3{-inf, -inf, -inf}
	for _, p := range b.Positions {
		for i := 0; i < 3; i++ {
			if p[i] < lo[i] {
				lo[i] = p[i]
			}
			if p[i] > hi[i] {
				hi[i] = p[i]
			}
		}
	}
	return lo, hi
}

// Triangles is the number of triangles described by Indices.
func (b *Buffer) Triangles() int {
	return len(b.Indices) / 3
}

func copyVec3(dst []mgl32.Vec3, src []vec3.T) []mgl32.Vec3 {
	dst = dst[:0]
	for _, v := range src {
		dst = append(dst, mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])})
	}
	return dst
}
