package cloth

import (
	"fmt"
	"math"
)

// Vector is a point or direction in the plane the cloth outline is drawn in.
type Vector struct {
	X, Y float64
}

func (v Vector) String() string {
	return fmt.Sprintf("%f,%f", v.X, v.Y)
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

/// 2D vector cross product analog.
/// The cross product of 2D vectors results in a 3D vector with only a z component.
/// This function returns the magnitude of the z value.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// PolygonArea returns the signed area of a closed outline, positive for
// counter-clockwise winding.
func PolygonArea(points []Vector) float64 {
	var area float64
	n := len(points)
	for i := range points {
		area += points[(i+n-1)%n].Cross(points[i])
	}
	return area / 2
}
