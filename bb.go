package cloth

import "math"

// BB is an axis aligned bounding box in outline space.
type BB struct {
	l, b, r, t float64
}

// NewBB returns an empty box that any Expand call will replace.
func NewBB() BB {
	return BB{
		l: math.Inf(1),
		b: math.Inf(1),
		r: math.Inf(-1),
		t: math.Inf(-1),
	}
}

func NewBBForPoints(points []Vector) BB {
	bb := NewBB()
	for _, p := range points {
		bb = bb.Expand(p)
	}
	return bb
}

func (bb BB) Left() float64   { return bb.l }
func (bb BB) Bottom() float64 { return bb.b }
func (bb BB) Right() float64  { return bb.r }
func (bb BB) Top() float64    { return bb.t }

func (bb BB) Expand(v Vector) BB {
	return BB{
		math.Min(bb.l, v.X),
		math.Min(bb.b, v.Y),
		math.Max(bb.r, v.X),
		math.Max(bb.t, v.Y),
	}
}
