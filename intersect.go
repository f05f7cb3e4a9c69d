package cloth

// Crossing classifies the result of SegmentIntersection.
type Crossing int

const (
	CrossingNone Crossing = iota
	CrossingParallel
	CrossingHit
)

func (c Crossing) String() string {
	switch c {
	case CrossingParallel:
		return "parallel"
	case CrossingHit:
		return "hit"
	default:
		return "none"
	}
}

// SegmentIntersection finds where segment a-b crosses segment p-q.
//
// On CrossingHit the returned lambda is the position along a-b, in (0, 1].
// A crossing exactly at a is never reported as a hit; the segment that ends
// at a reports it at lambda 1 instead. The position along p-q must be
// strictly inside the segment.
func SegmentIntersection(a, b, p, q Vector) (float64, Crossing) {
	r := b.Sub(a)
	s := q.Sub(p)
	det := r.Cross(s)
	if det == 0 {
		return 0, CrossingParallel
	}

	w := q.Sub(a)
	lambda := w.Cross(s) / det
	gamma := r.Cross(w) / det
	if 0 < lambda && lambda <= 1 && 0 < gamma && gamma < 1 {
		return lambda, CrossingHit
	}
	return 0, CrossingNone
}
