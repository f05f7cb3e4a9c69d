package cloth

import (
	"testing"
)

func TestSegmentIntersection(t *testing.T) {
	long := func(x float64) (Vector, Vector) { return CutLine(Vertical, x) }

	tests := []struct {
		name     string
		a, b     Vector
		x        float64
		lambda   float64
		crossing Crossing
	}{
		{"interior", Vector{0, 0}, Vector{4, 0}, 1, 0.25, CrossingHit},
		{"at end", Vector{0, 0}, Vector{4, 0}, 4, 1, CrossingHit},
		{"at start", Vector{0, 0}, Vector{4, 0}, 0, 0, CrossingNone},
		{"beyond end", Vector{0, 0}, Vector{4, 0}, 5, 0, CrossingNone},
		{"before start", Vector{0, 0}, Vector{4, 0}, -1, 0, CrossingNone},
		{"parallel", Vector{1, 0}, Vector{1, 4}, 1, 0, CrossingParallel},
		{"reversed", Vector{4, 1}, Vector{0, 1}, 1, 0.75, CrossingHit},
	}

	for _, test := range tests {
		p, q := long(test.x)
		lambda, crossing := SegmentIntersection(test.a, test.b, p, q)
		if crossing != test.crossing {
			t.Errorf("%s: expected %v, got %v", test.name, test.crossing, crossing)
			continue
		}
		if lambda != test.lambda {
			t.Errorf("%s: expected lambda %v, got %v", test.name, test.lambda, lambda)
		}
	}
}

func TestSegmentIntersection_ShortSecondSegment(t *testing.T) {
	// the second segment must be crossed strictly inside
	_, crossing := SegmentIntersection(Vector{0, 0}, Vector{4, 0}, Vector{1, 0}, Vector{1, 2})
	if crossing != CrossingNone {
		t.Errorf("Expected no hit at the end of the second segment, got %v", crossing)
	}

	lambda, crossing := SegmentIntersection(Vector{0, 0}, Vector{4, 0}, Vector{1, -1}, Vector{1, 1})
	if crossing != CrossingHit || lambda != 0.25 {
		t.Errorf("Expected hit at 0.25, got %v %v", crossing, lambda)
	}
}

func TestIntersectionIndex(t *testing.T) {
	index := NewIntersectionIndex()

	index.Insert(3, 0, 7)
	if index.Count() != 1 {
		t.Errorf("Count not updated")
	}
	if v, ok := index.Find(0, 3); !ok || v != 7 {
		t.Errorf("Expected 7 for either order, got %v %v", v, ok)
	}
	if _, ok := index.Find(0, 1); ok {
		t.Errorf("Found an edge never inserted")
	}

	index.Insert(1, 2, 8)
	if index.Count() != 2 {
		t.Errorf("Count not updated")
	}
	index.Insert(2, 1, 9)
	if index.Count() != 2 {
		t.Errorf("Replacing an edge should not count twice")
	}
	if v, _ := index.Find(1, 2); v != 9 {
		t.Errorf("Expected replaced vertex 9, got %v", v)
	}
	if !index.Contains(7) || !index.Contains(9) || index.Contains(8) {
		t.Errorf("Contains disagrees with the recorded vertices")
	}

	index.Reset()
	if index.Count() != 0 {
		t.Errorf("Count not reset")
	}
	if _, ok := index.Find(3, 0); ok {
		t.Errorf("Edge survived reset")
	}
}

func TestNewEdge(t *testing.T) {
	if NewEdge(5, 2) != (Edge{2, 5}) || NewEdge(2, 5) != (Edge{2, 5}) {
		t.Errorf("Edges are not canonical")
	}
}
