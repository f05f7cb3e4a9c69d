package cloth

// Edge is an unordered pair of positions within one face's index loop.
type Edge struct {
	A, B int
}

func NewEdge(a, b int) Edge {
	if a < b {
		return Edge{a, b}
	}
	return Edge{b, a}
}

// IntersectionIndex records, for one face and one cut line, which vertex the
// line crosses each edge of the face at.
type IntersectionIndex struct {
	points map[Edge]int
	count  int
}

func NewIntersectionIndex() *IntersectionIndex {
	return &IntersectionIndex{
		points: map[Edge]int{},
	}
}

// Insert records that the edge between loop positions prev and curr is
// crossed at the given vertex.
func (idx *IntersectionIndex) Insert(prev, curr, vertex int) {
	edge := NewEdge(prev, curr)
	if _, ok := idx.points[edge]; !ok {
		idx.count++
	}
	idx.points[edge] = vertex
}

func (idx *IntersectionIndex) Find(prev, curr int) (int, bool) {
	vertex, ok := idx.points[NewEdge(prev, curr)]
	return vertex, ok
}

// Contains reports whether vertex was recorded for any edge.
func (idx *IntersectionIndex) Contains(vertex int) bool {
	for _, v := range idx.points {
		if v == vertex {
			return true
		}
	}
	return false
}

// Count is the number of crossed edges recorded since the last Reset.
func (idx *IntersectionIndex) Count() int {
	return idx.count
}

func (idx *IntersectionIndex) Reset() {
	clear(idx.points)
	idx.count = 0
}
