package traverse

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrNilSource is returned if a nil NeighborSource is passed.
	ErrNilSource = errors.New("traverse: neighbor source is nil")

	// ErrNilVisitor is returned if a nil VertexVisitor is passed.
	ErrNilVisitor = errors.New("traverse: visitor is nil")

	// ErrStartOutOfRange is returned when the start index is not a valid
	// vertex of the source.
	ErrStartOutOfRange = errors.New("traverse: start vertex out of range")
)

// BFS performs breadth-first search over g starting at start, reporting
// every discovered vertex to visitor exactly once, in discovery order.
//
// The vertex count is taken from g itself, so the visited set always
// matches the storage it walks. Neighbors of equal depth are visited in
// the enumeration order of the underlying storage. Vertices unreachable
// from start are never reported.
//
// The visitor is invoked at discovery time (when a vertex is first seen
// and enqueued), so the start vertex is reported before any neighbor.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g NeighborSource, start int, visitor VertexVisitor) error {
	if g == nil {
		return ErrNilSource
	}
	if visitor == nil {
		return ErrNilVisitor
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)

	// Discover the start vertex.
	visited[start] = true
	visitor.Visit(start)
	queue = append(queue, start)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		// Enumerate neighbors in storage order; tie-breaking among
		// same-depth vertices comes entirely from this order.
		for nbr, ok := g.FirstNeighbor(curr); ok; nbr, ok = g.NextNeighbor(curr, nbr) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			visitor.Visit(nbr)
			queue = append(queue, nbr)
		}
	}

	return nil
}
