package adjacency

// halfEdge is one entry of a vertex's neighbor sequence.
type halfEdge[W any] struct {
	to     int
	weight W
}

// AdjacencyList is a dense-index graph storage keeping, per vertex, an
// ordered sequence of (target, weight) pairs. Insertion order is preserved
// and defines the neighbor enumeration order.
//
// The vertex count is fixed at construction. Duplicate (from,to) edges are
// collapsed: re-adding updates the stored weight in place.
type AdjacencyList[T, W any] struct {
	n     int             // vertex count, fixed at construction
	edges int             // live edge counter
	data  []cell[T]       // per-vertex optional payload, length n
	adj   [][]halfEdge[W] // adj[v] lists the out-edges of v in insertion order
}

// NewAdjacencyList creates a list storage for vertexCount vertices with no
// edges and no vertex data.
// Complexity: O(n) time and memory.
func NewAdjacencyList[T, W any](vertexCount int) *AdjacencyList[T, W] {
	if vertexCount < 0 {
		vertexCount = 0
	}

	return &AdjacencyList[T, W]{
		n:    vertexCount,
		data: make([]cell[T], vertexCount),
		adj:  make([][]halfEdge[W], vertexCount),
	}
}

// VertexCount reports the fixed number of vertices.
func (l *AdjacencyList[T, W]) VertexCount() int { return l.n }

// EdgeCount reports the number of live edges.
func (l *AdjacencyList[T, W]) EdgeCount() int { return l.edges }

// SetVertexData attaches data to vertex v, replacing any previous payload.
func (l *AdjacencyList[T, W]) SetVertexData(v int, data T) error {
	if v < 0 || v >= l.n {
		return ErrVertexOutOfRange
	}
	l.data[v] = cell[T]{value: data, present: true}

	return nil
}

// VertexData returns the payload of vertex v, ErrNoVertexData when unset.
func (l *AdjacencyList[T, W]) VertexData(v int) (T, error) {
	var zero T
	if v < 0 || v >= l.n {
		return zero, ErrVertexOutOfRange
	}
	if !l.data[v].present {
		return zero, ErrNoVertexData
	}

	return l.data[v].value, nil
}

// checkPair validates both endpoint indices.
func (l *AdjacencyList[T, W]) checkPair(from, to int) error {
	if from < 0 || from >= l.n || to < 0 || to >= l.n {
		return ErrVertexOutOfRange
	}

	return nil
}

// AddEdge appends the directed edge from→to with the given weight. If the
// edge already exists its weight is overwritten in place and neither the
// sequence order nor the edge counter changes.
func (l *AdjacencyList[T, W]) AddEdge(from, to int, weight W) error {
	if err := l.checkPair(from, to); err != nil {
		return err
	}
	for i := range l.adj[from] {
		if l.adj[from][i].to == to {
			l.adj[from][i].weight = weight

			return nil
		}
	}
	l.adj[from] = append(l.adj[from], halfEdge[W]{to: to, weight: weight})
	l.edges++

	return nil
}

// GetEdge returns the weight stored on from→to, or ErrEdgeNotFound.
func (l *AdjacencyList[T, W]) GetEdge(from, to int) (W, error) {
	var zero W
	if err := l.checkPair(from, to); err != nil {
		return zero, err
	}
	for i := range l.adj[from] {
		if l.adj[from][i].to == to {
			return l.adj[from][i].weight, nil
		}
	}

	return zero, ErrEdgeNotFound
}

// HasEdge reports whether the directed edge from→to is present.
func (l *AdjacencyList[T, W]) HasEdge(from, to int) (bool, error) {
	if err := l.checkPair(from, to); err != nil {
		return false, err
	}
	for i := range l.adj[from] {
		if l.adj[from][i].to == to {
			return true, nil
		}
	}

	return false, nil
}

// RemoveEdge deletes the single entry from→to from the sequence and
// decrements the edge counter. Removing an absent edge is a no-op.
func (l *AdjacencyList[T, W]) RemoveEdge(from, to int) error {
	if err := l.checkPair(from, to); err != nil {
		return err
	}
	seq := l.adj[from]
	for i := range seq {
		if seq[i].to == to {
			l.adj[from] = append(seq[:i], seq[i+1:]...)
			l.edges--

			return nil
		}
	}

	return nil
}

// FirstNeighbor returns the head of v's neighbor sequence: the oldest
// surviving insertion. An invalid v enumerates as "no neighbors".
func (l *AdjacencyList[T, W]) FirstNeighbor(v int) (int, bool) {
	if v < 0 || v >= l.n || len(l.adj[v]) == 0 {
		return 0, false
	}

	return l.adj[v][0].to, true
}

// NextNeighbor locates cur in v's sequence and returns the entry after it.
// If cur is the tail, or not a neighbor of v at all, ok is false.
func (l *AdjacencyList[T, W]) NextNeighbor(v, cur int) (int, bool) {
	if v < 0 || v >= l.n {
		return 0, false
	}
	seq := l.adj[v]
	for i := range seq {
		if seq[i].to == cur {
			if i+1 < len(seq) {
				return seq[i+1].to, true
			}

			return 0, false
		}
	}

	return 0, false
}
