package adjacency

// cell is an optional value: a matrix entry or a vertex payload slot.
type cell[V any] struct {
	value   V
	present bool
}

// AdjacencyMatrix is a dense n×n graph storage with an optional weight per
// ordered (from,to) pair. Cells live in a flat row-major slice for cache
// friendliness. T is the vertex payload type, W the edge weight type.
//
// The vertex count is fixed at construction; edges are added and removed
// freely afterwards.
type AdjacencyMatrix[T, W any] struct {
	n     int       // vertex count, fixed at construction
	edges int       // live edge counter
	data  []cell[T] // per-vertex optional payload, length n
	cells []cell[W] // flat n*n matrix, row-major
}

// NewAdjacencyMatrix creates a matrix storage for vertexCount vertices
// with no edges and no vertex data.
// Complexity: O(n²) time and memory.
func NewAdjacencyMatrix[T, W any](vertexCount int) *AdjacencyMatrix[T, W] {
	if vertexCount < 0 {
		vertexCount = 0
	}

	return &AdjacencyMatrix[T, W]{
		n:     vertexCount,
		data:  make([]cell[T], vertexCount),
		cells: make([]cell[W], vertexCount*vertexCount),
	}
}

// VertexCount reports the fixed number of vertices.
func (m *AdjacencyMatrix[T, W]) VertexCount() int { return m.n }

// EdgeCount reports the number of live edges.
func (m *AdjacencyMatrix[T, W]) EdgeCount() int { return m.edges }

// indexOf computes the flat cell index for (from, to), or reports a
// bounds violation.
func (m *AdjacencyMatrix[T, W]) indexOf(from, to int) (int, error) {
	if from < 0 || from >= m.n || to < 0 || to >= m.n {
		return 0, ErrVertexOutOfRange
	}

	return from*m.n + to, nil
}

// SetVertexData attaches data to vertex v, replacing any previous payload.
// Returns ErrVertexOutOfRange on an invalid index.
func (m *AdjacencyMatrix[T, W]) SetVertexData(v int, data T) error {
	if v < 0 || v >= m.n {
		return ErrVertexOutOfRange
	}
	m.data[v] = cell[T]{value: data, present: true}

	return nil
}

// VertexData returns the payload of vertex v.
// Returns ErrVertexOutOfRange on an invalid index and ErrNoVertexData when
// the vertex carries no payload.
func (m *AdjacencyMatrix[T, W]) VertexData(v int) (T, error) {
	var zero T
	if v < 0 || v >= m.n {
		return zero, ErrVertexOutOfRange
	}
	if !m.data[v].present {
		return zero, ErrNoVertexData
	}

	return m.data[v].value, nil
}

// AddEdge stores weight on the directed edge from→to. If the edge was
// absent the edge counter is incremented; updating the weight of an
// existing edge leaves the counter untouched.
func (m *AdjacencyMatrix[T, W]) AddEdge(from, to int, weight W) error {
	idx, err := m.indexOf(from, to)
	if err != nil {
		return err
	}
	// Counter moves only on the absent→present transition.
	if !m.cells[idx].present {
		m.edges++
	}
	m.cells[idx] = cell[W]{value: weight, present: true}

	return nil
}

// GetEdge returns the weight stored on from→to, or ErrEdgeNotFound when
// the edge is absent.
func (m *AdjacencyMatrix[T, W]) GetEdge(from, to int) (W, error) {
	var zero W
	idx, err := m.indexOf(from, to)
	if err != nil {
		return zero, err
	}
	if !m.cells[idx].present {
		return zero, ErrEdgeNotFound
	}

	return m.cells[idx].value, nil
}

// HasEdge reports whether the directed edge from→to is present.
func (m *AdjacencyMatrix[T, W]) HasEdge(from, to int) (bool, error) {
	idx, err := m.indexOf(from, to)
	if err != nil {
		return false, err
	}

	return m.cells[idx].present, nil
}

// RemoveEdge clears the cell from→to. The edge counter is decremented only
// if an edge was present; removing an absent edge is a no-op.
func (m *AdjacencyMatrix[T, W]) RemoveEdge(from, to int) error {
	idx, err := m.indexOf(from, to)
	if err != nil {
		return err
	}
	if m.cells[idx].present {
		m.edges--
	}
	m.cells[idx] = cell[W]{}

	return nil
}

// FirstNeighbor scans row v from column 0 upward and returns the first
// present edge target. Neighbors therefore enumerate in strictly ascending
// index order. An invalid v enumerates as "no neighbors".
func (m *AdjacencyMatrix[T, W]) FirstNeighbor(v int) (int, bool) {
	return m.scanRow(v, 0)
}

// NextNeighbor returns the neighbor of v following cur in ascending index
// order, or ok == false when cur was the last one.
func (m *AdjacencyMatrix[T, W]) NextNeighbor(v, cur int) (int, bool) {
	if cur < 0 || cur >= m.n {
		return 0, false
	}

	return m.scanRow(v, cur+1)
}

// scanRow finds the first present cell in row v at column >= start.
func (m *AdjacencyMatrix[T, W]) scanRow(v, start int) (int, bool) {
	if v < 0 || v >= m.n {
		return 0, false
	}
	row := m.cells[v*m.n : (v+1)*m.n]
	for i := start; i < m.n; i++ {
		if row[i].present {
			return i, true
		}
	}

	return 0, false
}
