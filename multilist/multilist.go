package multilist

import (
	"errors"

	"github.com/katalvlaran/graphrep/arena"
)

// Sentinel errors for multilist operations.
var (
	// ErrVertexOutOfRange indicates a vertex index >= VertexCount (or < 0).
	ErrVertexOutOfRange = errors.New("multilist: vertex index out of range")

	// ErrEdgeNotFound indicates that GetEdge referenced an absent edge.
	ErrEdgeNotFound = errors.New("multilist: edge not found")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to
	// itself, which this representation does not support.
	ErrSelfLoop = errors.New("multilist: self-loops not supported")
)

// edge is one undirected edge record serving both endpoints: ilink
// continues ivex's chain, jlink continues jvex's chain.
type edge[W any] struct {
	ivex, jvex int
	weight     W
	ilink      arena.Handle // next edge incident to ivex
	jlink      arena.Handle // next edge incident to jvex
}

// linkOf returns the chain link belonging to vertex v within e.
// Precondition: v is one of e's endpoints.
func (e *edge[W]) linkOf(v int) arena.Handle {
	if e.ivex == v {
		return e.ilink
	}

	return e.jlink
}

// setLinkOf overwrites the chain link belonging to vertex v within e.
func (e *edge[W]) setLinkOf(v int, h arena.Handle) {
	if e.ivex == v {
		e.ilink = h
	} else {
		e.jlink = h
	}
}

// joins reports whether e connects i and j, in either stored orientation.
func (e *edge[W]) joins(i, j int) bool {
	return (e.ivex == i && e.jvex == j) || (e.ivex == j && e.jvex == i)
}

// other returns the endpoint of e that is not v.
// Precondition: v is one of e's endpoints.
func (e *edge[W]) other(v int) int {
	if e.ivex == v {
		return e.jvex
	}

	return e.ivex
}

// vertexNode holds a vertex payload and the head of its edge chain.
type vertexNode[T any] struct {
	data      T
	firstEdge arena.Handle
}

// AdjacencyMultilist stores an undirected graph as an arena of edge
// records, each threaded into the chains of both its endpoints. T is the
// vertex payload type, W the edge weight type.
//
// Vertices are created incrementally by AddVertex and never removed; their
// indices are dense and stable for the lifetime of the list.
type AdjacencyMultilist[T, W any] struct {
	verts []vertexNode[T]
	pool  arena.Arena[edge[W]]
	edges int
}

// NewAdjacencyMultilist creates an empty multilist.
func NewAdjacencyMultilist[T, W any]() *AdjacencyMultilist[T, W] {
	return &AdjacencyMultilist[T, W]{}
}

// AddVertex appends a vertex carrying data, with an empty edge chain, and
// returns its index.
func (m *AdjacencyMultilist[T, W]) AddVertex(data T) int {
	m.verts = append(m.verts, vertexNode[T]{data: data, firstEdge: arena.None})

	return len(m.verts) - 1
}

// VertexCount reports the number of vertices added so far.
func (m *AdjacencyMultilist[T, W]) VertexCount() int { return len(m.verts) }

// EdgeCount reports the number of live edges.
func (m *AdjacencyMultilist[T, W]) EdgeCount() int { return m.edges }

// VertexData returns the payload of vertex v.
func (m *AdjacencyMultilist[T, W]) VertexData(v int) (T, error) {
	var zero T
	if v < 0 || v >= len(m.verts) {
		return zero, ErrVertexOutOfRange
	}

	return m.verts[v].data, nil
}

// checkPair validates both endpoint indices.
func (m *AdjacencyMultilist[T, W]) checkPair(i, j int) error {
	if i < 0 || i >= len(m.verts) || j < 0 || j >= len(m.verts) {
		return ErrVertexOutOfRange
	}

	return nil
}

// AddEdge allocates the undirected edge (i,j) and prepends the single
// record into both endpoints' chains. Returns ErrSelfLoop when i == j.
func (m *AdjacencyMultilist[T, W]) AddEdge(i, j int, weight W) error {
	if err := m.checkPair(i, j); err != nil {
		return err
	}
	if i == j {
		return ErrSelfLoop
	}

	h := m.pool.Alloc(edge[W]{
		ivex:   i,
		jvex:   j,
		weight: weight,
		ilink:  m.verts[i].firstEdge,
		jlink:  m.verts[j].firstEdge,
	})
	m.verts[i].firstEdge = h
	m.verts[j].firstEdge = h
	m.edges++

	return nil
}

// find walks i's chain for the first record joining i and j, returning its
// handle or arena.None.
func (m *AdjacencyMultilist[T, W]) find(i, j int) arena.Handle {
	for h := m.verts[i].firstEdge; !h.IsNone(); {
		e, ok := m.pool.Get(h)
		if !ok {
			break // unreachable while chain consistency holds
		}
		if e.joins(i, j) {
			return h
		}
		h = e.linkOf(i)
	}

	return arena.None
}

// GetEdge returns the weight of the edge (i,j), matching either stored
// orientation, or ErrEdgeNotFound.
func (m *AdjacencyMultilist[T, W]) GetEdge(i, j int) (W, error) {
	var zero W
	if err := m.checkPair(i, j); err != nil {
		return zero, err
	}
	h := m.find(i, j)
	if h.IsNone() {
		return zero, ErrEdgeNotFound
	}
	e, _ := m.pool.Get(h)

	return e.weight, nil
}

// HasEdge reports whether the edge (i,j) exists in either orientation.
func (m *AdjacencyMultilist[T, W]) HasEdge(i, j int) (bool, error) {
	if err := m.checkPair(i, j); err != nil {
		return false, err
	}

	return !m.find(i, j).IsNone(), nil
}

// RemoveEdge locates the edge (i,j) in either orientation and removes it:
// one unit of work that splices the record out of both endpoints' chains,
// then frees its arena slot. Removing an absent edge is a no-op.
func (m *AdjacencyMultilist[T, W]) RemoveEdge(i, j int) error {
	if err := m.checkPair(i, j); err != nil {
		return err
	}
	target := m.find(i, j)
	if target.IsNone() {
		return nil
	}

	e, _ := m.pool.Get(target)
	// Resolve the record's own endpoints before unlinking: the caller's
	// (i,j) may be the reverse of the stored orientation.
	m.unlink(e.ivex, target)
	m.unlink(e.jvex, target)

	m.pool.Free(target)
	m.edges--

	return nil
}

// unlink splices the record addressed by target out of vertex v's chain,
// patching the predecessor's link for v, or the vertex chain head when the
// target is first.
func (m *AdjacencyMultilist[T, W]) unlink(v int, target arena.Handle) {
	prev := arena.None
	for h := m.verts[v].firstEdge; !h.IsNone(); {
		if h == target {
			break
		}
		e, ok := m.pool.Get(h)
		if !ok {
			return
		}
		prev = h
		h = e.linkOf(v)
	}

	te, ok := m.pool.Get(target)
	if !ok {
		return
	}
	next := te.linkOf(v)
	if prev.IsNone() {
		m.verts[v].firstEdge = next
	} else {
		pe, _ := m.pool.Get(prev)
		pe.setLinkOf(v, next)
	}
}

// Degree counts the edges incident to v.
func (m *AdjacencyMultilist[T, W]) Degree(v int) (int, error) {
	if v < 0 || v >= len(m.verts) {
		return 0, ErrVertexOutOfRange
	}
	n := 0
	for h := m.verts[v].firstEdge; !h.IsNone(); {
		e, ok := m.pool.Get(h)
		if !ok {
			break
		}
		n++
		h = e.linkOf(v)
	}

	return n, nil
}

// FirstNeighbor returns the other endpoint of the first edge in v's chain,
// which is the most recently inserted incident edge. An invalid v
// enumerates as "no neighbors".
func (m *AdjacencyMultilist[T, W]) FirstNeighbor(v int) (int, bool) {
	if v < 0 || v >= len(m.verts) {
		return 0, false
	}
	e, ok := m.pool.Get(m.verts[v].firstEdge)
	if !ok {
		return 0, false
	}

	return e.other(v), true
}

// NextNeighbor finds the first edge in v's chain whose other endpoint is
// cur and returns the other endpoint of the edge after it.
func (m *AdjacencyMultilist[T, W]) NextNeighbor(v, cur int) (int, bool) {
	if v < 0 || v >= len(m.verts) {
		return 0, false
	}
	for h := m.verts[v].firstEdge; !h.IsNone(); {
		e, ok := m.pool.Get(h)
		if !ok {
			return 0, false
		}
		if e.other(v) == cur {
			next, ok := m.pool.Get(e.linkOf(v))
			if !ok {
				return 0, false
			}

			return next.other(v), true
		}
		h = e.linkOf(v)
	}

	return 0, false
}
