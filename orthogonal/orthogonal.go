package orthogonal

import (
	"errors"

	"github.com/katalvlaran/graphrep/arena"
)

// Sentinel errors for orthogonal list operations.
var (
	// ErrVertexOutOfRange indicates a vertex index >= VertexCount (or < 0).
	ErrVertexOutOfRange = errors.New("orthogonal: vertex index out of range")

	// ErrEdgeNotFound indicates that GetEdge referenced an absent arc.
	ErrEdgeNotFound = errors.New("orthogonal: edge not found")
)

// arc is one directed edge record. It is threaded into two chains at once:
// tailLink continues the out-chain of the tail vertex, headLink continues
// the in-chain of the head vertex.
type arc[W any] struct {
	tail     int // source vertex index
	head     int // destination vertex index
	weight   W
	tailLink arena.Handle // next arc with the same tail
	headLink arena.Handle // next arc with the same head
}

// vertexNode holds a vertex payload and the heads of its two arc chains.
type vertexNode[T any] struct {
	data     T
	firstOut arena.Handle
	firstIn  arena.Handle
}

// OrthogonalList stores a directed graph as an arena of arcs cross-linked
// per tail and per head vertex. T is the vertex payload type, W the arc
// weight type.
//
// Vertices are created incrementally by AddVertex and never removed; their
// indices are dense and stable for the lifetime of the list.
type OrthogonalList[T, W any] struct {
	verts []vertexNode[T]
	arcs  arena.Arena[arc[W]]
	edges int
}

// NewOrthogonalList creates an empty orthogonal list.
func NewOrthogonalList[T, W any]() *OrthogonalList[T, W] {
	return &OrthogonalList[T, W]{}
}

// AddVertex appends a vertex carrying data, with both chains empty, and
// returns its index.
func (o *OrthogonalList[T, W]) AddVertex(data T) int {
	o.verts = append(o.verts, vertexNode[T]{
		data:     data,
		firstOut: arena.None,
		firstIn:  arena.None,
	})

	return len(o.verts) - 1
}

// VertexCount reports the number of vertices added so far.
func (o *OrthogonalList[T, W]) VertexCount() int { return len(o.verts) }

// EdgeCount reports the number of live arcs.
func (o *OrthogonalList[T, W]) EdgeCount() int { return o.edges }

// VertexData returns the payload of vertex v.
func (o *OrthogonalList[T, W]) VertexData(v int) (T, error) {
	var zero T
	if v < 0 || v >= len(o.verts) {
		return zero, ErrVertexOutOfRange
	}

	return o.verts[v].data, nil
}

// checkPair validates both endpoint indices.
func (o *OrthogonalList[T, W]) checkPair(from, to int) error {
	if from < 0 || from >= len(o.verts) || to < 0 || to >= len(o.verts) {
		return ErrVertexOutOfRange
	}

	return nil
}

// AddEdge allocates the arc from→to and prepends it to from's out-chain
// and to's in-chain. Head insertion keeps AddEdge O(1); chain order is
// therefore reverse insertion order.
func (o *OrthogonalList[T, W]) AddEdge(from, to int, weight W) error {
	if err := o.checkPair(from, to); err != nil {
		return err
	}

	h := o.arcs.Alloc(arc[W]{
		tail:     from,
		head:     to,
		weight:   weight,
		tailLink: o.verts[from].firstOut,
		headLink: o.verts[to].firstIn,
	})
	o.verts[from].firstOut = h
	o.verts[to].firstIn = h
	o.edges++

	return nil
}

// GetEdge walks from's out-chain and returns the weight of the first arc
// whose head is to, or ErrEdgeNotFound when the chain holds none.
func (o *OrthogonalList[T, W]) GetEdge(from, to int) (W, error) {
	var zero W
	if err := o.checkPair(from, to); err != nil {
		return zero, err
	}
	for h := o.verts[from].firstOut; !h.IsNone(); {
		a, ok := o.arcs.Get(h)
		if !ok {
			break // unreachable while chain consistency holds
		}
		if a.head == to {
			return a.weight, nil
		}
		h = a.tailLink
	}

	return zero, ErrEdgeNotFound
}

// HasEdge reports whether at least one arc from→to exists.
func (o *OrthogonalList[T, W]) HasEdge(from, to int) (bool, error) {
	_, err := o.GetEdge(from, to)
	if errors.Is(err, ErrEdgeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// RemoveEdge locates the first arc from→to in from's out-chain and removes
// it: one unit of work that splices the arc out of the out-chain of from
// AND the in-chain of to, then frees its arena slot. Removing an absent
// arc is a no-op.
func (o *OrthogonalList[T, W]) RemoveEdge(from, to int) error {
	if err := o.checkPair(from, to); err != nil {
		return err
	}

	// Locate the target in the out-chain, remembering its predecessor.
	target := arena.None
	outPrev := arena.None
	for h := o.verts[from].firstOut; !h.IsNone(); {
		a, ok := o.arcs.Get(h)
		if !ok {
			break
		}
		if a.head == to {
			target = h
			break
		}
		outPrev = h
		h = a.tailLink
	}
	if target.IsNone() {
		return nil
	}

	ta, _ := o.arcs.Get(target)

	// Splice out of the out-chain: patch the predecessor's tail link, or
	// the vertex head pointer when the target was first.
	if outPrev.IsNone() {
		o.verts[from].firstOut = ta.tailLink
	} else {
		pa, _ := o.arcs.Get(outPrev)
		pa.tailLink = ta.tailLink
	}

	// Splice out of the in-chain with the same predecessor-patch
	// discipline. The arc is identified by handle here, not by endpoints,
	// since parallel arcs may share both.
	inPrev := arena.None
	for h := o.verts[to].firstIn; !h.IsNone(); {
		if h == target {
			break
		}
		a, ok := o.arcs.Get(h)
		if !ok {
			break
		}
		inPrev = h
		h = a.headLink
	}
	if inPrev.IsNone() {
		o.verts[to].firstIn = ta.headLink
	} else {
		pa, _ := o.arcs.Get(inPrev)
		pa.headLink = ta.headLink
	}

	o.arcs.Free(target)
	o.edges--

	return nil
}

// OutDegree counts the arcs leaving v.
func (o *OrthogonalList[T, W]) OutDegree(v int) (int, error) {
	if v < 0 || v >= len(o.verts) {
		return 0, ErrVertexOutOfRange
	}
	n := 0
	for h := o.verts[v].firstOut; !h.IsNone(); {
		a, ok := o.arcs.Get(h)
		if !ok {
			break
		}
		n++
		h = a.tailLink
	}

	return n, nil
}

// InDegree counts the arcs entering v.
func (o *OrthogonalList[T, W]) InDegree(v int) (int, error) {
	if v < 0 || v >= len(o.verts) {
		return 0, ErrVertexOutOfRange
	}
	n := 0
	for h := o.verts[v].firstIn; !h.IsNone(); {
		a, ok := o.arcs.Get(h)
		if !ok {
			break
		}
		n++
		h = a.headLink
	}

	return n, nil
}

// FirstNeighbor returns the head of the first arc in v's out-chain, which
// is the most recently inserted out-edge. An invalid v enumerates as
// "no neighbors".
func (o *OrthogonalList[T, W]) FirstNeighbor(v int) (int, bool) {
	if v < 0 || v >= len(o.verts) {
		return 0, false
	}
	a, ok := o.arcs.Get(o.verts[v].firstOut)
	if !ok {
		return 0, false
	}

	return a.head, true
}

// NextNeighbor finds the first arc in v's out-chain whose head is cur and
// returns the head of the arc after it.
func (o *OrthogonalList[T, W]) NextNeighbor(v, cur int) (int, bool) {
	if v < 0 || v >= len(o.verts) {
		return 0, false
	}
	for h := o.verts[v].firstOut; !h.IsNone(); {
		a, ok := o.arcs.Get(h)
		if !ok {
			return 0, false
		}
		if a.head == cur {
			next, ok := o.arcs.Get(a.tailLink)
			if !ok {
				return 0, false
			}

			return next.head, true
		}
		h = a.tailLink
	}

	return 0, false
}
