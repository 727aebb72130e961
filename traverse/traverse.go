package traverse

import (
	"fmt"
	"io"
)

// NeighborSource is the minimal capability a graph storage type must expose
// to be traversable. Vertices are dense zero-based indices in
// [0, VertexCount()).
//
// FirstNeighbor and NextNeighbor return ok == false when there is no
// (further) neighbor. The enumeration order is defined by the storage
// layout and must be stable for a fixed storage state.
type NeighborSource interface {
	// VertexCount reports the number of vertices in the storage.
	VertexCount() int

	// FirstNeighbor returns the first neighbor of v in storage order.
	FirstNeighbor(v int) (neighbor int, ok bool)

	// NextNeighbor returns the neighbor of v that follows cur in storage
	// order. If cur is the last neighbor, or is not a neighbor of v at
	// all, ok is false.
	NextNeighbor(v, cur int) (neighbor int, ok bool)
}

// VertexVisitor receives vertices in the order a traversal discovers them.
// Visit is called exactly once per reachable vertex.
type VertexVisitor interface {
	Visit(v int)
}

// VisitorFunc adapts a plain function to the VertexVisitor interface.
type VisitorFunc func(v int)

// Visit calls fn(v).
func (fn VisitorFunc) Visit(v int) { fn(v) }

// CollectVisitor records the visit sequence into Order.
// The zero value is ready to use.
type CollectVisitor struct {
	// Order holds visited vertex indices in discovery order.
	Order []int
}

// Visit appends v to Order.
func (c *CollectVisitor) Visit(v int) { c.Order = append(c.Order, v) }

// PrintVisitor writes one line per visited vertex to Out.
type PrintVisitor struct {
	// Out receives the per-visit lines.
	Out io.Writer
}

// Visit writes "visit vertex <v>" to Out. Write errors are ignored;
// a visitor has no error channel by contract.
func (p *PrintVisitor) Visit(v int) {
	fmt.Fprintf(p.Out, "visit vertex %d\n", v)
}
