// Package traverse defines the two capabilities that make a graph storage
// walkable, and implements breadth-first search on top of them.
//
// What
//
//   - NeighborSource: the minimal enumeration contract (vertex count,
//     first neighbor, next neighbor) any storage type must provide.
//   - VertexVisitor: a per-vertex callback invoked exactly once per vertex
//     in discovery order; VisitorFunc adapts plain functions.
//   - BFS: queue-driven breadth-first search, generic over NeighborSource.
//   - CollectVisitor / PrintVisitor: ready-made visitors for recording the
//     visit order and for writing one line per visit.
//
// Determinism
//
//	BFS enqueues neighbors exactly in the order FirstNeighbor/NextNeighbor
//	produce them, so the visit sequence is fully reproducible for a fixed
//	storage state. An adjacency matrix yields ascending-index order; an
//	adjacency list yields insertion order; the linked representations yield
//	most-recent-first chain order.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) neighbor-enumeration calls
//   - Memory: O(V) for the visited set and queue
//
// Errors
//
//   - ErrNilSource         if the source is nil.
//   - ErrNilVisitor        if the visitor is nil.
//   - ErrStartOutOfRange   if the start index is not a valid vertex.
//
// Vertices unreachable from the start are silently never visited; that is
// a property of the graph, not an error.
package traverse
