package adjacency

import "errors"

// Sentinel errors shared by both storages in this package. Callers match
// them with errors.Is; none of them is ever raised as a panic.
var (
	// ErrVertexOutOfRange indicates a vertex index >= VertexCount (or < 0).
	ErrVertexOutOfRange = errors.New("adjacency: vertex index out of range")

	// ErrEdgeNotFound indicates that GetEdge referenced an absent edge.
	ErrEdgeNotFound = errors.New("adjacency: edge not found")

	// ErrNoVertexData indicates that the vertex exists but carries no data.
	ErrNoVertexData = errors.New("adjacency: vertex has no data")
)
