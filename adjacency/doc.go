// Package adjacency provides the two dense-index graph storages with a
// vertex count fixed at construction: AdjacencyMatrix and AdjacencyList.
//
// Both are generic over the vertex payload type T and the edge weight
// type W, both keep an exact edge counter, and both satisfy
// traverse.NeighborSource — but they enumerate neighbors differently:
//
//   - AdjacencyMatrix scans matrix columns, so neighbors come back in
//     strictly ascending index order.
//   - AdjacencyList returns its per-vertex sequence as stored, so
//     neighbors come back in insertion order.
//
// Traversals inherit whichever order the chosen storage defines.
//
// Neither storage admits duplicate (from,to) edges: re-adding an existing
// edge updates the stored weight and leaves the edge counter untouched.
//
// All operations are synchronous and unsynchronized; an instance must not
// be mutated concurrently.
package adjacency
