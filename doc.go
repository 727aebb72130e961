// Package graphrep is a compact toolbox of graph storage representations,
// unified behind one traversal capability.
//
// What is graphrep?
//
//	A pure-Go library that brings together the classic physical layouts
//	for a graph and lets one algorithm walk all of them:
//		• Dense adjacency matrix — optional weights, ascending-index neighbor order
//		• Adjacency list — insertion-ordered neighbor sequences
//		• Orthogonal list — directed arcs in dual intrusive chains, cheap in/out-degree
//		• Adjacency multilist — one record per undirected edge, threaded into both endpoints
//		• Compressed symmetric matrix — lower-triangular storage, (r,c) ≡ (c,r)
//		• Breadth-first search — generic over any NeighborSource
//
// Why choose graphrep?
//
//   - Minimal API, clear naming, dense zero-based vertex indices
//   - Explicit sentinel errors everywhere — nothing panics on caller input
//   - Arena-backed linked representations with generation-checked handles,
//     so a removed edge can never be reached through a stale link
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under small subpackages:
//
//	adjacency/  — AdjacencyMatrix and AdjacencyList (fixed vertex count)
//	arena/      — generational slot arena shared by the linked layouts
//	orthogonal/ — OrthogonalList for directed graphs
//	multilist/  — AdjacencyMultilist for undirected graphs
//	symmatrix/  — SymmetricMatrix compressed triangular storage
//	traverse/   — NeighborSource, VertexVisitor, BFS and ready-made visitors
//	unionfind/  — disjoint-set structure, union by size + path compression
//
// Quick ASCII example:
//
//	    0 → 1 → 3
//	    ↓   ↓
//	    2 → 4
//
//	BFS from 0 over an AdjacencyMatrix visits 0,1,2,3,4 — always.
//
//	go get github.com/katalvlaran/graphrep
package graphrep
