// Package multilist implements the adjacency multilist, a storage for
// undirected graphs that keeps exactly one record per edge.
//
// A plain adjacency list stores an undirected edge twice (once per
// endpoint), which makes deletion awkward and lets the two copies drift.
// The multilist instead threads the single edge record into two intrusive
// chains, one per endpoint: ilink continues the chain of the first
// endpoint, jlink the chain of the second. Walking a vertex's chain
// follows whichever link belongs to that vertex in each record.
//
// Edge records live in an arena with generation-checked handles; removal
// splices the record out of both endpoints' chains as one unit of work and
// frees the slot. Self-loops are rejected: a loop record would need both
// links for the same vertex.
//
// Insertion prepends at the chain heads (O(1)), so chains enumerate
// most-recent-first.
package multilist
