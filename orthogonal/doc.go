// Package orthogonal implements the orthogonal (cross-linked) list, a
// storage for directed graphs that keeps every arc reachable from both of
// its endpoints.
//
// Each vertex heads two intrusive chains: one over the arcs leaving it
// (out-chain, threaded by tail link) and one over the arcs entering it
// (in-chain, threaded by head link). A single arc record therefore lives
// in exactly one out-chain and one in-chain, which makes both out-degree
// and in-degree cheap to answer — the property a plain adjacency list
// cannot offer for directed graphs.
//
// Arcs are stored in an arena with generation-checked handles; removing an
// arc splices it out of both chains as one unit of work and frees its
// slot, so no chain ever reaches a deleted record.
//
// Insertion prepends at the chain heads (O(1)), so chains enumerate
// most-recent-first.
package orthogonal
