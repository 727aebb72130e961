// Package unionfind provides a disjoint-set (union-find) structure over
// dense zero-based element indices.
//
// The structure answers "are x and y in the same set" in near-constant
// amortized time, using union by size and path compression. Elements are
// fixed at construction; sets only ever merge.
//
// It is self-contained: nothing in the graph storages depends on it, and
// it holds no reference to any graph type.
package unionfind
