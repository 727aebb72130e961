// Package arena provides a flat slot store with generation-checked handles
// and an explicit free-list.
//
// The linked graph representations (orthogonal list, adjacency multilist)
// keep their edge records in an Arena and thread intrusive chains through
// it by Handle. Freeing a slot bumps its generation, so any handle issued
// before the free is permanently invalidated: a stale link can never
// observe whatever record later reuses the slot. Alloc consults the
// free-list before growing the backing slice, so slot count stays bounded
// by the peak number of live records.
//
// The Arena is not safe for concurrent use; callers own their instances
// exclusively, as with every storage type in this module.
package arena
