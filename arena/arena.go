package arena

// Handle addresses one slot of an Arena. It pairs the slot index with the
// generation observed at allocation time; the Arena rejects a Handle whose
// generation no longer matches the slot, which is how use-after-free is
// detected. The zero Handle is not valid; use None for "no slot".
type Handle struct {
	index int
	gen   uint32
}

// None is the null Handle, used as the chain terminator by callers.
var None = Handle{index: -1}

// IsNone reports whether h is the null Handle.
func (h Handle) IsNone() bool { return h.index < 0 }

// slot is one storage cell: a value plus liveness bookkeeping.
type slot[T any] struct {
	value T
	gen   uint32
	live  bool
	next  int // next free slot index when dead, -1 for none
}

// Arena is a growable pool of slots of T. Freed slots are recycled in LIFO
// order through an internal free-list.
//
// The zero value is an empty, ready-to-use Arena.
type Arena[T any] struct {
	slots    []slot[T]
	freeHead int // index of first free slot, -1 when the list is empty
	live     int
	zeroInit bool // freeHead sentinel installed
}

// init installs the free-list sentinel on first use.
func (a *Arena[T]) init() {
	if !a.zeroInit {
		a.freeHead = -1
		a.zeroInit = true
	}
}

// Len reports the number of live slots.
func (a *Arena[T]) Len() int { return a.live }

// Cap reports the total slot count, live and free.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Alloc stores value in a slot and returns its Handle. A slot from the
// free-list is reused when available; otherwise the arena grows by one.
// Complexity: O(1) amortized.
func (a *Arena[T]) Alloc(value T) Handle {
	a.init()
	if a.freeHead >= 0 {
		idx := a.freeHead
		s := &a.slots[idx]
		a.freeHead = s.next
		s.value = value
		s.live = true
		s.next = -1
		a.live++

		return Handle{index: idx, gen: s.gen}
	}

	a.slots = append(a.slots, slot[T]{value: value, live: true, next: -1})
	a.live++

	return Handle{index: len(a.slots) - 1, gen: 0}
}

// Get returns a pointer to the value addressed by h, or ok == false when h
// is None, stale (generation mismatch) or refers to a freed slot. The
// pointer stays valid until the next Alloc, which may grow the backing
// slice.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h.index < 0 || h.index >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}

	return &s.value, true
}

// Free releases the slot addressed by h, pushing it onto the free-list and
// bumping its generation so outstanding handles to it become stale.
// Freeing None, a stale handle, or an already freed slot reports false.
func (a *Arena[T]) Free(h Handle) bool {
	if h.index < 0 || h.index >= len(a.slots) {
		return false
	}
	a.init()
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return false
	}
	var zero T
	s.value = zero // drop references so the GC can reclaim payloads
	s.live = false
	s.gen++
	s.next = a.freeHead
	a.freeHead = h.index
	a.live--

	return true
}
