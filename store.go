package stockpile

import (
	"iter"
	"math"
	"reflect"

	"github.com/TheBitDrifter/mask"
	"go.uber.org/zap"
)

// Store owns the slot arena and the registered component columns. Item
// creation and deletion are O(1); every registered column is kept exactly as
// long as the slot array at all times.
//
// The store itself is synchronous. Per-column aliasing is enforced by the
// guarded views; topology mutation (NewItem, DeleteItem, Flush, component
// registration) must only run while no view is outstanding.
type Store[I any] struct {
	slots        []slot
	nextFreeHead uint32
	count        uint32

	columns    map[reflect.Type]column
	rows       map[reflect.Type]uint32
	nextRow    uint32
	registered mask.Mask

	pendingDeletes []Handle[I]
}

func newStore[I any]() *Store[I] {
	return &Store[I]{
		columns: make(map[reflect.Type]column),
		rows:    make(map[reflect.Type]uint32),
	}
}

// Count returns the number of live items.
func (s *Store[I]) Count() int {
	return int(s.count)
}

// NewItem allocates an item and returns its handle. A previously freed slot
// is reused (LIFO) under a bumped generation; otherwise the arena grows by
// one slot and every registered column grows with it.
//
// Panics if the live item count would exceed the representable range.
func (s *Store[I]) NewItem() Handle[I] {
	if s.count >= math.MaxUint32-1 {
		panic("stockpile: too many items")
	}

	if s.nextFreeHead == uint32(len(s.slots)) {
		s.slots = append(s.slots, slot{gen: 1})
		s.count++
		s.nextFreeHead++
		for _, col := range s.columns {
			col.pushDefault()
		}
		return Handle[I]{idx: s.nextFreeHead - 1, gen: 1}
	}

	sl := &s.slots[s.nextFreeHead]
	gen, wrapped := nextGen(sl.gen)
	if wrapped {
		Config.logger.Warn("generation overflow", zap.Uint32("idx", s.nextFreeHead))
	}
	sl.gen = gen

	h := Handle[I]{idx: s.nextFreeHead, gen: gen}
	s.nextFreeHead = sl.nextFree
	s.count++
	sl.free = false
	return h
}

// DeleteItem frees h's slot and resets its entry in every registered column
// to the zero value. Deleting an invalid handle (unknown index, already-free
// slot, or stale generation) is a defined no-op returning false, so callers
// may despawn speculatively.
func (s *Store[I]) DeleteItem(h Handle[I]) bool {
	if int(h.idx) >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.idx]
	if sl.free || sl.gen != h.gen {
		return false
	}

	sl.free = true
	sl.nextFree = s.nextFreeHead
	s.nextFreeHead = h.idx
	s.count--

	for _, col := range s.columns {
		col.resetAt(int(h.idx))
	}
	return true
}

// IsValid reports whether h still refers to a live item.
func (s *Store[I]) IsValid(h Handle[I]) bool {
	if int(h.idx) >= len(s.slots) {
		return false
	}
	sl := s.slots[h.idx]
	return !sl.free && sl.gen == h.gen
}

// QueueDeleteItem defers deletion of h until the next Flush. Useful for
// despawning from inside an iteration pass, where direct deletion would
// violate the no-topology-mutation-while-viewing contract.
func (s *Store[I]) QueueDeleteItem(h Handle[I]) {
	s.pendingDeletes = append(s.pendingDeletes, h)
}

// Flush deletes every queued handle and returns how many were still live.
// Queued handles that went stale in the meantime are skipped.
func (s *Store[I]) Flush() int {
	deleted := 0
	for _, h := range s.pendingDeletes {
		if s.DeleteItem(h) {
			deleted++
		}
	}
	s.pendingDeletes = s.pendingDeletes[:0]
	return deleted
}

// IDs yields a handle for every live slot in ascending index order.
func (s *Store[I]) IDs() iter.Seq[Handle[I]] {
	return func(yield func(Handle[I]) bool) {
		for i, sl := range s.slots {
			if sl.free {
				continue
			}
			if !yield(Handle[I]{idx: uint32(i), gen: sl.gen}) {
				return
			}
		}
	}
}

// ParallelIDs calls fn once for every live slot. Visitation order across
// workers is unspecified; fn must be safe to call concurrently.
func (s *Store[I]) ParallelIDs(fn func(Handle[I])) {
	parallelRange(len(s.slots), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sl := s.slots[i]
			if sl.free {
				continue
			}
			fn(Handle[I]{idx: uint32(i), gen: sl.gen})
		}
	})
}

// Handles exposes the arena's id stream as a zippable source. Positional,
// liveness-unaware; pair it with guarded views through Zip2..Zip8 and the
// store-level iteration helpers.
func (s *Store[I]) Handles() Source[Handle[I]] {
	return handleSource[I]{s: s}
}

type handleSource[I any] struct {
	s *Store[I]
}

func (hs handleSource[I]) Get(i int) Handle[I] {
	sl := hs.s.slots[i]
	return Handle[I]{idx: uint32(i), gen: sl.gen}
}

func (hs handleSource[I]) Len() int {
	return len(hs.s.slots)
}
