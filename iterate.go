package stockpile

import "iter"

// Get returns src's item at h's slot, or ok=false if h is invalid. Reading
// through a stale handle is a normal control-flow outcome, not an error.
func Get[V any, I any](s *Store[I], src Source[V], h Handle[I]) (V, bool) {
	if !s.IsValid(h) {
		var zero V
		return zero, false
	}
	return src.Get(int(h.idx)), true
}

// Iter walks every live slot in ascending index order, pairing each item
// with a handle carrying the slot's current generation. Freed slots are
// skipped.
func Iter[V any, I any](s *Store[I], src Source[V]) iter.Seq2[Handle[I], V] {
	return func(yield func(Handle[I], V) bool) {
		n := min(len(s.slots), src.Len())
		for i := 0; i < n; i++ {
			sl := s.slots[i]
			if sl.free {
				continue
			}
			if !yield(Handle[I]{idx: uint32(i), gen: sl.gen}, src.Get(i)) {
				return
			}
		}
	}
}

// ParallelIter is the data-parallel Iter: fn runs once per live slot across
// a worker pool. Visitation order is unspecified; fn must be safe to call
// concurrently. The call returns after every worker finishes.
func ParallelIter[V any, I any](s *Store[I], src Source[V], fn func(Handle[I], V)) {
	n := min(len(s.slots), src.Len())
	parallelRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sl := s.slots[i]
			if sl.free {
				continue
			}
			fn(Handle[I]{idx: uint32(i), gen: sl.gen}, src.Get(i))
		}
	})
}

// All iterates every positional slot of src in ascending order, free slots
// included.
func All[V any](src Source[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < src.Len(); i++ {
			if !yield(src.Get(i)) {
				return
			}
		}
	}
}

// ParallelAll is the data-parallel All, yielding each positional index
// exactly once in unspecified order.
func ParallelAll[V any](src Source[V], fn func(i int, v V)) {
	parallelRange(src.Len(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i, src.Get(i))
		}
	})
}
