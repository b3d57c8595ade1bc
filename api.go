package stockpile

// Source is a positional view over item data: a guarded column view, the
// arena's handle stream, or a zipped combination of several. Get performs no
// bounds or liveness checking; the store-level helpers (Get, Iter,
// ParallelIter) are the checked, liveness-filtered layer on top.
type Source[V any] interface {
	Get(i int) V
	Len() int
}
