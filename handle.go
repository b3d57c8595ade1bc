package stockpile

// Handle is an opaque reference to an item in a Store. The tag type I binds
// handles to the store flavor that issued them, so handles from differently
// tagged stores cannot be mixed up at compile time.
//
// Handles are produced only by Store.NewItem and become permanently stale the
// moment their item is deleted, even if the underlying slot is later reused
// under a new generation. The zero Handle is never valid.
type Handle[I any] struct {
	idx uint32
	gen uint32
}

// Index returns the arena slot index the handle refers to.
func (h Handle[I]) Index() uint32 {
	return h.idx
}

// Generation returns the generation the handle was issued with.
func (h Handle[I]) Generation() uint32 {
	return h.gen
}
