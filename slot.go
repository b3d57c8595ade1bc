package stockpile

// slot is one arena cell. gen is never zero once the slot has been allocated.
// When free is set, nextFree threads the LIFO free list; the list terminates
// at the arena boundary (len(slots)).
type slot struct {
	gen      uint32
	nextFree uint32
	free     bool
}

// nextGen bumps a generation counter, wrapping and skipping zero. The second
// result reports whether a wrap happened.
func nextGen(gen uint32) (uint32, bool) {
	gen++
	if gen == 0 {
		return 1, true
	}
	return gen, false
}
