package stockpile

import (
	"iter"
	"math"

	"go.uber.org/zap"
)

// SlotMap is a versioned arena map: Insert returns a Key that goes stale
// when the entry is removed, even if the underlying slot is reused. It
// shares the store's free-list scheme but owns its values directly, with no
// column registry, making it the right container for standalone keyed state.
type SlotMap[T any] struct {
	slots        []mapSlot[T]
	nextFreeHead uint32
	count        uint32
}

// Key addresses one SlotMap entry. The zero Key is never valid.
type Key struct {
	index   uint32
	version uint32
}

// Index returns the slot index the key refers to.
func (k Key) Index() uint32 {
	return k.index
}

// Version returns the version the key was issued with.
func (k Key) Version() uint32 {
	return k.version
}

type mapSlot[T any] struct {
	val      T
	version  uint32
	nextFree uint32
	free     bool
}

// Count returns the number of occupied slots.
func (m *SlotMap[T]) Count() int {
	return int(m.count)
}

// Insert stores val and returns its key. Panics if the occupied count would
// exceed the representable range.
func (m *SlotMap[T]) Insert(val T) Key {
	if m.count >= math.MaxUint32-1 {
		panic("stockpile: too many slot map items")
	}

	if m.nextFreeHead == uint32(len(m.slots)) {
		m.slots = append(m.slots, mapSlot[T]{val: val, version: 1})
		m.count++
		m.nextFreeHead++
		return Key{index: m.nextFreeHead - 1, version: 1}
	}

	sl := &m.slots[m.nextFreeHead]
	version, wrapped := nextGen(sl.version)
	if wrapped {
		Config.logger.Debug("slot map version overflow", zap.Uint32("idx", m.nextFreeHead))
	}
	sl.version = version

	key := Key{index: m.nextFreeHead, version: version}
	m.nextFreeHead = sl.nextFree
	m.count++
	sl.val = val
	sl.free = false
	return key
}

// Remove deletes and returns the entry for key, or ok=false if the key is
// stale.
func (m *SlotMap[T]) Remove(key Key) (T, bool) {
	var zero T
	if int(key.index) >= len(m.slots) {
		return zero, false
	}
	sl := &m.slots[key.index]
	if sl.free || sl.version != key.version {
		return zero, false
	}

	val := sl.val
	sl.val = zero
	sl.free = true
	sl.nextFree = m.nextFreeHead
	m.nextFreeHead = key.index
	m.count--
	return val, true
}

// Get returns a pointer to the entry for key, or ok=false if the key is
// stale.
func (m *SlotMap[T]) Get(key Key) (*T, bool) {
	if int(key.index) >= len(m.slots) {
		return nil, false
	}
	sl := &m.slots[key.index]
	if sl.free || sl.version != key.version {
		return nil, false
	}
	return &sl.val, true
}

// KeyAtIndex rebuilds the key currently stored at a slot index. The key is
// valid only if the slot is occupied.
func (m *SlotMap[T]) KeyAtIndex(i int) (Key, bool) {
	if i < 0 || i >= len(m.slots) {
		return Key{}, false
	}
	return Key{index: uint32(i), version: m.slots[i].version}, true
}

// Clear removes every entry and resets the free list.
func (m *SlotMap[T]) Clear() {
	m.slots = m.slots[:0]
	m.nextFreeHead = 0
	m.count = 0
}

// Retain removes every entry for which f returns false. f may mutate the
// entries it keeps.
func (m *SlotMap[T]) Retain(f func(Key, *T) bool) {
	for i := range m.slots {
		sl := &m.slots[i]
		if sl.free {
			continue
		}
		key := Key{index: uint32(i), version: sl.version}
		if f(key, &sl.val) {
			continue
		}
		var zero T
		sl.val = zero
		sl.free = true
		sl.nextFree = m.nextFreeHead
		m.nextFreeHead = key.index
		m.count--
	}
}

// Iter yields every occupied entry in ascending index order.
func (m *SlotMap[T]) Iter() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		for i := range m.slots {
			sl := &m.slots[i]
			if sl.free {
				continue
			}
			if !yield(Key{index: uint32(i), version: sl.version}, &sl.val) {
				return
			}
		}
	}
}

// ParallelIter calls fn once per occupied entry across a worker pool.
// Visitation order is unspecified; fn must be safe to call concurrently.
func (m *SlotMap[T]) ParallelIter(fn func(Key, *T)) {
	parallelRange(len(m.slots), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sl := &m.slots[i]
			if sl.free {
				continue
			}
			fn(Key{index: uint32(i), version: sl.version}, &sl.val)
		}
	})
}
