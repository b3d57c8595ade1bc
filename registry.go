package stockpile

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/mask"
)

var _ column = &typedColumn[int]{}

// column is the minimal type-erased surface the arena needs to keep every
// registered column dense: grow by one default element and reset one element
// in place. The concrete element type is recovered by type assertion.
type column interface {
	pushDefault()
	resetAt(i int)
	length() int
}

type typedColumn[C any] struct {
	mu   sync.RWMutex
	data []C
}

func (c *typedColumn[C]) pushDefault() {
	if !c.mu.TryLock() {
		panic("stockpile: item created while a component view is held")
	}
	var zero C
	c.data = append(c.data, zero)
	c.mu.Unlock()
}

func (c *typedColumn[C]) resetAt(i int) {
	if !c.mu.TryLock() {
		panic("stockpile: item deleted while a component view is held")
	}
	var zero C
	c.data[i] = zero
	c.mu.Unlock()
}

func (c *typedColumn[C]) length() int {
	return len(c.data)
}

// RegisterComponent creates the column for C, pre-filled with zero values for
// every currently allocated slot (free ones included, so the dense-length
// invariant holds immediately). Idempotent if C is already registered.
func RegisterComponent[C any, I any](s *Store[I]) {
	key := reflect.TypeFor[C]()
	if _, exists := s.columns[key]; exists {
		return
	}
	s.columns[key] = &typedColumn[C]{data: make([]C, len(s.slots))}
	s.registered.Mark(s.rowFor(key))
}

// UnregisterComponent drops the column for C entirely; subsequent access
// fails with UnknownComponentError. An outstanding view keeps the dropped
// column (and its lock) alive until released, so unregistration never
// invalidates data a holder is still reading.
func UnregisterComponent[C any, I any](s *Store[I]) {
	key := reflect.TypeFor[C]()
	if _, exists := s.columns[key]; !exists {
		return
	}
	delete(s.columns, key)
	s.registered.Unmark(s.rows[key])
}

// IsRegistered reports whether a column for C currently exists.
func IsRegistered[C any, I any](s *Store[I]) bool {
	row, assigned := s.rows[reflect.TypeFor[C]()]
	if !assigned {
		return false
	}
	var m mask.Mask
	m.Mark(row)
	return s.registered.ContainsAll(m)
}

// rowFor assigns a stable mask row to each component type on first
// registration. Rows survive unregistration so a re-registered type keeps
// its bit.
func (s *Store[I]) rowFor(key reflect.Type) uint32 {
	row, ok := s.rows[key]
	if !ok {
		row = s.nextRow
		s.rows[key] = row
		s.nextRow++
	}
	return row
}
