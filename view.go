package stockpile

import "reflect"

var (
	_ Source[int]  = &Shared[int]{}
	_ Source[*int] = &Exclusive[int]{}
)

// Shared is a read-locked view of one component column. Items are yielded by
// value, so a shared view cannot mutate the column.
type Shared[C any] struct {
	col      *typedColumn[C]
	released bool
}

// Exclusive is a write-locked view of one component column. Items are
// yielded as pointers into the column.
type Exclusive[C any] struct {
	col      *typedColumn[C]
	released bool
}

// Components attempts a non-blocking shared acquisition of C's column.
// Fails with UnknownComponentError if C is not registered, or
// NoReadAccessError if an exclusive view is outstanding. Never blocks.
func Components[C any, I any](s *Store[I]) (*Shared[C], error) {
	col, err := columnFor[C](s)
	if err != nil {
		return nil, err
	}
	if !col.mu.TryRLock() {
		return nil, NoReadAccessError{Type: reflect.TypeFor[C]()}
	}
	return &Shared[C]{col: col}, nil
}

// ComponentsMut attempts a non-blocking exclusive acquisition of C's column.
// Fails with UnknownComponentError if C is not registered, or
// NoWriteAccessError if any other view (shared or exclusive) is outstanding.
// Never blocks.
func ComponentsMut[C any, I any](s *Store[I]) (*Exclusive[C], error) {
	col, err := columnFor[C](s)
	if err != nil {
		return nil, err
	}
	if !col.mu.TryLock() {
		return nil, NoWriteAccessError{Type: reflect.TypeFor[C]()}
	}
	return &Exclusive[C]{col: col}, nil
}

func columnFor[C any, I any](s *Store[I]) (*typedColumn[C], error) {
	raw, ok := s.columns[reflect.TypeFor[C]()]
	if !ok {
		return nil, UnknownComponentError{Type: reflect.TypeFor[C]()}
	}
	return raw.(*typedColumn[C]), nil
}

// Get returns the element at slot index i. No bounds or liveness checking.
func (v *Shared[C]) Get(i int) C {
	return v.col.data[i]
}

// Len returns the column length, which always equals the arena's slot count.
func (v *Shared[C]) Len() int {
	return len(v.col.data)
}

// Release drops the read lock. Idempotent; must be called when the view's
// scope ends.
func (v *Shared[C]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.col.mu.RUnlock()
}

// Get returns a pointer to the element at slot index i. No bounds or
// liveness checking.
func (v *Exclusive[C]) Get(i int) *C {
	return &v.col.data[i]
}

// Len returns the column length, which always equals the arena's slot count.
func (v *Exclusive[C]) Len() int {
	return len(v.col.data)
}

// Release drops the write lock. Idempotent; must be called when the view's
// scope ends. Pointers obtained from the view must not outlive it.
func (v *Exclusive[C]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.col.mu.Unlock()
}
