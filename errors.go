package stockpile

import (
	"fmt"
	"reflect"
)

// UnknownComponentError reports a request for a component type that was
// never registered, or was unregistered.
type UnknownComponentError struct {
	Type reflect.Type
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component type requested: %v", e.Type)
}

// NoReadAccessError reports a shared acquisition that failed because an
// exclusive view of the same column is outstanding.
type NoReadAccessError struct {
	Type reflect.Type
}

func (e NoReadAccessError) Error() string {
	return fmt.Sprintf("shared access to %v requested while exclusive access was held", e.Type)
}

// NoWriteAccessError reports an exclusive acquisition that failed because
// another view (shared or exclusive) of the same column is outstanding.
type NoWriteAccessError struct {
	Type reflect.Type
}

func (e NoWriteAccessError) Error() string {
	return fmt.Sprintf("exclusive access to %v requested while shared or exclusive access was held", e.Type)
}
