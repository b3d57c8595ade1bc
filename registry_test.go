package stockpile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireDense asserts every registered column is exactly as long as the
// slot array.
func requireDense[I any](t *testing.T, s *Store[I]) {
	t.Helper()
	for typ, col := range s.columns {
		require.Equal(t, len(s.slots), col.length(), "column %v out of sync with arena", typ)
	}
}

func TestRegisterComponentIdempotent(t *testing.T) {
	s := FactoryNewStore[testTag]()
	RegisterComponent[Health](s)
	require.True(t, IsRegistered[Health](s))

	h := s.NewItem()
	healths, err := ComponentsMut[Health](s)
	require.NoError(t, err)
	ptr, ok := Get(s, healths, h)
	require.True(t, ok)
	ptr.Value = 42
	healths.Release()

	// Re-registering must not replace the existing column.
	RegisterComponent[Health](s)

	shared, err := Components[Health](s)
	require.NoError(t, err)
	got, ok := Get(s, shared, h)
	require.True(t, ok)
	require.Equal(t, 42, got.Value)
	shared.Release()
}

func TestRegisterAfterGrowth(t *testing.T) {
	s := FactoryNewStore[testTag]()

	h0 := s.NewItem()
	h1 := s.NewItem()
	require.True(t, s.DeleteItem(h0))

	// The new column covers every allocated slot, freed ones included.
	RegisterComponent[Position](s)
	requireDense(t, s)

	positions, err := Components[Position](s)
	require.NoError(t, err)
	require.Equal(t, 2, positions.Len())
	got, ok := Get(s, positions, h1)
	require.True(t, ok)
	require.Equal(t, Position{}, got)
	positions.Release()
}

func TestUnregisterComponent(t *testing.T) {
	s := FactoryNewStore[testTag]()
	RegisterComponent[Health](s)

	h := s.NewItem()
	healths, err := ComponentsMut[Health](s)
	require.NoError(t, err)
	healths.Get(int(h.Index())).Value = 7
	healths.Release()

	UnregisterComponent[Health](s)
	require.False(t, IsRegistered[Health](s))

	_, err = Components[Health](s)
	require.ErrorAs(t, err, &UnknownComponentError{})

	// Re-registration starts from a fresh zeroed column.
	RegisterComponent[Health](s)
	shared, err := Components[Health](s)
	require.NoError(t, err)
	got, ok := Get(s, shared, h)
	require.True(t, ok)
	require.Equal(t, 0, got.Value)
	shared.Release()
}

func TestUnregisterUnknownIsNoOp(t *testing.T) {
	s := FactoryNewStore[testTag]()
	UnregisterComponent[Velocity](s)
	require.False(t, IsRegistered[Velocity](s))
}

func TestDenseLengthInvariant(t *testing.T) {
	s := FactoryNewStore[testTag]()
	RegisterComponent[Position](s)

	var handles []Handle[testTag]
	for i := 0; i < 8; i++ {
		handles = append(handles, s.NewItem())
		requireDense(t, s)
	}

	RegisterComponent[Velocity](s)
	RegisterComponent[Health](s)
	requireDense(t, s)

	for _, h := range handles[:4] {
		require.True(t, s.DeleteItem(h))
		requireDense(t, s)
	}

	// Deletion resets entries but never shrinks columns.
	for i := 0; i < 6; i++ {
		s.NewItem()
		requireDense(t, s)
	}

	UnregisterComponent[Velocity](s)
	s.NewItem()
	requireDense(t, s)
}

func TestDeleteResetsColumnEntry(t *testing.T) {
	s := FactoryNewStore[testTag]()
	RegisterComponent[Health](s)

	h := s.NewItem()
	healths, err := ComponentsMut[Health](s)
	require.NoError(t, err)
	healths.Get(int(h.Index())).Value = 99
	healths.Release()

	require.True(t, s.DeleteItem(h))
	reused := s.NewItem()
	require.Equal(t, h.Index(), reused.Index())

	shared, err := Components[Health](s)
	require.NoError(t, err)
	got, ok := Get(s, shared, reused)
	require.True(t, ok)
	require.Equal(t, 0, got.Value, "reused slot must start from the zero value")
	shared.Release()
}
