/*
Package stockpile provides a generational item store for games and simulations.

Stockpile allocates and recycles opaque item handles with use-after-free
detection, and holds an open-ended set of per-item component columns. Every
column stays dense and slot-aligned with the arena, so any combination of
columns can be zipped into a single positional iteration — sequential or
data-parallel — without intersecting index sets.

Core Concepts:

  - Handle: a generational (index, generation) reference to an item. A handle
    goes permanently stale when its item is deleted, even if the slot is
    reused.
  - Column: a dense per-component-type array, one entry per arena slot.
  - Guarded view: a non-blocking shared or exclusive lock on one column,
    released at the end of its scope.
  - Source: a positional view (a guarded view, the handle stream, or a zip of
    several) consumed by the iteration helpers.

Basic Usage:

	type worldTag struct{}

	store := stockpile.FactoryNewStore[worldTag]()
	stockpile.RegisterComponent[Position](store)
	stockpile.RegisterComponent[Velocity](store)

	item := store.NewItem()

	positions, _ := stockpile.ComponentsMut[Position](store)
	velocities, _ := stockpile.Components[Velocity](store)

	for h, z := range stockpile.Iter(store, stockpile.Zip2(positions, velocities)) {
		z.V1.X += z.V2.X
		z.V1.Y += z.V2.Y
		_ = h
	}

	velocities.Release()
	positions.Release()

	store.DeleteItem(item)

Acquisition never blocks: a conflicting view makes Components or
ComponentsMut return an error immediately, and the caller decides whether to
defer or retry. Topology mutation (NewItem, DeleteItem, registration) must
only happen while no view is outstanding.
*/
package stockpile
