package stockpile

// FactoryNewStore returns an empty store: no items, no columns registered.
// The tag type I distinguishes this store's handles from any other store's.
func FactoryNewStore[I any]() *Store[I] {
	return newStore[I]()
}

// FactoryNewSlotMap returns an empty slot map.
func FactoryNewSlotMap[T any]() *SlotMap[T] {
	return &SlotMap[T]{}
}
