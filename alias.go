package aliasmap

// InsertAlias points alias at the slot key is bound to, so both resolve to
// the same stored value. It reports the slot's resulting reference count.
// Aliasing a key to itself is rejected, as is aliasing from an absent key;
// both report (0, false).
//
// An alias key that is already registered elsewhere is silently repointed.
// Its former slot is not touched: the keys remaining there keep working, and
// a slot losing its last key this way keeps its value, unreachable, until
// the store is cleared.
func (m *Map[K, V]) InsertAlias(key, alias K) (int, bool) {
	if alias == key {
		return 0, false
	}

	slot, ok := m.index[key]
	if !ok {
		return 0, false
	}

	m.bind(alias, slot)

	return m.slotRefs(slot), true
}

// RemoveAlias detaches key from its slot and reports the reference count
// left among the remaining keys. When that count reaches zero the value is
// removed and the dense storage compacted, and (0, true) is reported. An
// absent key reports (0, false).
func (m *Map[K, V]) RemoveAlias(key K) (int, bool) {
	slot, ok := m.index[key]
	if !ok {
		return 0, false
	}

	m.unbind(key, slot)

	if n := m.slotRefs(slot); n > 0 {
		return n, true
	}

	m.discard(slot)

	return 0, true
}

// Remove destroys the value key resolves to, detaching every key bound to
// its slot regardless of the reference count, and returns the removed value.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	slot, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	value := m.values[slot]
	for _, k := range m.slotKeys(slot) {
		m.unbind(k, slot)
	}
	m.discard(slot)

	return value, true
}

// Aliases returns every key bound to the same slot as key, key itself
// included, in no particular order.
func (m *Map[K, V]) Aliases(key K) ([]K, bool) {
	slot, ok := m.index[key]
	if !ok {
		return nil, false
	}

	return m.slotKeys(slot), true
}

// AreAliases reports whether both keys are registered and resolve to the
// same slot. A registered key is an alias of itself.
func (m *Map[K, V]) AreAliases(a, b K) bool {
	sa, ok := m.index[a]
	if !ok {
		return false
	}

	sb, ok := m.index[b]

	return ok && sa == sb
}

// RefCount reports how many keys currently resolve to the same value as key.
func (m *Map[K, V]) RefCount(key K) (int, bool) {
	slot, ok := m.index[key]
	if !ok {
		return 0, false
	}

	return m.slotRefs(slot), true
}
