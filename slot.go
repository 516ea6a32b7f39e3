package aliasmap

// Slot bookkeeping behind the public operations. A slot is an index into the
// dense value array; the index table and, in reverse mode, the per-slot key
// sets are the only places slots are recorded. Every helper here keeps those
// two structures in agreement.

// push appends value to the dense storage and returns its slot.
func (m *Map[K, V]) push(value V) int {
	slot := len(m.values)
	m.values = append(m.values, value)
	if m.reverse {
		m.refs = append(m.refs, keyset[K]{})
	}

	return slot
}

// bind points key at slot. A key bound to some other slot before is simply
// repointed; the former slot keeps its value even when no key is left on it.
func (m *Map[K, V]) bind(key K, slot int) {
	if m.reverse {
		if prev, ok := m.index[key]; ok {
			m.refs[prev].remove(key)
		}
		m.refs[slot].add(key)
	}

	m.index[key] = slot
}

// unbind detaches key from slot. The slot itself is untouched; callers decide
// whether it still has keys and needs discarding.
func (m *Map[K, V]) unbind(key K, slot int) {
	delete(m.index, key)
	if m.reverse {
		m.refs[slot].remove(key)
	}
}

// slotRefs counts the keys currently bound to slot. The count is always
// derived, never stored, so it cannot drift from the index table.
func (m *Map[K, V]) slotRefs(slot int) int {
	if m.reverse {
		return len(m.refs[slot])
	}

	n := 0
	for _, s := range m.index {
		if s == slot {
			n++
		}
	}

	return n
}

// slotKeys collects every key bound to slot, in no particular order.
func (m *Map[K, V]) slotKeys(slot int) []K {
	if m.reverse {
		return m.refs[slot].collect()
	}

	var keys []K
	for k, s := range m.index {
		if s == slot {
			keys = append(keys, k)
		}
	}

	return keys
}

// discard frees slot, which must have no keys bound to it anymore. The last
// value is swapped into the freed position, every key of the former last slot
// is repointed at it, and the dense storage shrinks by one. The vacated tail
// element is zeroed so the backing array drops its reference.
func (m *Map[K, V]) discard(slot int) {
	last := len(m.values) - 1
	if slot != last {
		m.values[slot] = m.values[last]
		if m.reverse {
			m.refs[slot] = m.refs[last]
			for k := range m.refs[slot] {
				m.index[k] = slot
			}
		} else {
			for k, s := range m.index {
				if s == last {
					m.index[k] = slot
				}
			}
		}
	}

	var zero V
	m.values[last] = zero
	m.values = m.values[:last]
	if m.reverse {
		m.refs[last] = nil
		m.refs = m.refs[:last]
	}
}
