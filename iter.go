package aliasmap

import (
	"iter"
	"slices"
)

// Keys returns an iterator over every registered key, originals and aliases
// alike. The sequence is a snapshot taken when Keys is called: mutations
// after the call do not show up in the iteration. Order is unspecified.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	snapshot := make([]K, 0, len(m.index))
	for k := range m.index {
		snapshot = append(snapshot, k)
	}

	return func(yield func(K) bool) {
		for _, k := range snapshot {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored values, one per slot, in slot
// order. Like Keys it iterates a snapshot taken at call time.
func (m *Map[K, V]) Values() iter.Seq[V] {
	snapshot := slices.Clone(m.values)

	return func(yield func(V) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over key/value pairs. Every registered key is
// yielded once, paired with the value it resolves to, so a shared value
// appears once per alias. Snapshot semantics as with Keys.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	keys := make([]K, 0, len(m.index))
	vals := make([]V, 0, len(m.index))
	for k, slot := range m.index {
		keys = append(keys, k)
		vals = append(vals, m.values[slot])
	}

	return func(yield func(K, V) bool) {
		for i, k := range keys {
			if !yield(k, vals[i]) {
				return
			}
		}
	}
}
