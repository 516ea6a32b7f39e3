package aliasmap

import (
	"maps"
	"slices"
)

// Equal reports whether a and b store the same number of values and every
// key of a resolves in b to an equal value.
//
// Note the one-sided key check: keys of b are never iterated. Two stores
// with equal value counts where a's keys are a strict subset of b's compare
// equal from a's side and unequal from b's. Callers needing strict
// isomorphism should compare in both directions.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(v1, v2 V) bool { return v1 == v2 })
}

// EqualFunc is like Equal but compares values with eq, allowing the two
// stores to hold different value types.
func EqualFunc[K comparable, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	for key, slot := range a.index {
		other, ok := b.index[key]
		if !ok || !eq(a.values[slot], b.values[other]) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy: a new index table, a new dense array
// and, in reverse mode, new key sets. Values are copied by ordinary
// assignment, so value types containing pointers share pointees with the
// original.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{
		index:    maps.Clone(m.index),
		values:   slices.Clone(m.values),
		reverse:  m.reverse,
		capacity: m.capacity,
	}

	if m.reverse {
		out.refs = make([]keyset[K], len(m.refs))
		for i, set := range m.refs {
			out.refs[i] = set.clone()
		}
	}

	return out
}
