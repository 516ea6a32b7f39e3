package aliasmap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// String implements fmt.Stringer. Each value is rendered once, grouped with
// every key that resolves to it: {(key1, alias1) -> value1, (key2) -> value2}.
// Groups appear in slot order; the order of keys inside a group is
// unspecified.
func (m *Map[K, V]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	for slot := range m.values {
		if slot > 0 {
			sb.WriteString(", ")
		}

		sb.WriteByte('(')
		for i, k := range m.slotKeys(slot) {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", k)
		}
		sb.WriteString(") -> ")
		fmt.Fprintf(&sb, "%v", m.values[slot])
	}
	sb.WriteByte('}')

	return sb.String()
}

// aliasGroup is the wire form of one slot: all of its keys and the value
// they share.
type aliasGroup[K comparable, V any] struct {
	Keys  []K `json:"keys"`
	Value V   `json:"value"`
}

// MarshalJSON encodes the store as an array of alias groups in slot order,
// preserving the alias structure rather than flattening to key/value pairs.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	groups := make([]aliasGroup[K, V], len(m.values))
	for slot := range m.values {
		keys := m.slotKeys(slot)
		if keys == nil {
			// An unreachable slot still encodes, with an empty key list.
			keys = []K{}
		}
		groups[slot] = aliasGroup[K, V]{
			Keys:  keys,
			Value: m.values[slot],
		}
	}

	return json.Marshal(groups)
}

// UnmarshalJSON rebuilds the store from MarshalJSON output, replacing the
// current contents. The first key of a group inserts the value, the rest
// join as aliases. A group with no keys occupies a slot without being
// reachable, exactly as it did in the source store.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var groups []aliasGroup[K, V]
	if err := json.Unmarshal(data, &groups); err != nil {
		return err
	}

	m.Clear()
	for _, g := range groups {
		if len(g.Keys) == 0 {
			m.push(g.Value)
			continue
		}

		m.Insert(g.Keys[0], g.Value)
		for _, alias := range g.Keys[1:] {
			m.InsertAlias(g.Keys[0], alias)
		}
	}

	return nil
}
