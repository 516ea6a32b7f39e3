package aliasmap

// Stats is a point-in-time summary of the store shape.
type Stats struct {
	Values int // stored values (slots)
	Keys   int // registered keys, aliases included
	Shared int // values reachable through more than one key
}

// Stats computes a summary of the store shape. Costs one pass over the
// index table.
func (m *Map[K, V]) Stats() Stats {
	st := Stats{
		Values: len(m.values),
		Keys:   len(m.index),
	}

	counts := make([]int, len(m.values))
	for _, slot := range m.index {
		counts[slot]++
	}
	for _, n := range counts {
		if n > 1 {
			st.Shared++
		}
	}

	return st
}
