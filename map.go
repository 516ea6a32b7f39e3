// Package aliasmap provides an associative container in which any number of
// keys ("aliases") resolve to one shared value while exactly one physical
// copy of that value is kept.
package aliasmap

// Map is a map-like data structure, which lets several keys point to a single
// stored value. Keys resolve through an index table to a slot in a dense
// value array, so adding an alias never copies the value. A value stays alive
// for as long as at least one key points at it: removing the last alias
// removes the value itself, while Remove tears down a value together with
// every key that referenced it.
//
// The zero Map is ready to use. A Map is not safe for concurrent use; callers
// sharing one across goroutines must provide their own locking.
type Map[K comparable, V any] struct {
	// index resolves a key to its slot in values.
	index map[K]int

	// values is the dense storage. Slots are compacted on removal: the last
	// value is swapped into the freed slot and its keys are repointed, so
	// there are never gaps.
	values []V

	// refs mirrors values slot for slot when the reverse index is enabled:
	// refs[i] holds every key bound to slot i.
	refs []keyset[K]

	reverse  bool
	capacity int
}

type Option[K comparable, V any] func(m *Map[K, V])

// Pre-size the index table and the value storage.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(m *Map[K, V]) {
		m.capacity = n
	}
}

// Maintain a reverse slot-to-keys index. Without it, removals repoint
// displaced keys by scanning the whole index table (O of all keys); with it,
// repointing touches only the displaced slot's own keys, at the cost of one
// key set per value kept in sync with the index table.
func WithReverseIndex[K comparable, V any]() Option[K, V] {
	return func(m *Map[K, V]) {
		m.reverse = true
	}
}

// Returns a new instance of the alias map.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

func (m *Map[K, V]) init(opts ...Option[K, V]) {
	for _, opt := range opts {
		opt(m)
	}

	if m.capacity > 0 {
		m.index = make(map[K]int, m.capacity)
		m.values = make([]V, 0, m.capacity)
		if m.reverse {
			m.refs = make([]keyset[K], 0, m.capacity)
		}
	}
}

// Insert stores value under a fresh slot and points key at it. The key is
// always rebound: if it was already present, its former slot is left as it
// was, still holding the old value. That old value remains in the store
// (Len counts it) until some other key removes it, or forever if no other
// key points at it.
func (m *Map[K, V]) Insert(key K, value V) {
	if m.index == nil {
		m.index = make(map[K]int, m.capacity)
	}

	m.bind(key, m.push(value))
}

// Get resolves key to its stored value.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if slot, ok := m.index[key]; ok {
		return m.values[slot], true
	}

	var zero V
	return zero, false
}

// GetPtr resolves key to a pointer into the value storage, for in-place
// mutation. The pointer is valid only until the next structural change
// (Insert, InsertAlias stealing a key, RemoveAlias, Remove, Clear,
// UnmarshalJSON); after that it may point at a different value or released
// memory.
func (m *Map[K, V]) GetPtr(key K) (*V, bool) {
	if slot, ok := m.index[key]; ok {
		return &m.values[slot], true
	}

	return nil, false
}

// Checks whether a key is registered, either as an original or as an alias.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Len reports the number of stored values, not the number of keys.
func (m *Map[K, V]) Len() int {
	return len(m.values)
}

func (m *Map[K, V]) IsEmpty() bool {
	return len(m.values) == 0
}

// Clear removes every key and every value. The configuration (capacity hint,
// reverse index mode) survives, so the map behaves like a freshly constructed
// one afterwards.
func (m *Map[K, V]) Clear() {
	clear(m.index)
	clear(m.values)
	m.values = m.values[:0]
	clear(m.refs)
	m.refs = m.refs[:0]
}
