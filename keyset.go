package aliasmap

import "maps"

// keyset is the set of keys bound to one slot, used by the reverse index.
type keyset[K comparable] map[K]struct{}

func (s keyset[K]) add(key K) {
	s[key] = struct{}{}
}

func (s keyset[K]) remove(key K) {
	delete(s, key)
}

func (s keyset[K]) has(key K) bool {
	_, ok := s[key]
	return ok
}

// collect returns the members as a slice, in no particular order.
func (s keyset[K]) collect() []K {
	keys := make([]K, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}

	return keys
}

func (s keyset[K]) clone() keyset[K] {
	return maps.Clone(s)
}
