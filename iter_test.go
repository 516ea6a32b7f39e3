package aliasmap

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_Keys(t *testing.T) {
	eachIndexMode(t, func(t *testing.T, m *Map[string, int]) {
		m.Insert("a", 1)
		m.InsertAlias("a", "b")
		m.Insert("x", 2)

		assert.ElementsMatch(t, []string{"a", "b", "x"}, slices.Collect(m.Keys()))
	})
}

func TestMap_Values(t *testing.T) {
	eachIndexMode(t, func(t *testing.T, m *Map[string, int]) {
		m.Insert("a", 1)
		m.InsertAlias("a", "b")
		m.Insert("x", 2)

		// One element per stored value, in slot order, aliases notwithstanding.
		assert.Equal(t, []int{1, 2}, slices.Collect(m.Values()))
	})
}

func TestMap_All(t *testing.T) {
	eachIndexMode(t, func(t *testing.T, m *Map[string, int]) {
		m.Insert("a", 1)
		m.InsertAlias("a", "b")
		m.Insert("x", 2)

		got := map[string]int{}
		for k, v := range m.All() {
			got[k] = v
		}

		assert.Equal(t, map[string]int{"a": 1, "b": 1, "x": 2}, got)
	})
}

func TestMap_Keys_Snapshot(t *testing.T) {
	eachIndexMode(t, func(t *testing.T, m *Map[string, int]) {
		m.Insert("a", 1)
		m.Insert("b", 2)

		seq := m.Keys()

		// Mutations after the call are invisible to the sequence.
		m.Insert("c", 3)
		m.Remove("a")

		assert.ElementsMatch(t, []string{"a", "b"}, slices.Collect(seq))
	})
}

func TestMap_Keys_EarlyBreak(t *testing.T) {
	eachIndexMode(t, func(t *testing.T, m *Map[string, int]) {
		for i := range 10 {
			m.Insert(strconv.Itoa(i), i)
		}

		n := 0
		for range m.Keys() {
			n++
			if n == 3 {
				break
			}
		}

		assert.Equal(t, 3, n)
	})
}
