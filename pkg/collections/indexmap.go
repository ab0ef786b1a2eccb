package collections

import (
	"maps"
	"slices"
)

// IndexMap is an integer-keyed map that also answers reverse lookups: given
// a value, KeyOf returns the smallest key currently holding it. The reverse
// index is maintained on every mutation. Not safe for concurrent use.
type IndexMap[V comparable] struct {
	entries map[int]V
	index   map[V]int
}

// NewIndexMap returns an empty IndexMap.
func NewIndexMap[V comparable]() *IndexMap[V] {
	return &IndexMap[V]{
		entries: make(map[int]V),
		index:   make(map[V]int),
	}
}

// Put stores value under key, returning the previous value for that key if
// one existed.
func (m *IndexMap[V]) Put(key int, value V) (prev V, replaced bool) {
	prev, replaced = m.entries[key]
	if replaced && prev == value {
		return prev, true
	}
	// The entry must be overwritten before the index is repaired, or the
	// replacement scan would still see key holding prev.
	m.entries[key] = value
	if replaced {
		m.dropIndex(key, prev)
	}
	if existing, ok := m.index[value]; !ok || key < existing {
		m.index[value] = key
	}
	return prev, replaced
}

// Get returns the value stored under key.
func (m *IndexMap[V]) Get(key int) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// KeyOf returns the smallest key holding value.
func (m *IndexMap[V]) KeyOf(value V) (int, bool) {
	k, ok := m.index[value]
	return k, ok
}

// Delete removes the entry under key, reporting whether one existed.
func (m *IndexMap[V]) Delete(key int) bool {
	v, ok := m.entries[key]
	if !ok {
		return false
	}
	delete(m.entries, key)
	m.dropIndex(key, v)
	return true
}

// dropIndex repairs the reverse index after value left key. When key was
// the indexed key for value, the next-smallest key holding value (if any)
// takes its place. Linear in the map size for that case.
func (m *IndexMap[V]) dropIndex(key int, value V) {
	if m.index[value] != key {
		return
	}
	delete(m.index, value)
	replacement, found := 0, false
	for k, v := range m.entries {
		if v == value && (!found || k < replacement) {
			replacement, found = k, true
		}
	}
	if found {
		m.index[value] = replacement
	}
}

// Len returns the number of entries.
func (m *IndexMap[V]) Len() int {
	return len(m.entries)
}

// Keys returns the keys in ascending order.
func (m *IndexMap[V]) Keys() []int {
	keys := slices.Collect(maps.Keys(m.entries))
	slices.Sort(keys)
	return keys
}

// Values returns the values in ascending key order.
func (m *IndexMap[V]) Values() []V {
	keys := m.Keys()
	out := make([]V, len(keys))
	for i, k := range keys {
		out[i] = m.entries[k]
	}
	return out
}

// Clear removes all entries.
func (m *IndexMap[V]) Clear() {
	clear(m.entries)
	clear(m.index)
}

// Equal reports whether the two maps hold the same entries.
func (m *IndexMap[V]) Equal(other *IndexMap[V]) bool {
	if m == other {
		return true
	}
	if other == nil {
		return false
	}
	return maps.Equal(m.entries, other.entries)
}
