package orderedmap

import (
	"iter"
)

// Map is a map that remembers the order in which keys were first
// inserted. Setting an existing key replaces the value but keeps the
// key in its original position.
type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.keys[key]; !exists {
		m.entries = append(m.entries, key)
	}
	m.keys[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.keys[key]
	return ok
}

// Delete removes the key. It reports whether the key was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.keys[key]; !ok {
		return false
	}
	delete(m.keys, key)
	for i, k := range m.entries {
		if k == key {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	dst := make([]K, len(m.entries))
	copy(dst, m.entries)
	return dst
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
