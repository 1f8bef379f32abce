package container

import (
	"fmt"
	"iter"
	"strings"
)

type pair[K comparable, V any] struct {
	key   K
	value V
}

// LinearScanMap is an associative store over a slice of key/value
// pairs. Every lookup scans the pairs in insertion order, so each
// operation is O(n). It exists as a baseline next to hash based
// designs such as the LRU cache.
//
// At most one pair is kept per key.
type LinearScanMap[K comparable, V any] struct {
	pairs []pair[K, V]
}

// NewLinearScanMap returns an empty map.
func NewLinearScanMap[K comparable, V any]() *LinearScanMap[K, V] {
	return &LinearScanMap[K, V]{}
}

// Insert overwrites the value of key in place, or appends a new pair
// if key isn't present.
func (m *LinearScanMap[K, V]) Insert(key K, value V) {
	if i := m.index(key); i >= 0 {
		m.pairs[i].value = value
		return
	}
	m.pairs = append(m.pairs, pair[K, V]{key: key, value: value})
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (m *LinearScanMap[K, V]) Get(key K) (V, error) {
	if i := m.index(key); i >= 0 {
		return m.pairs[i].value, nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Contains reports whether key is present.
func (m *LinearScanMap[K, V]) Contains(key K) bool {
	return m.index(key) >= 0
}

// Delete removes key, keeping the order of the remaining pairs.
// It returns false if key wasn't present.
func (m *LinearScanMap[K, V]) Delete(key K) bool {
	i := m.index(key)
	if i < 0 {
		return false
	}
	copy(m.pairs[i:], m.pairs[i+1:])
	m.pairs[len(m.pairs)-1] = pair[K, V]{}
	m.pairs = m.pairs[:len(m.pairs)-1]
	return true
}

// Len returns the number of pairs.
func (m *LinearScanMap[K, V]) Len() int { return len(m.pairs) }

// All walks the pairs in insertion order.
func (m *LinearScanMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// String prints one "key: value" line per pair, in insertion order.
func (m *LinearScanMap[K, V]) String() string {
	var sb strings.Builder
	for k, v := range m.All() {
		fmt.Fprintf(&sb, "%v: %v\n", k, v)
	}
	return sb.String()
}

func (m *LinearScanMap[K, V]) index(key K) int {
	for i := range m.pairs {
		if m.pairs[i].key == key {
			return i
		}
	}
	return -1
}
