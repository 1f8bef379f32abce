package cache

import (
	"sync"

	"github.com/SystemBuilders/Containers/internal/container"
	"github.com/rs/zerolog"
)

var _ Cache[string, int] = (*LRUCache[string, int])(nil)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache implements a cache. It uses a linked list as
// the primary data structure along with a hash-map for
// checking existance of an element in the cache.
//
// The head of the linked list is always the most recently used
// element in the cache and the tail is the least recently used one:
// * At every insertion, the new element becomes the head.
// * After every access, the element is moved to the head.
// * When the cache is full, the tail is evicted to make space.
//
// The hash map gives O(1) lookups of the list node of a key, where
// container.LinearScanMap would scan every pair.
type LRUCache[K comparable, V any] struct {
	capacity int
	log      zerolog.Logger
	m        map[K]*container.DoubleNode[entry[K, V]]
	dll      *container.LinkedList[entry[K, V]]
	mu       sync.Mutex
}

// NewLRUCache creates a new LRUCache of provided size.
func NewLRUCache[K comparable, V any](capacity int, log zerolog.Logger) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		log:      log,
		m:        make(map[K]*container.DoubleNode[entry[K, V]], capacity),
		dll:      container.NewLinkedList[entry[K, V]](),
	}, nil
}

// Get returns the value stored for key and bumps the key to the
// MRU position.
//
// Error is returned only if the key doesn't exist in the cache.
func (lru *LRUCache[K, V]) Get(key K) (V, error) {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	node, ok := lru.m[key]
	if !ok {
		var zero V
		return zero, ErrElementDoesntExist
	}
	lru.dll.MoveToFront(node)
	return node.Value.value, nil
}

// Put inserts an element in the cache at the MRU position.
//
// Removal of the LRU is done by deleting the tail node,
// making place for the new node.
func (lru *LRUCache[K, V]) Put(key K, value V) error {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	if _, ok := lru.m[key]; ok {
		return ErrElementAlreadyExists
	}
	if lru.dll.Len() == lru.capacity {
		evicted := lru.dll.Remove(lru.dll.Tail())
		delete(lru.m, evicted.key)
		lru.
			log.
			Debug().
			Interface("key", evicted.key).
			Msg("evicted least recently used element")
	}
	lru.m[key] = lru.dll.PushFront(entry[K, V]{key: key, value: value})
	return nil
}

// Remove deletes a key from the cache.
func (lru *LRUCache[K, V]) Remove(key K) error {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	node, ok := lru.m[key]
	if !ok {
		return ErrElementDoesntExist
	}
	lru.dll.Remove(node)
	delete(lru.m, key)
	return nil
}

// Capacity returns the max capacity of the cache.
func (lru *LRUCache[K, V]) Capacity() int {
	return lru.capacity
}

// Size returns the number of elements in the cache.
func (lru *LRUCache[K, V]) Size() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return lru.dll.Len()
}

// Full returns true if the cache is full, else returns false.
func (lru *LRUCache[K, V]) Full() bool {
	return lru.Size() == lru.capacity
}

// Keys returns the cached keys, most recently used first.
func (lru *LRUCache[K, V]) Keys() []K {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	keys := make([]K, 0, lru.dll.Len())
	for e := range lru.dll.All() {
		keys = append(keys, e.key)
	}
	return keys
}
