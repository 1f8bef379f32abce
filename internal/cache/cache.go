package cache

// Cache describes an entity of a cache.
type Cache[K comparable, V any] interface {
	// Get gets the value stored for key from the cache.
	// Getting the value makes it the most recently used element
	// in the cache. This function must be implemented in O(1) complexity.
	// If the key doesn't exist in the cache, an error is raised.
	Get(key K) (V, error)
	// Put inserts a key with its value into the cache.
	// Putting the element makes it the most recently used element
	// in the cache. This function must be implemented in O(1) complexity.
	// If the key already exists in the cache, an error is raised.
	Put(key K, value V) error
	// Remove deletes the key from the cache.
	Remove(key K) error
	// Capacity returns the max capacity of the cache.
	Capacity() int
	// Size returns the number of elements currently in the cache.
	Size() int
	// Full checks whether the cache is full or not. It returns true if the
	// cache is full.
	Full() bool
	// Keys returns the keys in the decreasing order of recent use.
	Keys() []K
}
