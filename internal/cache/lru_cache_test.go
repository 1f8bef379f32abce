package cache

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LRUCache(t *testing.T) {
	lruCache, err := NewLRUCache[string, string](5, zerolog.Nop())
	require.NoError(t, err)

	for _, k := range []string{"1", "2"} {
		err = lruCache.Put(k, "owner1")
		if err != nil {
			t.Fatal(err)
		}
	}

	_, err = lruCache.Get("1")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"1", "2"}, lruCache.Keys())

	require.NoError(t, lruCache.Put("3", "owner1"))
	_, err = lruCache.Get("2")
	require.NoError(t, err)
	require.NoError(t, lruCache.Put("4", "owner1"))
	assert.Equal(t, []string{"4", "2", "3", "1"}, lruCache.Keys())

	for _, k := range []string{"1", "3", "4"} {
		_, err = lruCache.Get(k)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"4", "3", "1", "2"}, lruCache.Keys())

	require.NoError(t, lruCache.Remove("1"))
	assert.ErrorIs(t, lruCache.Remove("1"), ErrElementDoesntExist)

	require.NoError(t, lruCache.Put("5", "owner1"))
	require.NoError(t, lruCache.Put("6", "owner1"))
	assert.True(t, lruCache.Full())
	assert.Equal(t, 5, lruCache.Size())

	// The cache is full, so the tail element must be evicted
	// on insertion of seven.
	require.NoError(t, lruCache.Put("7", "owner1"))
	assert.Equal(t, []string{"7", "6", "5", "4", "3"}, lruCache.Keys())
	_, err = lruCache.Get("2")
	assert.ErrorIs(t, err, ErrElementDoesntExist)
}

func Test_LRUCacheErrors(t *testing.T) {
	_, err := NewLRUCache[int, int](0, zerolog.Nop())
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	lruCache, err := NewLRUCache[int, int](1, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, lruCache.Put(1, 10))
	assert.ErrorIs(t, lruCache.Put(1, 11), ErrElementAlreadyExists)

	v, err := lruCache.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	require.NoError(t, lruCache.Put(2, 20))
	_, err = lruCache.Get(1)
	assert.ErrorIs(t, err, ErrElementDoesntExist)
	assert.Equal(t, []int{2}, lruCache.Keys())
}
