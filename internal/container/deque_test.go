package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BoundedDequeDoubleEndedOrder(t *testing.T) {
	d, err := NewBoundedDeque[int](DefaultCapacity)
	require.NoError(t, err)

	require.NoError(t, d.PushBack(10))
	require.NoError(t, d.PushFront(20))
	require.NoError(t, d.PushBack(30))
	assert.Equal(t, []int{20, 10, 30}, d.Values())

	front, err := d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 20, front)
	back, err := d.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 30, back)

	assert.Equal(t, "10", d.String())
	v, err := d.Front()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = d.Back()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func Test_BoundedDequeInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, MaxCapacity + 1, 1 << 62} {
		d, err := NewBoundedDeque[int](c)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
		assert.Nil(t, d)
	}

	d, err := NewBoundedDeque[int](MaxCapacity)
	require.NoError(t, err)
	assert.Equal(t, MaxCapacity, d.Capacity())
}

func Test_BoundedDequeCapacityExceeded(t *testing.T) {
	d, err := NewBoundedDeque[int](3)
	require.NoError(t, err)

	require.NoError(t, d.PushBack(1))
	require.NoError(t, d.PushFront(0))
	require.NoError(t, d.PushBack(2))
	assert.True(t, d.IsFull())

	assert.ErrorIs(t, d.PushBack(3), ErrCapacityExceeded)
	assert.ErrorIs(t, d.PushFront(-1), ErrCapacityExceeded)
	assert.Equal(t, []int{0, 1, 2}, d.Values(), "a rejected push must not change the deque")
	assert.Equal(t, 3, d.Capacity())
}

func Test_BoundedDequeWraparound(t *testing.T) {
	d, err := NewBoundedDeque[int](4)
	require.NoError(t, err)

	// Walk the front cursor around the array several times in both
	// directions; the order must survive every wrap.
	for round := 0; round < 10; round++ {
		for i := 0; i < 4; i++ {
			require.NoError(t, d.PushFront(i))
		}
		assert.Equal(t, []int{3, 2, 1, 0}, d.Values())
		for i := 0; i < 4; i++ {
			v, err := d.PopBack()
			require.NoError(t, err)
			assert.Equal(t, i, v)
		}

		for i := 0; i < 3; i++ {
			require.NoError(t, d.PushBack(i))
		}
		v, err := d.PopFront()
		require.NoError(t, err)
		assert.Equal(t, 0, v)
		assert.Equal(t, []int{1, 2}, d.Values())
		d.Clear()
	}
}

func Test_BoundedDequeEmptiness(t *testing.T) {
	d, err := NewBoundedDeque[string](5)
	require.NoError(t, err)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, d.PushBack("x"))
	}
	for i := 0; i < n; i++ {
		_, err := d.PopFront()
		require.NoError(t, err)
	}
	assert.True(t, d.IsEmpty())

	_, err = d.PopFront()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = d.PopBack()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = d.Front()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = d.Back()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func Test_BoundedDequeClear(t *testing.T) {
	d, err := NewBoundedDeque[*int](4)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v := i
		require.NoError(t, d.PushFront(&v))
	}

	assert.Equal(t, 3, d.Clear())
	assert.Equal(t, 0, d.Clear())
	for _, slot := range d.buf {
		assert.Nil(t, slot, "cleared slot still holds a reference")
	}
}
