package container

import "iter"

var (
	// Assert that *BoundedQueue implements Sequence and Bounded.
	_ Sequence[int] = (*BoundedQueue[int])(nil)
	_ Bounded       = (*BoundedQueue[int])(nil)
)

// BoundedQueue is a FIFO queue over a fixed-length backing array.
//
// The front and back cursors only ever increase; the slot they address
// is the cursor modulo the capacity. At most capacity elements are live
// at once: a push beyond that fails with ErrCapacityExceeded.
type BoundedQueue[T any] struct {
	buf   []T
	front uint64
	back  uint64
}

// NewBoundedQueue returns an empty queue that holds at most capacity
// elements. The capacity must lie in [1, MaxCapacity].
func NewBoundedQueue[T any](capacity int) (*BoundedQueue[T], error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}
	return &BoundedQueue[T]{
		buf: make([]T, capacity),
	}, nil
}

// Push writes value at the back cursor and advances it.
func (q *BoundedQueue[T]) Push(value T) error {
	if q.IsFull() {
		return ErrCapacityExceeded
	}
	q.buf[q.back%uint64(len(q.buf))] = value
	q.back++
	return nil
}

// Pop removes and returns the front element.
func (q *BoundedQueue[T]) Pop() (T, error) {
	var zero T
	if q.front == q.back {
		return zero, ErrEmptyContainer
	}
	i := q.front % uint64(len(q.buf))
	value := q.buf[i]
	q.buf[i] = zero
	q.front++
	return value, nil
}

// Front returns the oldest element without removing it.
func (q *BoundedQueue[T]) Front() (T, error) {
	if q.front == q.back {
		var zero T
		return zero, ErrEmptyContainer
	}
	return q.buf[q.front%uint64(len(q.buf))], nil
}

// All walks the queue from front to back.
func (q *BoundedQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := q.front; c < q.back; c++ {
			if !yield(q.buf[c%uint64(len(q.buf))]) {
				return
			}
		}
	}
}

// Values returns the live elements from front to back.
func (q *BoundedQueue[T]) Values() []T {
	return collect(q.All(), q.Len())
}

// Len returns the number of live elements.
func (q *BoundedQueue[T]) Len() int { return int(q.back - q.front) }

// IsEmpty returns true if the queue holds no elements.
func (q *BoundedQueue[T]) IsEmpty() bool { return q.front == q.back }

// IsFull returns true if the next push would fail.
func (q *BoundedQueue[T]) IsFull() bool { return q.Len() == len(q.buf) }

// Capacity returns the fixed size of the backing array.
func (q *BoundedQueue[T]) Capacity() int { return len(q.buf) }

// Clear zeroes every live slot. The cursors keep increasing from where
// they were.
func (q *BoundedQueue[T]) Clear() int {
	released := q.Len()
	var zero T
	for ; q.front < q.back; q.front++ {
		q.buf[q.front%uint64(len(q.buf))] = zero
	}
	return released
}

// String prints the queue from front to back, space separated.
func (q *BoundedQueue[T]) String() string {
	return join(q.All())
}
