package container

import "iter"

// DefaultCapacity is the backing array size used when a bounded
// container is created without an explicit capacity.
const DefaultCapacity = 100

// MaxCapacity is the largest capacity a bounded container accepts. The
// backing array is allocated up front, so the bound keeps a single
// container from claiming an arbitrary amount of memory.
const MaxCapacity = 1 << 20

var (
	// Assert that *BoundedDeque implements Sequence and Bounded.
	_ Sequence[int] = (*BoundedDeque[int])(nil)
	_ Bounded       = (*BoundedDeque[int])(nil)
)

// BoundedDeque is a double-ended queue over a fixed-length backing
// array.
//
// Cursors wrap modulo the capacity, so slots freed by a pop are reused
// by later pushes. A push into a full deque fails with
// ErrCapacityExceeded and leaves the deque untouched; it never grows.
// Live elements are buf[(front+i)%cap] for i in [0, count).
type BoundedDeque[T any] struct {
	buf   []T
	front int
	count int
}

// NewBoundedDeque returns an empty deque that holds at most capacity
// elements. The capacity must lie in [1, MaxCapacity].
func NewBoundedDeque[T any](capacity int) (*BoundedDeque[T], error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}
	return &BoundedDeque[T]{
		buf: make([]T, capacity),
	}, nil
}

// PushBack writes value after the back element.
func (d *BoundedDeque[T]) PushBack(value T) error {
	if d.IsFull() {
		return ErrCapacityExceeded
	}
	d.buf[d.slot(d.count)] = value
	d.count++
	return nil
}

// PushFront moves the front cursor back by one and writes value there.
func (d *BoundedDeque[T]) PushFront(value T) error {
	if d.IsFull() {
		return ErrCapacityExceeded
	}
	d.front = d.slot(-1)
	d.buf[d.front] = value
	d.count++
	return nil
}

// PopBack removes and returns the back element.
func (d *BoundedDeque[T]) PopBack() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, ErrEmptyContainer
	}
	i := d.slot(d.count - 1)
	value := d.buf[i]
	d.buf[i] = zero
	d.count--
	return value, nil
}

// PopFront removes and returns the front element.
func (d *BoundedDeque[T]) PopFront() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, ErrEmptyContainer
	}
	value := d.buf[d.front]
	d.buf[d.front] = zero
	d.front = d.slot(1)
	d.count--
	return value, nil
}

// Front returns the front element without removing it.
func (d *BoundedDeque[T]) Front() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return d.buf[d.front], nil
}

// Back returns the back element without removing it.
func (d *BoundedDeque[T]) Back() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return d.buf[d.slot(d.count-1)], nil
}

// All walks the deque from front to back.
func (d *BoundedDeque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.count; i++ {
			if !yield(d.buf[d.slot(i)]) {
				return
			}
		}
	}
}

// Values returns the live elements from front to back.
func (d *BoundedDeque[T]) Values() []T {
	return collect(d.All(), d.count)
}

// Len returns the number of live elements.
func (d *BoundedDeque[T]) Len() int { return d.count }

// IsEmpty returns true if the deque holds no elements.
func (d *BoundedDeque[T]) IsEmpty() bool { return d.count == 0 }

// IsFull returns true if the next push would fail.
func (d *BoundedDeque[T]) IsFull() bool { return d.count == len(d.buf) }

// Capacity returns the fixed size of the backing array.
func (d *BoundedDeque[T]) Capacity() int { return len(d.buf) }

// Clear zeroes every live slot and resets the cursors.
func (d *BoundedDeque[T]) Clear() int {
	released := d.count
	var zero T
	for i := 0; i < d.count; i++ {
		d.buf[d.slot(i)] = zero
	}
	d.front = 0
	d.count = 0
	return released
}

// String prints the deque from front to back, space separated.
func (d *BoundedDeque[T]) String() string {
	return join(d.All())
}

// slot maps an offset from the front cursor to an index of buf.
// The offset may be -1 to address the slot just before the front.
func (d *BoundedDeque[T]) slot(offset int) int {
	n := len(d.buf)
	return ((d.front+offset)%n + n) % n
}
