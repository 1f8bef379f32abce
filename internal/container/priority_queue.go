package container

import "golang.org/x/exp/constraints"

// PriorityQueue is a max-heap over a growable slice laid out as a
// complete binary tree: the children of index i live at 2i+1 and 2i+2,
// its parent at (i-1)/2.
//
// No element is less than either of its children under the queue's
// ordering. Elements that compare equal come out in no particular order.
//
// Unlike the other containers the zero value is not ready to use: a
// queue must be made with NewPriorityQueue or NewPriorityQueueFunc, and
// pushing onto a zero PriorityQueue panics. Reading an empty zero value
// is fine.
type PriorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewPriorityQueue returns an empty max-heap ordered by <.
func NewPriorityQueue[T constraints.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueueFunc(func(a, b T) bool { return a < b })
}

// NewPriorityQueueFunc returns an empty max-heap ordered by less. The
// element for which less reports false against every other element is
// on top.
func NewPriorityQueueFunc[T any](less func(a, b T) bool) *PriorityQueue[T] {
	if less == nil {
		panic(errNoOrdering)
	}
	return &PriorityQueue[T]{
		less: less,
	}
}

// errNoOrdering is the panic value of a push onto a queue that was not
// made by a constructor.
const errNoOrdering = Error("container: PriorityQueue has no ordering, create it with NewPriorityQueue or NewPriorityQueueFunc")

// Push appends value as the last leaf and sifts it up.
func (pq *PriorityQueue[T]) Push(value T) {
	if pq.less == nil {
		panic(errNoOrdering)
	}
	pq.items = append(pq.items, value)
	pq.siftUp(len(pq.items) - 1)
}

// Pop removes and returns the greatest element.
//
// The root is swapped with the last leaf, the slice shrinks by one and
// the new root is sifted down. An empty queue returns ErrEmptyContainer
// and is left as it was.
func (pq *PriorityQueue[T]) Pop() (T, error) {
	var zero T
	if len(pq.items) == 0 {
		return zero, ErrEmptyContainer
	}
	last := len(pq.items) - 1
	pq.swap(0, last)
	top := pq.items[last]
	pq.items[last] = zero
	pq.items = pq.items[:last]
	pq.siftDown(0)
	return top, nil
}

// Top returns the greatest element without removing it.
func (pq *PriorityQueue[T]) Top() (T, error) {
	if len(pq.items) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return pq.items[0], nil
}

// Clone returns an independent queue holding the same elements.
func (pq *PriorityQueue[T]) Clone() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		items: append([]T(nil), pq.items...),
		less:  pq.less,
	}
}

// Len returns the number of queued elements.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// IsEmpty returns true if no elements are queued.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.items) == 0 }

// Clear drops every queued element.
func (pq *PriorityQueue[T]) Clear() int {
	released := len(pq.items)
	clear(pq.items)
	pq.items = pq.items[:0]
	return released
}

// siftUp swaps the element at i with its parent while it is greater,
// stopping at the root.
func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(pq.items[parent], pq.items[i]) {
			return
		}
		pq.swap(i, parent)
		i = parent
	}
}

// siftDown swaps the element at i with its larger child while that
// child is greater, stopping at a leaf.
func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.items)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && pq.less(pq.items[largest], pq.items[left]) {
			largest = left
		}
		if right < n && pq.less(pq.items[largest], pq.items[right]) {
			largest = right
		}
		if largest == i {
			return
		}
		pq.swap(i, largest)
		i = largest
	}
}

func (pq *PriorityQueue[T]) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}
