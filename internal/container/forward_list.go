package container

import "iter"

// Assert that *ForwardList implements Sequence.
var _ Sequence[int] = (*ForwardList[int])(nil)

// ForwardList is a singly linked list with insertion and removal at
// the head only.
//
// The size is not cached. Following next from the head ends in nil
// after exactly Len() steps, and Len walks the chain to find out.
// The zero value is an empty list ready to use.
type ForwardList[T any] struct {
	head *SingleNode[T]
}

// NewForwardList returns a new instance of an empty ForwardList.
func NewForwardList[T any]() *ForwardList[T] {
	return &ForwardList[T]{
		head: nil,
	}
}

// PushFront links a new node holding value in front of the current
// head and makes it the new head.
func (fl *ForwardList[T]) PushFront(value T) {
	fl.head = &SingleNode[T]{
		Value: value,
		next:  fl.head,
	}
}

// PopFront detaches the head node and returns its value.
// ErrEmptyContainer is returned if the list has no nodes.
func (fl *ForwardList[T]) PopFront() (T, error) {
	if fl.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	node := fl.head
	fl.head = node.next
	node.next = nil
	return node.Value, nil
}

// Front returns the value of the head node without removing it.
func (fl *ForwardList[T]) Front() (T, error) {
	if fl.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return fl.head.Value, nil
}

// Head returns the first node of the list, nil if the list is empty.
func (fl *ForwardList[T]) Head() *SingleNode[T] {
	return fl.head
}

// All walks the list from head to tail.
func (fl *ForwardList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := fl.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Values returns the values of the list in head to tail order.
func (fl *ForwardList[T]) Values() []T {
	return collect(fl.All(), 0)
}

// Len counts the nodes by walking the chain.
func (fl *ForwardList[T]) Len() int {
	n := 0
	for node := fl.head; node != nil; node = node.next {
		n++
	}
	return n
}

// IsEmpty returns true if the list has no nodes.
func (fl *ForwardList[T]) IsEmpty() bool {
	return fl.head == nil
}

// Clear releases every node of the list.
//
// Each node is unlinked only after the walk has moved past it, so the
// successor is never read from a released node.
func (fl *ForwardList[T]) Clear() int {
	released := 0
	current := fl.head
	fl.head = nil
	for current != nil {
		next := current.next
		*current = SingleNode[T]{}
		current = next
		released++
	}
	return released
}

// String prints the list from head to tail, space separated.
func (fl *ForwardList[T]) String() string {
	return join(fl.All())
}
