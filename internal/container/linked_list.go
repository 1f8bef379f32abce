package container

import "iter"

// Assert that *LinkedList implements Sequence.
var _ Sequence[int] = (*LinkedList[int])(nil)

// LinkedList is a doubly linked list with O(1) insertion and removal
// at both ends.
//
// The list keeps these invariants after every operation:
//   - head.prev and tail.next are nil.
//   - For every node n that has a successor, n.next.prev == n.
//   - Walking next from head visits exactly size nodes and ends at tail.
//
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head *DoubleNode[T]
	tail *DoubleNode[T]
	size int
}

// NewLinkedList returns a new instance of an empty LinkedList.
func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// PushBack appends value after the tail and returns its node.
// If the list is empty the new node becomes both head and tail.
func (ll *LinkedList[T]) PushBack(value T) *DoubleNode[T] {
	node := &DoubleNode[T]{Value: value, list: ll}
	if ll.tail == nil {
		ll.head = node
		ll.tail = node
	} else {
		ll.tail.next = node
		node.prev = ll.tail
		ll.tail = node
	}
	ll.size++
	return node
}

// PushFront inserts value before the head and returns its node.
func (ll *LinkedList[T]) PushFront(value T) *DoubleNode[T] {
	node := &DoubleNode[T]{Value: value, list: ll}
	if ll.head == nil {
		ll.head = node
		ll.tail = node
	} else {
		node.next = ll.head
		ll.head.prev = node
		ll.head = node
	}
	ll.size++
	return node
}

// PopFront removes the head node and returns its value.
func (ll *LinkedList[T]) PopFront() (T, error) {
	if ll.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return ll.Remove(ll.head), nil
}

// PopBack removes the tail node and returns its value.
func (ll *LinkedList[T]) PopBack() (T, error) {
	if ll.tail == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return ll.Remove(ll.tail), nil
}

// Front returns the value of the head node.
func (ll *LinkedList[T]) Front() (T, error) {
	if ll.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return ll.head.Value, nil
}

// Back returns the value of the tail node.
func (ll *LinkedList[T]) Back() (T, error) {
	if ll.tail == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return ll.tail.Value, nil
}

// Head returns the first node, nil if the list is empty.
func (ll *LinkedList[T]) Head() *DoubleNode[T] {
	return ll.head
}

// Tail returns the last node, nil if the list is empty.
func (ll *LinkedList[T]) Tail() *DoubleNode[T] {
	return ll.tail
}

// Remove unlinks node from the list in O(1) and returns its value.
//
// The node must have been returned by this list and not removed since.
// Removing a node owned by another list is a programming error and
// panics.
func (ll *LinkedList[T]) Remove(node *DoubleNode[T]) T {
	if node == nil || node.list != ll {
		panic("container: node does not belong to this list")
	}
	ll.unlink(node)
	value := node.Value
	*node = DoubleNode[T]{}
	return value
}

// MoveToFront makes node the head of the list without reallocating it.
func (ll *LinkedList[T]) MoveToFront(node *DoubleNode[T]) {
	if node == nil || node.list != ll {
		panic("container: node does not belong to this list")
	}
	if node == ll.head {
		return
	}
	ll.unlink(node)
	node.next = ll.head
	ll.head.prev = node
	ll.head = node
	ll.size++
}

// unlink detaches node from its neighbours and fixes head and tail.
// The list pointer of node is left untouched.
func (ll *LinkedList[T]) unlink(node *DoubleNode[T]) {
	left := node.prev
	right := node.next

	if left != nil {
		left.next = right
	} else {
		ll.head = right
	}
	if right != nil {
		right.prev = left
	} else {
		ll.tail = left
	}
	node.next = nil
	node.prev = nil
	ll.size--
}

// All walks the list forward, from head to tail.
func (ll *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := ll.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Backward walks the list from tail to head over the back references.
func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := ll.tail; node != nil; node = node.prev {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Values returns the values of the list in head to tail order.
func (ll *LinkedList[T]) Values() []T {
	return collect(ll.All(), ll.size)
}

// Len returns the number of nodes in the list.
func (ll *LinkedList[T]) Len() int {
	return ll.size
}

// IsEmpty returns true if the list has no nodes.
func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

// Clear releases every node by walking the owning next edges once.
// The prev back references are dropped along the way, never followed.
func (ll *LinkedList[T]) Clear() int {
	released := 0
	current := ll.head
	ll.head = nil
	ll.tail = nil
	ll.size = 0
	for current != nil {
		next := current.next
		*current = DoubleNode[T]{}
		current = next
		released++
	}
	return released
}

// String prints the list from head to tail, space separated.
func (ll *LinkedList[T]) String() string {
	return join(ll.All())
}
