package container

import (
	"fmt"
	"iter"
	"strings"
)

// SingleNode is the single entity of the ForwardList.
//
// The next link is the only edge that owns a node: a node is reachable
// from exactly one predecessor, or from the list head.
type SingleNode[T any] struct {
	Value T
	next  *SingleNode[T]
}

// Next returns the node after the current node, or nil at the end.
func (n *SingleNode[T]) Next() *SingleNode[T] {
	return n.next
}

// DoubleNode is the single entity of the LinkedList.
//
// All nodes have a next and a prev link except the tail and the head
// node respectively. next is the owning edge; prev is a back reference
// that is never walked to release nodes.
type DoubleNode[T any] struct {
	Value T
	next  *DoubleNode[T]
	prev  *DoubleNode[T]
	list  *LinkedList[T]
}

// Next returns the node to the right of the current node.
func (n *DoubleNode[T]) Next() *DoubleNode[T] {
	return n.next
}

// Prev returns the node to the left of the current node.
func (n *DoubleNode[T]) Prev() *DoubleNode[T] {
	return n.prev
}

// join renders a walk the way the containers print themselves,
// space separated in walk order.
func join[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	return sb.String()
}
