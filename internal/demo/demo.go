// Package demo walks every container through a short scripted session
// and prints the outcome, one section per container.
package demo

import (
	"fmt"
	"io"

	"github.com/SystemBuilders/Containers/internal/container"
	"github.com/cockroachdb/errors"
)

// Run prints every demo to w, stopping at the first failure.
func Run(w io.Writer) error {
	for _, run := range []func(io.Writer) error{
		ForwardList,
		LinkedList,
		Deque,
		Queue,
		PriorityQueue,
		LinearScanMap,
	} {
		if err := run(w); err != nil {
			return err
		}
	}
	return nil
}

// ForwardList inserts at the head only, so the values come out in the
// reverse order of insertion.
func ForwardList(w io.Writer) error {
	fl := container.NewForwardList[int]()
	defer fl.Clear()

	fl.PushFront(3)
	fl.PushFront(2)
	fl.PushFront(1)
	fl.PushFront(0)

	_, err := fmt.Fprintf(w, "Forward list elements: %s\n", fl)
	return err
}

// LinkedList mixes insertion at both ends.
func LinkedList(w io.Writer) error {
	ll := container.NewLinkedList[int]()
	defer ll.Clear()

	ll.PushBack(4)
	ll.PushFront(0)
	ll.PushBack(1)
	ll.PushBack(2)
	ll.PushBack(3)

	_, err := fmt.Fprintf(w, "List elements: %s\n", ll)
	return err
}

// Deque pushes and pops at both ends.
func Deque(w io.Writer) error {
	dq, err := container.NewBoundedDeque[int](container.DefaultCapacity)
	if err != nil {
		return err
	}

	if err := dq.PushBack(10); err != nil {
		return errors.Wrap(err, "deque")
	}
	if err := dq.PushFront(20); err != nil {
		return errors.Wrap(err, "deque")
	}
	if err := dq.PushBack(30); err != nil {
		return errors.Wrap(err, "deque")
	}
	if _, err := fmt.Fprintf(w, "Deque elements: %s\n", dq); err != nil {
		return err
	}

	if _, err := dq.PopFront(); err != nil {
		return errors.Wrap(err, "deque")
	}
	if _, err := dq.PopBack(); err != nil {
		return errors.Wrap(err, "deque")
	}
	_, err = fmt.Fprintf(w, "Deque after popping: %s\n", dq)
	return err
}

// Queue drains values in insertion order.
func Queue(w io.Writer) error {
	q, err := container.NewBoundedQueue[int](container.DefaultCapacity)
	if err != nil {
		return err
	}
	for _, v := range []int{10, 20, 30} {
		if err := q.Push(v); err != nil {
			return errors.Wrap(err, "queue")
		}
	}

	var values []int
	for !q.IsEmpty() {
		v, err := q.Pop()
		if err != nil {
			return errors.Wrap(err, "queue")
		}
		values = append(values, v)
	}
	return printValues(w, "Queue elements", values)
}

// PriorityQueue drains values greatest first.
func PriorityQueue(w io.Writer) error {
	pq := container.NewPriorityQueue[int]()
	pq.Push(10)
	pq.Push(5)
	pq.Push(20)

	var values []int
	for !pq.IsEmpty() {
		v, err := pq.Pop()
		if err != nil {
			return errors.Wrap(err, "priority queue")
		}
		values = append(values, v)
	}
	return printValues(w, "Priority queue elements", values)
}

// LinearScanMap stores ages by name and looks one up.
func LinearScanMap(w io.Writer) error {
	ages := container.NewLinearScanMap[string, int]()
	ages.Insert("Alice", 25)
	ages.Insert("Bob", 30)
	ages.Insert("Charlie", 35)

	age, err := ages.Get("Alice")
	if err != nil {
		return errors.Wrap(err, "map")
	}
	_, err = fmt.Fprintf(w, "Alice's age: %d\nAll ages:\n%s", age, ages)
	return err
}

func printValues(w io.Writer, title string, values []int) error {
	if _, err := fmt.Fprintf(w, "%s:", title); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(w, " %d", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
