package containerservice

import (
	"github.com/SystemBuilders/Containers/internal/container"
)

// instance adapts one container of int values to the operations of
// the service.
type instance interface {
	kind() Kind
	push(end End, value int) error
	pop(end End) (int, error)
	peek(end End) (int, error)
	values() []int
	len() int
	clear() int
}

// newInstance allocates an empty container of the given kind. The
// capacity is only used by the bounded kinds but is validated for all
// of them.
func newInstance(kind Kind, capacity int) (instance, error) {
	if capacity < 0 || capacity > container.MaxCapacity {
		return nil, container.ErrInvalidCapacity
	}
	if capacity == 0 {
		capacity = container.DefaultCapacity
	}
	switch kind {
	case KindForwardList:
		return &forwardList{container.NewForwardList[int]()}, nil
	case KindLinkedList:
		return &linkedList{container.NewLinkedList[int]()}, nil
	case KindDeque:
		d, err := container.NewBoundedDeque[int](capacity)
		if err != nil {
			return nil, err
		}
		return &deque{d}, nil
	case KindQueue:
		q, err := container.NewBoundedQueue[int](capacity)
		if err != nil {
			return nil, err
		}
		return &queue{q}, nil
	case KindPriorityQueue:
		return &priorityQueue{container.NewPriorityQueue[int]()}, nil
	}
	return nil, ErrUnknownKind
}

// resolve replaces the default end with natural and rejects unknown
// ends.
func resolve(end, natural End) (End, error) {
	switch end {
	case EndDefault:
		return natural, nil
	case EndFront, EndBack:
		return end, nil
	}
	return "", ErrUnknownEnd
}

// only accepts end if it resolves to want.
func only(end, want End) error {
	got, err := resolve(end, want)
	if err != nil {
		return err
	}
	if got != want {
		return ErrUnsupportedOperation
	}
	return nil
}

type forwardList struct {
	fl *container.ForwardList[int]
}

func (f *forwardList) kind() Kind { return KindForwardList }

func (f *forwardList) push(end End, value int) error {
	if err := only(end, EndFront); err != nil {
		return err
	}
	f.fl.PushFront(value)
	return nil
}

func (f *forwardList) pop(end End) (int, error) {
	if err := only(end, EndFront); err != nil {
		return 0, err
	}
	return f.fl.PopFront()
}

func (f *forwardList) peek(end End) (int, error) {
	if err := only(end, EndFront); err != nil {
		return 0, err
	}
	return f.fl.Front()
}

func (f *forwardList) values() []int { return f.fl.Values() }
func (f *forwardList) len() int      { return f.fl.Len() }
func (f *forwardList) clear() int    { return f.fl.Clear() }

type linkedList struct {
	ll *container.LinkedList[int]
}

func (l *linkedList) kind() Kind { return KindLinkedList }

func (l *linkedList) push(end End, value int) error {
	end, err := resolve(end, EndBack)
	if err != nil {
		return err
	}
	if end == EndFront {
		l.ll.PushFront(value)
	} else {
		l.ll.PushBack(value)
	}
	return nil
}

func (l *linkedList) pop(end End) (int, error) {
	end, err := resolve(end, EndFront)
	if err != nil {
		return 0, err
	}
	if end == EndFront {
		return l.ll.PopFront()
	}
	return l.ll.PopBack()
}

func (l *linkedList) peek(end End) (int, error) {
	end, err := resolve(end, EndFront)
	if err != nil {
		return 0, err
	}
	if end == EndFront {
		return l.ll.Front()
	}
	return l.ll.Back()
}

func (l *linkedList) values() []int { return l.ll.Values() }
func (l *linkedList) len() int      { return l.ll.Len() }
func (l *linkedList) clear() int    { return l.ll.Clear() }

type deque struct {
	d *container.BoundedDeque[int]
}

func (d *deque) kind() Kind { return KindDeque }

func (d *deque) push(end End, value int) error {
	end, err := resolve(end, EndBack)
	if err != nil {
		return err
	}
	if end == EndFront {
		return d.d.PushFront(value)
	}
	return d.d.PushBack(value)
}

func (d *deque) pop(end End) (int, error) {
	end, err := resolve(end, EndFront)
	if err != nil {
		return 0, err
	}
	if end == EndFront {
		return d.d.PopFront()
	}
	return d.d.PopBack()
}

func (d *deque) peek(end End) (int, error) {
	end, err := resolve(end, EndFront)
	if err != nil {
		return 0, err
	}
	if end == EndFront {
		return d.d.Front()
	}
	return d.d.Back()
}

func (d *deque) values() []int { return d.d.Values() }
func (d *deque) len() int      { return d.d.Len() }
func (d *deque) clear() int    { return d.d.Clear() }

type queue struct {
	q *container.BoundedQueue[int]
}

func (q *queue) kind() Kind { return KindQueue }

func (q *queue) push(end End, value int) error {
	if err := only(end, EndBack); err != nil {
		return err
	}
	return q.q.Push(value)
}

func (q *queue) pop(end End) (int, error) {
	if err := only(end, EndFront); err != nil {
		return 0, err
	}
	return q.q.Pop()
}

func (q *queue) peek(end End) (int, error) {
	if err := only(end, EndFront); err != nil {
		return 0, err
	}
	return q.q.Front()
}

func (q *queue) values() []int { return q.q.Values() }
func (q *queue) len() int      { return q.q.Len() }
func (q *queue) clear() int    { return q.q.Clear() }

// priorityQueue has a single end, its top, addressed as the front.
type priorityQueue struct {
	pq *container.PriorityQueue[int]
}

func (p *priorityQueue) kind() Kind { return KindPriorityQueue }

func (p *priorityQueue) push(end End, value int) error {
	if err := only(end, EndFront); err != nil {
		return err
	}
	p.pq.Push(value)
	return nil
}

func (p *priorityQueue) pop(end End) (int, error) {
	if err := only(end, EndFront); err != nil {
		return 0, err
	}
	return p.pq.Pop()
}

func (p *priorityQueue) peek(end End) (int, error) {
	if err := only(end, EndFront); err != nil {
		return 0, err
	}
	return p.pq.Top()
}

// values drains a copy of the heap, so the items come out greatest first.
func (p *priorityQueue) values() []int {
	cp := p.pq.Clone()
	out := make([]int, 0, cp.Len())
	for !cp.IsEmpty() {
		v, _ := cp.Pop()
		out = append(out, v)
	}
	return out
}

func (p *priorityQueue) len() int   { return p.pq.Len() }
func (p *priorityQueue) clear() int { return p.pq.Clear() }
