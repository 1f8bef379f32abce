package container

import "iter"

// Sequence describes any container whose live elements can be walked
// in a defined order.
type Sequence[T any] interface {
	// All returns a lazy, finite walk over the live elements. The walk
	// can be restarted by calling All again.
	All() iter.Seq[T]
	// Values copies the live elements into a new slice, in the same
	// order as All.
	Values() []T
	// Len returns the number of live elements.
	Len() int
	// IsEmpty returns true if there are no live elements.
	IsEmpty() bool
	// Clear releases every element the container still owns and
	// returns how many were released. Calling it again releases nothing.
	Clear() int
}

// Bounded describes a container with a fixed maximum element count
// decided at construction time.
type Bounded interface {
	// Capacity returns the maximum number of live elements.
	Capacity() int
	// IsFull returns true if a push would exceed the capacity.
	IsFull() bool
}

// collect drains a walk into a slice.
func collect[T any](seq iter.Seq[T], hint int) []T {
	values := make([]T, 0, hint)
	for v := range seq {
		values = append(values, v)
	}
	return values
}
