package containerservice

import "github.com/oklog/ulid"

// ContainerService describes a service that maintains a set of named
// containers. Every container is addressed by the ID handed out when
// it was created.
type ContainerService interface {
	// Create allocates an empty container of the given kind. The
	// capacity is only used by the bounded kinds; zero selects the
	// default capacity.
	Create(kind Kind, capacity int) (ulid.ULID, error)
	// Push inserts a value at the given end of the container.
	// An error is generated if the container doesn't exist, the kind
	// has no such end, or the container is full.
	Push(id ulid.ULID, end End, value int) error
	// Pop removes and returns the value at the given end.
	Pop(id ulid.ULID, end End) (int, error)
	// Peek returns the value at the given end without removing it.
	Peek(id ulid.ULID, end End) (int, error)
	// Items returns the kind and the live values of the container in
	// its natural order.
	Items(id ulid.ULID) (Kind, []int, error)
	// Drop clears the container and forgets it.
	Drop(id ulid.ULID) error
	// List describes every container currently held by the service.
	List() []Descriptor
}

// Kind names a type of container that the service can hold.
type Kind string

// These are the kinds of container.
const (
	KindForwardList   Kind = "forward_list"
	KindLinkedList    Kind = "linked_list"
	KindDeque         Kind = "deque"
	KindQueue         Kind = "queue"
	KindPriorityQueue Kind = "priority_queue"
)

// End selects which end of a container an operation applies to.
// The empty End selects the natural end of the kind: pushes go to the
// back, except for a forward list which only grows at its head, and
// pops and peeks come from the front.
type End string

// These are the ends of a container.
const (
	EndDefault End = ""
	EndFront   End = "front"
	EndBack    End = "back"
)

// Descriptor describes a container held by the service.
type Descriptor struct {
	ID   ulid.ULID `json:"id"`
	Kind Kind      `json:"kind"`
	Len  int       `json:"len"`
}

// Config describes the address the service is served on.
type Config interface {
	// IP provides the IP address where the server is intended to run.
	IP() string
	// Port provides the port where the server is supposed to run.
	Port() string
}

var _ Config = (*SimpleConfig)(nil)

// SimpleConfig implements Config.
type SimpleConfig struct {
	IPAddr   string
	PortAddr string
}

// IP returns the IP address from SimpleConfig.
func (scfg *SimpleConfig) IP() string {
	return scfg.IPAddr
}

// Port returns the port from SimpleConfig.
func (scfg *SimpleConfig) Port() string {
	return scfg.PortAddr
}

// NewSimpleConfig returns a new simple configuration.
func NewSimpleConfig(IPAddr, PortAddr string) *SimpleConfig {
	return &SimpleConfig{
		IPAddr:   IPAddr,
		PortAddr: PortAddr,
	}
}
