package containerservice

import (
	"io"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
)

// SafeRegistry is the container service's data structure.
type SafeRegistry struct {
	Containers map[ulid.ULID]instance
	Mutex      sync.Mutex
}

var _ ContainerService = (*SimpleContainerService)(nil)

// SimpleContainerService is a container service that implements
// ContainerService. It keeps the containers in a golang map guarded by
// a mutex, so the containers themselves never see concurrent calls.
// It has an in-built logger.
type SimpleContainerService struct {
	log      zerolog.Logger
	registry *SafeRegistry
	entropy  io.Reader
}

// NewSimpleContainerService creates and returns a new container
// service ready to use.
func NewSimpleContainerService(log zerolog.Logger) *SimpleContainerService {
	return &SimpleContainerService{
		log: log,
		registry: &SafeRegistry{
			Containers: make(map[ulid.ULID]instance),
		},
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Create allocates a new container and returns its ID.
func (cs *SimpleContainerService) Create(kind Kind, capacity int) (ulid.ULID, error) {
	inst, err := newInstance(kind, capacity)
	if err != nil {
		cs.
			log.
			Debug().
			Str("kind", string(kind)).
			Int("capacity", capacity).
			Msg("can't create container")
		return ulid.ULID{}, errors.Wrapf(err, "create %q", kind)
	}

	cs.registry.Mutex.Lock()
	defer cs.registry.Mutex.Unlock()
	// The monotonic entropy source isn't safe for concurrent use,
	// it is only read under the registry lock.
	id, err := ulid.New(ulid.Timestamp(time.Now()), cs.entropy)
	if err != nil {
		return ulid.ULID{}, errors.Wrap(err, "generating container id")
	}
	cs.registry.Containers[id] = inst
	cs.
		log.
		Debug().
		Str("container", id.String()).
		Str("kind", string(kind)).
		Msg("created")
	return id, nil
}

// Push inserts value at the given end of the container.
func (cs *SimpleContainerService) Push(id ulid.ULID, end End, value int) error {
	cs.registry.Mutex.Lock()
	defer cs.registry.Mutex.Unlock()
	inst, err := cs.lookup(id)
	if err != nil {
		return err
	}
	if err := inst.push(end, value); err != nil {
		cs.
			log.
			Debug().
			Str("container", id.String()).
			Str("end", string(end)).
			Err(err).
			Msg("can't push")
		return errors.Wrapf(err, "push to container %s", id)
	}
	cs.
		log.
		Debug().
		Str("container", id.String()).
		Str("end", string(end)).
		Int("value", value).
		Msg("pushed")
	return nil
}

// Pop removes and returns the value at the given end of the container.
func (cs *SimpleContainerService) Pop(id ulid.ULID, end End) (int, error) {
	cs.registry.Mutex.Lock()
	defer cs.registry.Mutex.Unlock()
	inst, err := cs.lookup(id)
	if err != nil {
		return 0, err
	}
	value, err := inst.pop(end)
	if err != nil {
		cs.
			log.
			Debug().
			Str("container", id.String()).
			Str("end", string(end)).
			Err(err).
			Msg("can't pop")
		return 0, errors.Wrapf(err, "pop from container %s", id)
	}
	cs.
		log.
		Debug().
		Str("container", id.String()).
		Str("end", string(end)).
		Int("value", value).
		Msg("popped")
	return value, nil
}

// Peek returns the value at the given end of the container.
func (cs *SimpleContainerService) Peek(id ulid.ULID, end End) (int, error) {
	cs.registry.Mutex.Lock()
	defer cs.registry.Mutex.Unlock()
	inst, err := cs.lookup(id)
	if err != nil {
		return 0, err
	}
	value, err := inst.peek(end)
	if err != nil {
		return 0, errors.Wrapf(err, "peek at container %s", id)
	}
	return value, nil
}

// Items returns the live values of the container.
func (cs *SimpleContainerService) Items(id ulid.ULID) (Kind, []int, error) {
	cs.registry.Mutex.Lock()
	defer cs.registry.Mutex.Unlock()
	inst, err := cs.lookup(id)
	if err != nil {
		return "", nil, err
	}
	return inst.kind(), inst.values(), nil
}

// Drop releases every element of the container and removes it from
// the service.
func (cs *SimpleContainerService) Drop(id ulid.ULID) error {
	cs.registry.Mutex.Lock()
	defer cs.registry.Mutex.Unlock()
	inst, err := cs.lookup(id)
	if err != nil {
		return err
	}
	released := inst.clear()
	delete(cs.registry.Containers, id)
	cs.
		log.
		Debug().
		Str("container", id.String()).
		Int("released", released).
		Msg("dropped")
	return nil
}

// List returns a descriptor of every container, oldest first.
func (cs *SimpleContainerService) List() []Descriptor {
	cs.registry.Mutex.Lock()
	defer cs.registry.Mutex.Unlock()
	descriptors := make([]Descriptor, 0, len(cs.registry.Containers))
	for id, inst := range cs.registry.Containers {
		descriptors = append(descriptors, Descriptor{
			ID:   id,
			Kind: inst.kind(),
			Len:  inst.len(),
		})
	}
	slices.SortFunc(descriptors, func(a, b Descriptor) int {
		return a.ID.Compare(b.ID)
	})
	return descriptors
}

// lookup must be called with the registry lock held.
func (cs *SimpleContainerService) lookup(id ulid.ULID) (instance, error) {
	inst, ok := cs.registry.Containers[id]
	if !ok {
		cs.
			log.
			Debug().
			Str("container", id.String()).
			Msg("container doesn't exist")
		return nil, errors.Wrapf(ErrContainerNotFound, "container %s", id)
	}
	return inst, nil
}
