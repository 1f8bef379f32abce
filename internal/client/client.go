package client

import (
	"github.com/SystemBuilders/Containers/internal/containerservice"
	"github.com/oklog/ulid"
)

// Client describes a client that can be used to interact with the
// container service over HTTP. Every call maps to one request and the
// constant errors of the service survive the round trip, so callers can
// keep using errors.Is against them.
type Client interface {
	// Create allocates a container of the given kind on the server.
	Create(kind containerservice.Kind, capacity int) (ulid.ULID, error)
	// Push inserts value at the given end of the container.
	Push(id ulid.ULID, end containerservice.End, value int) error
	// Pop removes and returns the value at the given end.
	Pop(id ulid.ULID, end containerservice.End) (int, error)
	// Peek returns the value at the given end without removing it.
	Peek(id ulid.ULID, end containerservice.End) (int, error)
	// Items returns the live values of the container.
	Items(id ulid.ULID) ([]int, error)
	// Drop removes the container from the server.
	Drop(id ulid.ULID) error
}
