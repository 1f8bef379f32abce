package container

// Error provides constant error strings to the container operations.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrEmptyContainer   = Error("container is empty")
	ErrCapacityExceeded = Error("container capacity exceeded")
	ErrInvalidCapacity  = Error("capacity must be between 1 and MaxCapacity")
	ErrKeyNotFound      = Error("key doesn't exist in the map")
)
