package containerservice

// Error provides constant error strings to the driver functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrContainerNotFound    = Error("container doesn't exist")
	ErrUnknownKind          = Error("unknown container kind")
	ErrUnknownEnd           = Error("unknown container end")
	ErrUnsupportedOperation = Error("operation not supported by this container kind")
)
