package routing

import "github.com/SystemBuilders/Containers/internal/containerservice"

// CreateRequest is sent by the client to allocate a container.
type CreateRequest struct {
	Kind     containerservice.Kind `json:"kind"`
	Capacity int                   `json:"capacity,omitempty"`
}

// CreateResponse carries the ID of a new container.
type CreateResponse struct {
	ID string `json:"id"`
}

// PushRequest is sent by the client to insert a value.
type PushRequest struct {
	End   containerservice.End `json:"end,omitempty"`
	Value int                  `json:"value"`
}

// PopRequest is sent by the client to remove a value.
type PopRequest struct {
	End containerservice.End `json:"end,omitempty"`
}

// ValueResponse carries a single value out of a container.
type ValueResponse struct {
	Value int `json:"value"`
}

// ItemsResponse describes a container and its live values.
type ItemsResponse struct {
	ID    string                `json:"id"`
	Kind  containerservice.Kind `json:"kind"`
	Items []int                 `json:"items"`
}

// ErrorResponse is written for every failed request. Code is the
// message of the innermost error, so clients can recognise the
// constant errors of the service.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
