package routing

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/SystemBuilders/Containers/internal/container"
	"github.com/SystemBuilders/Containers/internal/containerservice"
	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/oklog/ulid"
)

// create wraps the service Create function and creates a clean HTTP service.
func create(w http.ResponseWriter, r *http.Request, cs containerservice.ContainerService) {
	var req CreateRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, err := cs.Create(req.Kind, req.Capacity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateResponse{ID: id.String()})
}

func list(w http.ResponseWriter, r *http.Request, cs containerservice.ContainerService) {
	writeJSON(w, http.StatusOK, cs.List())
}

func items(w http.ResponseWriter, r *http.Request, cs containerservice.ContainerService) {
	id, err := containerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	kind, values, err := cs.Items(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ItemsResponse{ID: id.String(), Kind: kind, Items: values})
}

func drop(w http.ResponseWriter, r *http.Request, cs containerservice.ContainerService) {
	id, err := containerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := cs.Drop(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func push(w http.ResponseWriter, r *http.Request, cs containerservice.ContainerService) {
	id, err := containerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req PushRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := cs.Push(id, req.End, req.Value); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pop(w http.ResponseWriter, r *http.Request, cs containerservice.ContainerService) {
	id, err := containerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req PopRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	value, err := cs.Pop(id, req.End)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ValueResponse{Value: value})
}

func peek(w http.ResponseWriter, r *http.Request, cs containerservice.ContainerService) {
	id, err := containerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	end := containerservice.End(r.URL.Query().Get("end"))
	value, err := cs.Peek(id, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ValueResponse{Value: value})
}

// errBadRequest marks errors caused by a malformed request.
var errBadRequest = errors.New("bad request")

func containerID(r *http.Request) (ulid.ULID, error) {
	id, err := ulid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return ulid.ULID{}, errors.Mark(errors.Wrap(err, "parsing container id"), errBadRequest)
	}
	return id, nil
}

// maxBodyBytes bounds the request bodies the handlers read.
const maxBodyBytes = 1 << 16

// decode reads a JSON body of at most maxBodyBytes into v. An empty body
// leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return errors.Mark(errors.Wrap(err, "reading request"), errBadRequest)
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Mark(errors.Wrap(err, "decoding request"), errBadRequest)
	}
	return nil
}

// statusOf maps the errors of the service to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, containerservice.ErrContainerNotFound):
		return http.StatusNotFound
	case errors.Is(err, container.ErrEmptyContainer),
		errors.Is(err, container.ErrCapacityExceeded),
		errors.Is(err, containerservice.ErrUnsupportedOperation):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, containerservice.ErrUnknownKind),
		errors.Is(err, containerservice.ErrUnknownEnd),
		errors.Is(err, container.ErrInvalidCapacity):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusOf(err), ErrorResponse{
		Error: err.Error(),
		Code:  errors.UnwrapAll(err).Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	byteData, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(byteData)
}
