package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/SystemBuilders/Containers/internal/container"
	"github.com/SystemBuilders/Containers/internal/containerservice"
	"github.com/SystemBuilders/Containers/internal/routing"
	"github.com/cockroachdb/errors"
	"github.com/oklog/ulid"
)

// knownErrors maps the error codes written by the server back to the
// constant errors they came from.
var knownErrors = map[string]error{}

func init() {
	for _, err := range []error{
		container.ErrEmptyContainer,
		container.ErrCapacityExceeded,
		container.ErrInvalidCapacity,
		containerservice.ErrContainerNotFound,
		containerservice.ErrUnknownKind,
		containerservice.ErrUnknownEnd,
		containerservice.ErrUnsupportedOperation,
	} {
		knownErrors[err.Error()] = err
	}
}

var _ Client = (*SimpleClient)(nil)

// SimpleClient implements Client.
type SimpleClient struct {
	baseURL string
	http    *http.Client
}

// NewSimpleClient returns a client for the service served at the
// address of config.
func NewSimpleClient(config containerservice.Config) *SimpleClient {
	return &SimpleClient{
		baseURL: "http://" + config.IP() + ":" + config.Port(),
		http:    &http.Client{},
	}
}

// Create makes a HTTP call to the server and allocates a container.
func (sc *SimpleClient) Create(kind containerservice.Kind, capacity int) (ulid.ULID, error) {
	var res routing.CreateResponse
	err := sc.do(http.MethodPost, "/containers", routing.CreateRequest{Kind: kind, Capacity: capacity}, &res)
	if err != nil {
		return ulid.ULID{}, err
	}
	return ulid.Parse(res.ID)
}

// Push makes a HTTP call to the server and pushes value.
func (sc *SimpleClient) Push(id ulid.ULID, end containerservice.End, value int) error {
	return sc.do(http.MethodPost, "/containers/"+id.String()+"/push", routing.PushRequest{End: end, Value: value}, nil)
}

// Pop makes a HTTP call to the server and pops a value.
func (sc *SimpleClient) Pop(id ulid.ULID, end containerservice.End) (int, error) {
	var res routing.ValueResponse
	err := sc.do(http.MethodPost, "/containers/"+id.String()+"/pop", routing.PopRequest{End: end}, &res)
	return res.Value, err
}

// Peek makes a HTTP call to the server and reads a value.
func (sc *SimpleClient) Peek(id ulid.ULID, end containerservice.End) (int, error) {
	var res routing.ValueResponse
	path := "/containers/" + id.String() + "/peek?end=" + url.QueryEscape(string(end))
	err := sc.do(http.MethodGet, path, nil, &res)
	return res.Value, err
}

// Items makes a HTTP call to the server and lists the live values.
func (sc *SimpleClient) Items(id ulid.ULID) ([]int, error) {
	var res routing.ItemsResponse
	if err := sc.do(http.MethodGet, "/containers/"+id.String(), nil, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// Drop makes a HTTP call to the server and removes the container.
func (sc *SimpleClient) Drop(id ulid.ULID) error {
	return sc.do(http.MethodDelete, "/containers/"+id.String(), nil, nil)
}

// do sends req as the JSON body and decodes the response into res
// when res isn't nil.
func (sc *SimpleClient) do(method, path string, req, res interface{}) error {
	var body io.Reader
	if req != nil {
		byteData, err := json.Marshal(req)
		if err != nil {
			return errors.Wrap(err, "encoding request")
		}
		body = bytes.NewReader(byteData)
	}

	httpReq, err := http.NewRequest(method, sc.baseURL+path, body)
	if err != nil {
		return err
	}
	resp, err := sc.http.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	byteData, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errRes routing.ErrorResponse
		if err := json.Unmarshal(byteData, &errRes); err != nil {
			return errors.Newf("%s %s: %s", method, path, resp.Status)
		}
		if known, ok := knownErrors[errRes.Code]; ok {
			return errors.Wrapf(known, "%s %s", method, path)
		}
		return errors.Newf("%s %s: %s", method, path, errRes.Error)
	}

	if res == nil {
		return nil
	}
	return errors.Wrap(json.Unmarshal(byteData, res), "decoding response")
}
