package client

import (
	"net"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/SystemBuilders/Containers/internal/container"
	"github.com/SystemBuilders/Containers/internal/containerservice"
	"github.com/SystemBuilders/Containers/internal/routing"
	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *SimpleClient {
	t.Helper()
	log := zerolog.New(os.Stdout).With().Logger().Level(zerolog.GlobalLevel())
	cs := containerservice.NewSimpleContainerService(log)
	server := httptest.NewServer(routing.SetupRouting(cs, mux.NewRouter()))
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	return NewSimpleClient(containerservice.NewSimpleConfig(host, port))
}

func TestQueueRoundTrip(t *testing.T) {
	sc := startServer(t)

	id, err := sc.Create(containerservice.KindQueue, 3)
	require.NoError(t, err)

	for _, v := range []int{10, 20, 30} {
		require.NoError(t, sc.Push(id, "", v))
	}
	err = sc.Push(id, "", 40)
	assert.True(t, errors.Is(err, container.ErrCapacityExceeded), "got %v", err)

	items, err := sc.Items(id)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, items)

	front, err := sc.Peek(id, "")
	require.NoError(t, err)
	assert.Equal(t, 10, front)

	for _, want := range []int{10, 20, 30} {
		got, err := sc.Pop(id, containerservice.EndFront)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = sc.Pop(id, "")
	assert.True(t, errors.Is(err, container.ErrEmptyContainer), "got %v", err)

	require.NoError(t, sc.Drop(id))
	_, err = sc.Items(id)
	assert.True(t, errors.Is(err, containerservice.ErrContainerNotFound), "got %v", err)
}

func TestPriorityQueueRoundTrip(t *testing.T) {
	sc := startServer(t)

	id, err := sc.Create(containerservice.KindPriorityQueue, 0)
	require.NoError(t, err)
	for _, v := range []int{10, 5, 20} {
		require.NoError(t, sc.Push(id, "", v))
	}

	var got []int
	for i := 0; i < 3; i++ {
		v, err := sc.Pop(id, "")
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{20, 10, 5}, got)

	err = sc.Push(id, containerservice.EndBack, 1)
	assert.True(t, errors.Is(err, containerservice.ErrUnsupportedOperation), "got %v", err)

	_, err = sc.Create("graph", 0)
	assert.True(t, errors.Is(err, containerservice.ErrUnknownKind), "got %v", err)
}
