package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ForwardListHeadInsertionOrder(t *testing.T) {
	fl := NewForwardList[int]()
	fl.PushFront(3)
	fl.PushFront(2)
	fl.PushFront(1)
	fl.PushFront(0)

	assert.Equal(t, []int{0, 1, 2, 3}, fl.Values())
	assert.Equal(t, "0 1 2 3", fl.String())
	assert.Equal(t, 4, fl.Len())

	// The walk is restartable.
	assert.Equal(t, fl.Values(), fl.Values())
}

func Test_ForwardListEarlyStop(t *testing.T) {
	fl := NewForwardList[string]()
	for _, v := range []string{"c", "b", "a"} {
		fl.PushFront(v)
	}

	var seen []string
	for v := range fl.All() {
		seen = append(seen, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func Test_ForwardListPopFront(t *testing.T) {
	var fl ForwardList[int]
	_, err := fl.Front()
	assert.ErrorIs(t, err, ErrEmptyContainer)

	for i := 0; i < 3; i++ {
		fl.PushFront(i)
	}
	front, err := fl.Front()
	require.NoError(t, err)
	assert.Equal(t, 2, front)

	for _, want := range []int{2, 1, 0} {
		got, err := fl.PopFront()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, fl.IsEmpty())

	_, err = fl.PopFront()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func Test_ForwardListClear(t *testing.T) {
	fl := NewForwardList[int]()
	for i := 0; i < 10; i++ {
		fl.PushFront(i)
	}

	var nodes []*SingleNode[int]
	for n := fl.Head(); n != nil; n = n.Next() {
		nodes = append(nodes, n)
	}
	require.Len(t, nodes, 10)

	assert.Equal(t, 10, fl.Clear())
	assert.True(t, fl.IsEmpty())
	assert.Equal(t, 0, fl.Len())
	for i, n := range nodes {
		assert.Nil(t, n.Next(), "node %d still linked after clear", i)
	}

	// A cleared list has nothing left to release.
	assert.Equal(t, 0, fl.Clear())
}
