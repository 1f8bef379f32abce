package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))

	want := "Forward list elements: 0 1 2 3\n" +
		"List elements: 0 4 1 2 3\n" +
		"Deque elements: 20 10 30\n" +
		"Deque after popping: 10\n" +
		"Queue elements: 10 20 30\n" +
		"Priority queue elements: 20 10 5\n" +
		"Alice's age: 25\n" +
		"All ages:\n" +
		"Alice: 25\n" +
		"Bob: 30\n" +
		"Charlie: 35\n"
	assert.Equal(t, want, buf.String())
}
