package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LinearScanMap(t *testing.T) {
	ages := NewLinearScanMap[string, int]()
	ages.Insert("Alice", 25)
	ages.Insert("Bob", 30)
	ages.Insert("Charlie", 35)

	age, err := ages.Get("Alice")
	require.NoError(t, err)
	assert.Equal(t, 25, age)
	assert.Equal(t, "Alice: 25\nBob: 30\nCharlie: 35\n", ages.String())

	_, err = ages.Get("Dave")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.False(t, ages.Contains("Dave"))
}

func Test_LinearScanMapOverwrite(t *testing.T) {
	m := NewLinearScanMap[string, int]()
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("a", 3)

	assert.Equal(t, 2, m.Len())
	var keys []string
	var values []int
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"a", "b"}, keys, "overwrite must keep the original position")
	assert.Equal(t, []int{3, 2}, values)
}

func Test_LinearScanMapDelete(t *testing.T) {
	m := NewLinearScanMap[int, string]()
	for i, s := range []string{"zero", "one", "two"} {
		m.Insert(i, s)
	}

	assert.True(t, m.Delete(1))
	assert.False(t, m.Delete(1))
	assert.Equal(t, "0: zero\n2: two\n", m.String())

	m.Insert(1, "uno")
	v, err := m.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "uno", v)
}
