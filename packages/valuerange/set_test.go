package valuerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAdd(t *testing.T) {
	set := NewSet()
	assert.True(t, set.Add(newValueRange(Closed(1), Closed(2))))
	assert.True(t, set.Add(newValueRange(Closed(4), Closed(5))))
	assert.Equal(t, 2, set.Size())

	// a bridging range fuses every member it touches into a single one
	assert.True(t, set.Add(newValueRange(Open(2), Open(4))))
	assert.Equal(t, 1, set.Size())
	assert.Equal(t, []ValueRange{newValueRange(Closed(1), Closed(5))}, set.Ranges())

	// fully covered ranges do not change the Set
	assert.False(t, set.Add(newValueRange(Closed(2), Closed(3))))
	assert.False(t, set.Add(newValueRange(Closed(1), Closed(5))))
	assert.False(t, set.Add(Empty()))
	assert.Equal(t, 1, set.Size())

	// extending an existing member changes the Set without growing it
	assert.True(t, set.Add(newValueRange(Closed(5), Closed(6))))
	assert.Equal(t, 1, set.Size())
	assert.Equal(t, []ValueRange{newValueRange(Closed(1), Closed(6))}, set.Ranges())

	assert.True(t, set.Add(Everything()))
	assert.Equal(t, []ValueRange{Everything()}, set.Ranges())
}

func TestSetOrdering(t *testing.T) {
	set := NewSet(
		newValueRange(Closed(10), Closed(11)),
		newValueRange(Closed(1), Closed(2)),
		newValueRange(Open(5), Open(6)),
	)

	assert.Equal(t, []ValueRange{
		newValueRange(Closed(1), Closed(2)),
		newValueRange(Open(5), Open(6)),
		newValueRange(Closed(10), Closed(11)),
	}, set.Ranges())
}

func TestSetContains(t *testing.T) {
	set := NewSet(
		newValueRange(Closed(1), Closed(2)),
		newValueRange(Open(5), Open(6)),
	)

	assert.True(t, set.Contains(1))
	assert.True(t, set.Contains(5.5))
	assert.False(t, set.Contains(5))
	assert.False(t, set.Contains(3))
	assert.False(t, NewSet().Contains(3))
}

func TestSetForEach(t *testing.T) {
	set := NewSet(
		newValueRange(Closed(1), Closed(2)),
		newValueRange(Closed(4), Closed(5)),
	)

	visited := 0
	assert.True(t, set.ForEach(func(valueRange ValueRange) bool {
		visited++
		return true
	}))
	assert.Equal(t, 2, visited)

	visited = 0
	assert.False(t, set.ForEach(func(valueRange ValueRange) bool {
		visited++
		return false
	}))
	assert.Equal(t, 1, visited)
}

func TestSetCloneEquals(t *testing.T) {
	set := NewSet(
		newValueRange(Closed(1), Closed(2)),
		newValueRange(Closed(4), Closed(5)),
	)

	clonedSet := set.Clone()
	assert.True(t, set.Equals(clonedSet))

	clonedSet.Add(newValueRange(Closed(7), Closed(8)))
	assert.False(t, set.Equals(clonedSet))
	assert.Equal(t, 2, set.Size())
}

func TestSetFromBytes(t *testing.T) {
	set := NewSet(
		newValueRange(Closed(1), Closed(2)),
		newValueRange(Open(5), Unbound()),
	)

	marshaledSet := set.Bytes()
	unmarshaledSet, consumedBytes, err := SetFromBytes(marshaledSet)
	require.NoError(t, err)
	assert.Equal(t, len(marshaledSet), consumedBytes)
	assert.True(t, set.Equals(unmarshaledSet))
}
