package collections

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexMapPutGet(t *testing.T) {
	m := NewIndexMap[string]()

	_, replaced := m.Put(3, "c")
	assert.False(t, replaced)
	m.Put(1, "a")
	m.Put(2, "b")

	v, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = m.Get(9)
	assert.False(t, ok)
	assert.Equal(t, 3, m.Len())

	prev, replaced := m.Put(2, "z")
	assert.True(t, replaced)
	assert.Equal(t, "b", prev)
	assert.Equal(t, 3, m.Len())
}

func TestIndexMapReverseLookup(t *testing.T) {
	m := NewIndexMap[string]()
	m.Put(5, "x")
	m.Put(2, "x")
	m.Put(8, "y")

	k, ok := m.KeyOf("x")
	require.True(t, ok)
	assert.Equal(t, 2, k, "reverse lookup must return the smallest key")

	k, ok = m.KeyOf("y")
	require.True(t, ok)
	assert.Equal(t, 8, k)

	_, ok = m.KeyOf("missing")
	assert.False(t, ok)
}

func TestIndexMapIndexMaintainedOnDelete(t *testing.T) {
	m := NewIndexMap[string]()
	m.Put(2, "x")
	m.Put(5, "x")
	m.Put(9, "x")

	require.True(t, m.Delete(2))
	k, ok := m.KeyOf("x")
	require.True(t, ok)
	assert.Equal(t, 5, k, "index must move to the next-smallest key")

	require.True(t, m.Delete(5))
	require.True(t, m.Delete(9))
	_, ok = m.KeyOf("x")
	assert.False(t, ok, "index entry must vanish with the last holder")

	assert.False(t, m.Delete(2), "double delete")
	assert.Equal(t, 0, m.Len())
}

func TestIndexMapIndexMaintainedOnReplace(t *testing.T) {
	m := NewIndexMap[string]()
	m.Put(1, "x")
	m.Put(4, "x")

	// Overwriting the indexed key's value must re-point the index.
	m.Put(1, "y")
	k, ok := m.KeyOf("x")
	require.True(t, ok)
	assert.Equal(t, 4, k, "index must not point at a key that no longer holds the value")
	k, ok = m.KeyOf("y")
	require.True(t, ok)
	assert.Equal(t, 1, k)

	// The indexed key must actually hold the looked-up value.
	v, ok := m.Get(4)
	require.True(t, ok)
	assert.Equal(t, "x", v)

	// Replacing with the same value leaves the index untouched.
	prev, replaced := m.Put(4, "x")
	assert.True(t, replaced)
	assert.Equal(t, "x", prev)
	k, ok = m.KeyOf("x")
	require.True(t, ok)
	assert.Equal(t, 4, k)
}

func TestIndexMapOrderedAccessors(t *testing.T) {
	m := NewIndexMap[string]()
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	if diff := cmp.Diff([]int{1, 2, 3}, m.Keys()); diff != "" {
		t.Fatalf("Keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, m.Values()); diff != "" {
		t.Fatalf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexMapClearEqual(t *testing.T) {
	a := NewIndexMap[int]()
	b := NewIndexMap[int]()
	a.Put(1, 10)
	b.Put(1, 10)

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))

	b.Put(2, 20)
	assert.False(t, a.Equal(b))

	b.Clear()
	assert.Equal(t, 0, b.Len())
	_, ok := b.KeyOf(10)
	assert.False(t, ok)
}
