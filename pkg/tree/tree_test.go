package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTreeNilRoot(t *testing.T) {
	tr, err := NewTree[int](nil)
	assert.Nil(t, tr)
	assert.True(t, errors.Is(err, ErrNilRoot))
}

func TestFlattenPreOrder(t *testing.T) {
	r, a, b, c := buildSample()
	tr, err := NewTree(r)
	require.NoError(t, err)

	got := tr.Flatten()
	require.Len(t, got, 4)
	assert.Same(t, r, got[0], "first element must be the root")
	assert.Equal(t, []*Node[int]{r, a, b, c}, got)
	assert.Equal(t, 1+r.DescendantCount(), len(got))
}

func TestFlattenSubtreeContiguity(t *testing.T) {
	// For a node with children [c1, c2], c1's entire subtree must appear
	// between the node and c2.
	c1 := NewNodeChildren(10, NewNode(11), NewNode(12))
	c2 := NewNode(20)
	root := NewNodeChildren(1, c1, c2)
	tr, err := NewTree(root)
	require.NoError(t, err)

	var order []int
	for _, n := range tr.Flatten() {
		order = append(order, n.MustData())
	}
	assert.Equal(t, []int{1, 10, 11, 12, 20}, order)
}

func TestFlattenSingleNode(t *testing.T) {
	n := New[string]()
	tr, err := NewTree(n)
	require.NoError(t, err)

	got := tr.Flatten()
	require.Len(t, got, 1)
	assert.Same(t, n, got[0])
	assert.Equal(t, 0, n.DescendantCount())
	assert.True(t, tr.Equal(tr))
}

func TestFlattenReturnsNewSlice(t *testing.T) {
	r, _, _, _ := buildSample()
	tr, err := NewTree(r)
	require.NoError(t, err)

	first := tr.Flatten()
	second := tr.Flatten()
	require.Equal(t, first, second)
	// Mutating one result must not affect a later traversal.
	first[0] = nil
	assert.Same(t, r, tr.Flatten()[0])
}

func TestFlattenDeep(t *testing.T) {
	const depth = 200_000
	root := NewNode(0)
	n := root
	for i := 1; i < depth; i++ {
		child := NewNode(i)
		n.AddChildren(child)
		n = child
	}
	tr, err := NewTree(root)
	require.NoError(t, err)
	assert.Len(t, tr.Flatten(), depth)
}

func TestWalkEarlyStop(t *testing.T) {
	r, _, _, _ := buildSample()
	tr, err := NewTree(r)
	require.NoError(t, err)

	visited := 0
	tr.Walk(func(n *Node[int]) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}

func TestTreeEqualHash(t *testing.T) {
	r1, _, _, _ := buildSample()
	r2, _, _, _ := buildSample()
	t1, err := NewTree(r1)
	require.NoError(t, err)
	t2, err := NewTree(r2)
	require.NoError(t, err)

	assert.True(t, t1.Equal(t2))
	assert.Equal(t, t1.Hash(), t2.Hash())
	assert.False(t, t1.Equal(nil))

	r2.SetData(99)
	assert.False(t, t1.Equal(t2))
}

func TestTreeMutationThroughRoot(t *testing.T) {
	r, _, _, _ := buildSample()
	tr, err := NewTree(r)
	require.NoError(t, err)

	tr.Root().AddChildren(NewNode(7))
	assert.Len(t, tr.Flatten(), 5)
}

func TestTreeRoundTripRebuild(t *testing.T) {
	// Rebuilding a tree from its flattened shape yields an equal tree.
	r, _, _, _ := buildSample()
	tr, err := NewTree(r)
	require.NoError(t, err)

	rebuilt, err := NewTree(FromSpec(tr.Root().Spec()))
	require.NoError(t, err)
	assert.True(t, tr.Equal(rebuilt))
	assert.Equal(t, tr.Hash(), rebuilt.Hash())
}
