package tree

import (
	"errors"
	"fmt"
)

// ErrNilRoot is returned by NewTree when no root node is supplied.
var ErrNilRoot = errors.New("tree: nil root node")

// Tree decorates a root Node. A Tree always has exactly one root; the root
// reference is fixed at construction, though the root's contents may be
// mutated through it.
type Tree[T comparable] struct {
	root *Node[T]
}

// NewTree returns a Tree over root.
func NewTree[T comparable](root *Node[T]) (*Tree[T], error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	return &Tree[T]{root: root}, nil
}

// Root returns the root node. Mutating it mutates the tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Flatten returns a newly allocated slice of every node in the tree exactly
// once, in pre-order: a node precedes its children, and each child's entire
// subtree precedes the next sibling. The nodes themselves are not copied.
// The walk is iterative, so tree depth cannot exhaust the goroutine stack.
func (t *Tree[T]) Flatten() []*Node[T] {
	out := make([]*Node[T], 0, 1+t.root.DescendantCount())
	t.Walk(func(n *Node[T]) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Walk visits every node in pre-order, stopping early if visit returns false.
func (t *Tree[T]) Walk(visit func(*Node[T]) bool) {
	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

// Equal reports structural equality of the two trees' root nodes.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if t == other {
		return true
	}
	if other == nil {
		return false
	}
	return t.root.Equal(other.root)
}

// Hash returns the root node's structural hash.
func (t *Tree[T]) Hash() uint64 {
	return t.root.Hash()
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("Tree[root=%s]", t.root)
}
