// Package tree provides a generic rooted, ordered, unbalanced n-ary tree.
// A Node owns its data value and its child list exclusively; a Tree is a
// thin handle over a root Node providing pre-order traversal. Neither type
// is safe for concurrent mutation. Nothing guards against cycles: a node
// inserted as its own descendant makes traversal non-terminating, so
// callers must not build cyclic structures.
package tree

import (
	"fmt"
	"hash/fnv"

	"utilkit/pkg/strbuild"
)

// Node is one vertex of a tree. The zero data state is "absent", which is
// distinct from holding the zero value of T.
type Node[T comparable] struct {
	data     *T
	children []*Node[T]
}

// New returns a leaf node with absent data.
func New[T comparable]() *Node[T] {
	return &Node[T]{}
}

// NewNode returns a leaf node holding data.
func NewNode[T comparable](data T) *Node[T] {
	return &Node[T]{data: &data}
}

// NewNodeChildren returns a node holding data with the given children, in order.
func NewNodeChildren[T comparable](data T, children ...*Node[T]) *Node[T] {
	return &Node[T]{data: &data, children: children}
}

// Data returns the node's data value and whether one is present.
func (n *Node[T]) Data() (T, bool) {
	if n.data == nil {
		var zero T
		return zero, false
	}
	return *n.data, true
}

// MustData returns the node's data value, or the zero value of T when absent.
func (n *Node[T]) MustData() T {
	v, _ := n.Data()
	return v
}

// SetData replaces the node's data value.
func (n *Node[T]) SetData(data T) {
	n.data = &data
}

// ClearData removes the node's data value, returning it to the absent state.
func (n *Node[T]) ClearData() {
	n.data = nil
}

// Children returns the live backing slice of child nodes. Mutating an
// element mutates the tree. Because appending to the returned slice may
// reallocate without the node observing it, growth must go through
// AddChildren or SetChildren.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// SetChildren replaces the entire child slice.
func (n *Node[T]) SetChildren(children []*Node[T]) {
	n.children = children
}

// AddChildren appends child nodes in the given order.
func (n *Node[T]) AddChildren(children ...*Node[T]) {
	n.children = append(n.children, children...)
}

// DescendantCount returns the number of strict descendants of n. A leaf
// returns 0. The walk uses an explicit stack, so depth is bounded by heap
// rather than by the goroutine stack.
func (n *Node[T]) DescendantCount() int {
	count := 0
	stack := make([]*Node[T], len(n.children))
	copy(stack, n.children)
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, next.children...)
	}
	return count
}

// Equal reports structural equality: the data values are equal (or both
// absent) and the child slices are pairwise Equal in order.
func (n *Node[T]) Equal(other *Node[T]) bool {
	type pair struct {
		a, b *Node[T]
	}
	stack := []pair{{n, other}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case p.a == p.b:
			continue
		case p.a == nil || p.b == nil:
			return false
		}
		if (p.a.data == nil) != (p.b.data == nil) {
			return false
		}
		if p.a.data != nil && *p.a.data != *p.b.data {
			return false
		}
		if len(p.a.children) != len(p.b.children) {
			return false
		}
		for i := range p.a.children {
			stack = append(stack, pair{p.a.children[i], p.b.children[i]})
		}
	}
	return true
}

// hash markers keep the digest sensitive to tree shape, not just to the
// pre-order data sequence.
const (
	hashAbsent byte = 0x00
	hashValue  byte = 0x01
	hashOpen   byte = 0x02
	hashClose  byte = 0x03
)

// Hash returns a deterministic FNV-1a digest of the subtree rooted at n.
// Nodes that are Equal hash identically; child order matters.
func (n *Node[T]) Hash() uint64 {
	h := fnv.New64a()
	type frame struct {
		node *Node[T]
		end  bool
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.end {
			h.Write([]byte{hashClose})
			continue
		}
		if f.node.data == nil {
			h.Write([]byte{hashAbsent})
		} else {
			h.Write([]byte{hashValue})
			fmt.Fprintf(h, "%v", *f.node.data)
		}
		h.Write([]byte{hashOpen})
		stack = append(stack, frame{end: true})
		for i := len(f.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.children[i]})
		}
	}
	return h.Sum64()
}

// String returns a diagnostic representation of the subtree. The format is
// for humans and logs, not for parsing.
func (n *Node[T]) String() string {
	b := strbuild.New()
	type frame struct {
		node *Node[T]
		text string
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil {
			b.Append(f.text)
			continue
		}
		b.Append("Node[data=")
		if f.node.data == nil {
			b.Append("<none>")
		} else {
			b.Appendf("%v", *f.node.data)
		}
		b.Append(", children=[")
		stack = append(stack, frame{text: "]]"})
		for i := len(f.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.children[i]})
			if i > 0 {
				stack = append(stack, frame{text: ", "})
			}
		}
	}
	return b.String()
}
