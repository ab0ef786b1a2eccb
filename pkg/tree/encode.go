package tree

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// NodeSpec is the wire form of a Node, usable with JSON and YAML. A nil
// Data marshals as an absent field, round-tripping the absent-data state.
type NodeSpec[T comparable] struct {
	Data     *T            `json:"data,omitempty" yaml:"data,omitempty"`
	Children []NodeSpec[T] `json:"children,omitempty" yaml:"children,omitempty"`
}

// Spec returns the wire form of the subtree rooted at n. Data values are
// copied; the result does not alias the tree. The conversion walks with an
// explicit stack, like the package's other traversals.
func (n *Node[T]) Spec() NodeSpec[T] {
	var root NodeSpec[T]
	type frame struct {
		node *Node[T]
		out  *NodeSpec[T]
	}
	stack := []frame{{node: n, out: &root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node.data != nil {
			d := *f.node.data
			f.out.Data = &d
		}
		if len(f.node.children) > 0 {
			f.out.Children = make([]NodeSpec[T], len(f.node.children))
			for i, child := range f.node.children {
				stack = append(stack, frame{node: child, out: &f.out.Children[i]})
			}
		}
	}
	return root
}

// FromSpec builds a new subtree from its wire form.
func FromSpec[T comparable](s NodeSpec[T]) *Node[T] {
	root := New[T]()
	type frame struct {
		spec *NodeSpec[T]
		node *Node[T]
	}
	stack := []frame{{spec: &s, node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.spec.Data != nil {
			f.node.SetData(*f.spec.Data)
		}
		if len(f.spec.Children) > 0 {
			children := make([]*Node[T], len(f.spec.Children))
			for i := range f.spec.Children {
				children[i] = New[T]()
				stack = append(stack, frame{spec: &f.spec.Children[i], node: children[i]})
			}
			f.node.SetChildren(children)
		}
	}
	return root
}

func (n *Node[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Spec())
}

func (n *Node[T]) UnmarshalJSON(data []byte) error {
	var s NodeSpec[T]
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = *FromSpec(s)
	return nil
}

func (n *Node[T]) MarshalYAML() (any, error) {
	return n.Spec(), nil
}

func (n *Node[T]) UnmarshalYAML(value *yaml.Node) error {
	var s NodeSpec[T]
	if err := value.Decode(&s); err != nil {
		return err
	}
	*n = *FromSpec(s)
	return nil
}

func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return t.root.MarshalJSON()
}

func (t *Tree[T]) UnmarshalJSON(data []byte) error {
	root := New[T]()
	if err := root.UnmarshalJSON(data); err != nil {
		return err
	}
	t.root = root
	return nil
}

func (t *Tree[T]) MarshalYAML() (any, error) {
	return t.root.MarshalYAML()
}

func (t *Tree[T]) UnmarshalYAML(value *yaml.Node) error {
	root := New[T]()
	if err := root.UnmarshalYAML(value); err != nil {
		return err
	}
	t.root = root
	return nil
}
