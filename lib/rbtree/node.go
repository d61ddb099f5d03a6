package rbtree

import "gfx.cafe/gfx/rbtree/lib/util/maths"

// Node is a read-only handle to a node of a Tree. It is invalidated by the
// next Insert or Remove.
type Node[K maths.Ordered] struct {
	tree *Tree[K]
	ref  ref
}

func (T Node[K]) IsNil() bool {
	return T.tree == nil || T.ref == none
}

// Key panics on a nil Node.
func (T Node[K]) Key() K {
	assert(!T.IsNil(), "Key of nil node")
	return T.tree.nodes[T.ref].key
}

// Color returns Black for a nil Node.
func (T Node[K]) Color() Color {
	if T.IsNil() {
		return Black
	}
	return T.tree.nodes[T.ref].color
}

func (T Node[K]) link(get func(*node[K]) ref) Node[K] {
	if T.IsNil() {
		return Node[K]{}
	}
	return Node[K]{tree: T.tree, ref: get(T.tree.at(T.ref))}
}

func (T Node[K]) Parent() Node[K] {
	return T.link(func(n *node[K]) ref { return n.parent })
}

func (T Node[K]) Left() Node[K] {
	return T.link(func(n *node[K]) ref { return n.children[left] })
}

func (T Node[K]) Right() Node[K] {
	return T.link(func(n *node[K]) ref { return n.children[right] })
}
