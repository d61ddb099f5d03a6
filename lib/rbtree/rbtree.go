// Package rbtree is a red-black binary search tree over ordered keys.
//
// Nodes are stored in an arena and linked by index, so relinking never
// touches pointers and released slots are recycled by later insertions.
// A Tree is not safe for concurrent use.
package rbtree

import (
	"cmp"

	"gfx.cafe/gfx/rbtree/lib/util/maths"
	"gfx.cafe/gfx/rbtree/lib/util/pools"
)

type Color bool

const (
	Black Color = false
	Red   Color = true
)

func (T Color) String() string {
	if T == Red {
		return "red"
	}
	return "black"
}

func (T Color) short() string {
	if T == Red {
		return "r"
	}
	return "b"
}

type side uint8

const (
	left side = iota
	right
)

func (T side) opposite() side {
	return 1 - T
}

// ref is an arena index. Slot 0 is reserved and means absent.
type ref uint32

const none ref = 0

type node[K maths.Ordered] struct {
	key      K
	color    Color
	parent   ref
	children [2]ref
}

type Options struct {
	// Observer receives every structural event. May be nil.
	Observer Observer
	// Capacity preallocates room for this many keys.
	Capacity int
}

// Tree is a red-black tree. The zero value is an empty tree.
type Tree[K maths.Ordered] struct {
	nodes []node[K]
	// released slots
	free pools.Pool[ref]
	root ref
	size int

	observer Observer
}

func NewTree[K maths.Ordered](options Options) *Tree[K] {
	T := &Tree[K]{
		observer: options.Observer,
	}
	if options.Capacity > 0 {
		T.nodes = make([]node[K], 1, options.Capacity+1)
	}
	return T
}

func (T *Tree[K]) alloc(key K, color Color) ref {
	if n, ok := T.free.Get(); ok {
		T.nodes[n] = node[K]{key: key, color: color}
		return n
	}
	if len(T.nodes) == 0 {
		T.nodes = append(T.nodes, node[K]{})
	}
	if uint64(len(T.nodes)) > uint64(^ref(0)) {
		panic("rbtree: arena exhausted")
	}
	T.nodes = append(T.nodes, node[K]{key: key, color: color})
	return ref(len(T.nodes) - 1)
}

func (T *Tree[K]) release(n ref) {
	T.nodes[n] = node[K]{}
	T.free.Put(n)
}

func (T *Tree[K]) at(n ref) *node[K] {
	return &T.nodes[n]
}

// colorOf treats absent children as black.
func (T *Tree[K]) colorOf(n ref) Color {
	if n == none {
		return Black
	}
	return T.nodes[n].color
}

// sideOf reports which child slot of its parent n occupies. n must have a parent.
func (T *Tree[K]) sideOf(n ref) side {
	p := T.nodes[n].parent
	assert(p != none, "sideOf called on the root")
	if T.nodes[p].children[left] == n {
		return left
	}
	return right
}

// replaceChild points whatever referenced old (the root slot or a child slot
// of p) at n instead. It does not touch n's parent link.
func (T *Tree[K]) replaceChild(p, old, n ref) {
	if p == none {
		T.root = n
		return
	}
	parent := T.at(p)
	if parent.children[left] == old {
		parent.children[left] = n
	} else {
		parent.children[right] = n
	}
}

func (T *Tree[K]) emit(event Event) {
	if T.observer != nil {
		T.observer.Observe(event, T.size)
	}
}

// locate descends from the root. Keys are ordered by cmp.Compare, so NaN is
// a single key below every other float. It returns the node holding key and true,
// or the last node visited and false. The result is none only for an empty
// tree.
func (T *Tree[K]) locate(key K) (ref, bool) {
	n, last := T.root, none
	for n != none {
		last = n
		x := T.at(n)
		switch c := cmp.Compare(key, x.key); {
		case c < 0:
			n = x.children[left]
		case c > 0:
			n = x.children[right]
		default:
			return n, true
		}
	}
	return last, false
}

// Locate returns the node holding key and true. Otherwise it returns the node
// key would be attached under and false, which is a nil Node when the tree is
// empty.
func (T *Tree[K]) Locate(key K) (Node[K], bool) {
	n, ok := T.locate(key)
	return Node[K]{tree: T, ref: n}, ok
}

func (T *Tree[K]) Contains(key K) bool {
	_, ok := T.locate(key)
	return ok
}

// Size returns the number of keys in the tree.
func (T *Tree[K]) Size() int {
	return T.size
}

func (T *Tree[K]) Root() Node[K] {
	return Node[K]{tree: T, ref: T.root}
}

// Reset removes every key. The arena is kept for reuse.
func (T *Tree[K]) Reset() {
	clear(T.nodes)
	if len(T.nodes) > 0 {
		T.nodes = T.nodes[:1]
	}
	T.free.Clear()
	T.root = none
	T.size = 0
}

func assert(ok bool, msg string) {
	if !ok {
		panic("rbtree: assertion failed: " + msg)
	}
}
