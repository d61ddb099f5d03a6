package rbtree

import (
	"cmp"

	"gfx.cafe/gfx/rbtree/lib/util/maths"
)

// IsValid reports whether the tree satisfies every red-black property.
// It walks the whole tree and is meant for tests and diagnostics.
func (T *Tree[K]) IsValid() bool {
	return T.Verify() == nil
}

// Verify returns a VerifyError describing the first violation found, or nil.
// Besides the color rules it checks parent links, key order and the size.
func (T *Tree[K]) Verify() error {
	if T.root == none {
		if T.size != 0 {
			return VerifyError{Reason: "empty tree with non-zero size"}
		}
		return nil
	}

	root := T.at(T.root)
	if root.parent != none {
		return VerifyError{Reason: "root has a parent", Key: root.key}
	}
	if root.color == Red {
		return VerifyError{Reason: "red root", Key: root.key}
	}

	v := verifier[K]{tree: T}
	if _, err := v.walk(T.root, nil, nil); err != nil {
		return err
	}
	if v.count != T.size {
		return VerifyError{Reason: "size does not match node count"}
	}
	return nil
}

type verifier[K maths.Ordered] struct {
	tree  *Tree[K]
	count int
}

// walk returns the black-height of n, counting absent children as one black
// level. lo and hi bound the keys allowed in the subtree.
func (T *verifier[K]) walk(n ref, lo, hi *K) (int, error) {
	if n == none {
		return 1, nil
	}
	T.count++

	x := T.tree.at(n)
	if lo != nil && !cmp.Less(*lo, x.key) {
		return 0, VerifyError{Reason: "key out of order", Key: x.key}
	}
	if hi != nil && !cmp.Less(x.key, *hi) {
		return 0, VerifyError{Reason: "key out of order", Key: x.key}
	}

	for _, c := range x.children {
		if c == none {
			continue
		}
		child := T.tree.at(c)
		if child.parent != n {
			return 0, VerifyError{Reason: "broken parent link", Key: child.key}
		}
		if x.color == Red && child.color == Red {
			return 0, VerifyError{Reason: "red node with red parent", Key: child.key}
		}
	}

	key := x.key
	lh, err := T.walk(x.children[left], lo, &key)
	if err != nil {
		return 0, err
	}
	rh, err := T.walk(x.children[right], &key, hi)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, VerifyError{Reason: "black-height mismatch", Key: key}
	}

	if x.color == Black {
		lh++
	}
	return lh, nil
}
