package rbtree

import (
	"fmt"
	"io"
	"strings"

	"gfx.cafe/gfx/rbtree/lib/util/ring"
)

// levels visits the tree breadth first, calling fn once per depth with the
// nodes at that depth from left to right.
func (T *Tree[K]) levels(fn func(depth int, row []ref) error) error {
	if T.root == none {
		return nil
	}

	// no level of a valid tree is wider than half its nodes, rounded up
	width := T.size/2 + 1
	queue := ring.MakeRing[ref](width)
	row := make([]ref, 0, width)
	queue.PushBack(T.root)
	for depth := 0; queue.Length() > 0; depth++ {
		row = row[:0]
		for i, n := 0, queue.Length(); i < n; i++ {
			r, _ := queue.PopFront()
			row = append(row, r)
			x := T.at(r)
			if x.children[left] != none {
				queue.PushBack(x.children[left])
			}
			if x.children[right] != none {
				queue.PushBack(x.children[right])
			}
		}
		if err := fn(depth, row); err != nil {
			return err
		}
	}
	return nil
}

// Height returns the number of nodes on the longest root to leaf path.
func (T *Tree[K]) Height() int {
	var height int
	_ = T.levels(func(depth int, _ []ref) error {
		height = depth + 1
		return nil
	})
	return height
}

// Print writes a level-order dump of the tree, one row per depth. Each node
// is written as key.color.p:parentKey with the root's parent shown as null.
func (T *Tree[K]) Print(w io.Writer) error {
	var b strings.Builder
	return T.levels(func(_ int, row []ref) error {
		b.Reset()
		for _, r := range row {
			x := T.at(r)
			parent := "null"
			if x.parent != none {
				parent = fmt.Sprint(T.at(x.parent).key)
			}
			fmt.Fprintf(&b, "%v.%s.p:%s\t", x.key, x.color.short(), parent)
		}
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func (T *Tree[K]) String() string {
	var b strings.Builder
	_ = T.Print(&b)
	return b.String()
}
