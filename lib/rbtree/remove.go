package rbtree

// Remove deletes key from the tree and reports whether it was present.
// Removing an absent key is a no-op.
func (T *Tree[K]) Remove(key K) bool {
	n, found := T.locate(key)
	if !found {
		T.emit(EventRemoveMiss)
		return false
	}

	x := T.at(n)
	if x.children[left] != none && x.children[right] != none {
		// take over the successor's key and splice out the successor, which
		// has no left child
		s := T.min(x.children[right])
		x.key = T.at(s).key
		n = s
	}

	T.splice(n)
	T.release(n)
	T.size--
	T.emit(EventRemove)
	return true
}

func (T *Tree[K]) min(n ref) ref {
	for T.at(n).children[left] != none {
		n = T.at(n).children[left]
	}
	return n
}

// splice unlinks n, which has at most one child, and rebalances.
func (T *Tree[K]) splice(n ref) {
	x := T.at(n)
	assert(x.children[left] == none || x.children[right] == none, "splice of a node with two children")

	child := x.children[left]
	if child == none {
		child = x.children[right]
	}

	p := x.parent
	var d side
	if p != none {
		d = T.sideOf(n)
	}

	if child != none {
		T.at(child).parent = p
	}
	T.replaceChild(p, n, child)

	T.removeFixup(p, d, x.color)
}

// removeFixup repairs the black-height deficit left at a position after a
// node of color removed was spliced out. The position is the child slot d of
// p, or the root when p is none; it may be empty.
func (T *Tree[K]) removeFixup(p ref, d side, removed Color) {
	if removed == Red {
		return
	}

	for {
		var n ref
		if p == none {
			n = T.root
		} else {
			n = T.at(p).children[d]
		}

		if T.colorOf(n) == Red {
			// absorb the missing black
			T.at(n).color = Black
			return
		}
		if p == none {
			return
		}

		sibling := T.at(p).children[d.opposite()]
		assert(sibling != none, "black-height deficit without a sibling")

		if T.at(sibling).color == Red {
			T.at(sibling).color = Black
			T.at(p).color = Red
			T.mustRotate(p, d)
			T.emit(EventRemoveSiblingRed)
			// p is still the parent of the position; the new sibling is black
			continue
		}

		near := T.at(sibling).children[d]
		far := T.at(sibling).children[d.opposite()]

		if T.colorOf(near) == Black && T.colorOf(far) == Black {
			T.at(sibling).color = Red
			T.emit(EventRemoveRecolor)
			// the deficit moves up to p
			g := T.at(p).parent
			if g != none {
				d = T.sideOf(p)
			}
			p = g
			continue
		}

		if T.colorOf(far) == Black {
			T.at(sibling).color = Red
			T.at(near).color = Black
			T.mustRotate(sibling, d.opposite())
			T.emit(EventRemoveNearNephew)
			continue
		}

		T.at(sibling).color = T.at(p).color
		T.at(p).color = Black
		T.at(far).color = Black
		T.mustRotate(p, d)
		T.emit(EventRemoveFarNephew)
		return
	}
}
