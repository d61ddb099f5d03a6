package rbtree

import "cmp"

// Insert adds key to the tree. Inserting a key that is already present
// returns a DuplicateKeyError and leaves the tree unchanged.
func (T *Tree[K]) Insert(key K) error {
	p, found := T.locate(key)
	if found {
		T.emit(EventDuplicate)
		return DuplicateKeyError[K]{Key: key}
	}

	if p == none {
		T.root = T.alloc(key, Black)
		T.size++
		T.emit(EventInsert)
		return nil
	}

	n := T.alloc(key, Red)
	T.at(n).parent = p
	if cmp.Less(key, T.at(p).key) {
		T.at(p).children[left] = n
	} else {
		T.at(p).children[right] = n
	}

	T.size++
	T.insertFixup(n)
	T.emit(EventInsert)
	return nil
}

// insertFixup restores the no-red-red rule after n was attached red.
func (T *Tree[K]) insertFixup(n ref) {
	for n != T.root {
		p := T.at(n).parent
		if T.at(p).color != Red {
			break
		}

		// a red parent is never the root, so the grandparent exists and is black
		g := T.at(p).parent
		assert(g != none, "red node without grandparent")
		assert(T.at(g).color == Black, "red grandparent under red parent")

		ps := T.sideOf(p)
		uncle := T.at(g).children[ps.opposite()]

		if T.colorOf(uncle) == Red {
			T.at(p).color = Black
			T.at(uncle).color = Black
			T.at(g).color = Red
			T.emit(EventInsertRecolor)
			n = g
			continue
		}

		if T.sideOf(n) != ps {
			// inner grandchild, straighten it out first
			T.mustRotate(p, ps)
			n, p = p, n
		}

		T.at(p).color = Black
		T.at(g).color = Red
		T.mustRotate(g, ps.opposite())
		T.emit(EventInsertRotate)
		break
	}

	T.at(T.root).color = Black
}
