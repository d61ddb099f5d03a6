package rbtree

// rotate moves n one level down towards d and promotes its child on the
// other side into n's place. Colors are left alone.
func (T *Tree[K]) rotate(n ref, d side) error {
	if n == none {
		return RotationError{Direction: d.name()}
	}
	up := T.at(n).children[d.opposite()]
	if up == none {
		return RotationError{Direction: d.name()}
	}

	// inner subtree of the promoted node moves across to n
	inner := T.at(up).children[d]
	T.at(n).children[d.opposite()] = inner
	if inner != none {
		T.at(inner).parent = n
	}

	p := T.at(n).parent
	T.at(up).parent = p
	T.replaceChild(p, n, up)

	T.at(up).children[d] = n
	T.at(n).parent = up

	if d == left {
		T.emit(EventRotateLeft)
	} else {
		T.emit(EventRotateRight)
	}
	return nil
}

func (T *Tree[K]) rotateLeft(n ref) error {
	return T.rotate(n, left)
}

func (T *Tree[K]) rotateRight(n ref) error {
	return T.rotate(n, right)
}

// mustRotate is used by the fixups, where a failed rotation means the tree
// was already corrupt.
func (T *Tree[K]) mustRotate(n ref, d side) {
	if err := T.rotate(n, d); err != nil {
		panic(err)
	}
}

func (T side) name() string {
	if T == left {
		return "left"
	}
	return "right"
}
