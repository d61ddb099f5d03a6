package rbtree

import "testing"

func assertCount(t *testing.T, c *Counter, event Event, count int) {
	t.Helper()
	if v := c.Count(event); v != count {
		t.Error("expected", count, event, "events but got", v)
	}
}

func TestObserver_Events(t *testing.T) {
	var counter Counter
	tree := NewTree[int](Options{Observer: &counter})

	// ascending keys force a single left rotation at the root
	for _, k := range []int{1, 2, 3} {
		_ = tree.Insert(k)
	}
	assertCount(t, &counter, EventInsert, 3)
	assertCount(t, &counter, EventRotateLeft, 1)
	assertCount(t, &counter, EventInsertRotate, 1)
	assertCount(t, &counter, EventRotateRight, 0)

	_ = tree.Insert(2)
	assertCount(t, &counter, EventDuplicate, 1)

	tree.Remove(5)
	assertCount(t, &counter, EventRemoveMiss, 1)

	// red leaf, no fixup
	tree.Remove(1)
	assertCount(t, &counter, EventRemove, 1)
	assertCount(t, &counter, EventRemoveRecolor, 0)

	// no uncle, so 4 rotates in under 3
	_ = tree.Insert(4)
	assertCount(t, &counter, EventInsertRecolor, 0)
	assertCount(t, &counter, EventRotateLeft, 2)
	tree.Remove(4)
	// black root with a single red child
	tree.Remove(3)
	assertCount(t, &counter, EventRemove, 3)
	assertValid(t, tree)
}

func TestObserver_InsertRecolor(t *testing.T) {
	var counter Counter
	tree := NewTree[int](Options{Observer: &counter})
	for _, k := range []int{10, 5, 15, 3} {
		_ = tree.Insert(k)
	}
	assertCount(t, &counter, EventInsertRecolor, 1)
}

func TestObserver_RemoveCases(t *testing.T) {
	var counter Counter
	tree := NewTree[int](Options{Observer: &counter})
	for _, k := range []int{10, 5, 15, 3} {
		_ = tree.Insert(k)
	}
	// 15 is a black leaf whose sibling 5 has only a far (outer) red child 3
	tree.Remove(15)
	assertCount(t, &counter, EventRemoveFarNephew, 1)
	assertValid(t, tree)

	tree.Reset()
	for _, k := range []int{10, 5, 15, 7} {
		_ = tree.Insert(k)
	}
	// 7 is the near (inner) nephew of 15
	tree.Remove(15)
	assertCount(t, &counter, EventRemoveNearNephew, 1)
	assertCount(t, &counter, EventRemoveFarNephew, 2)
	assertValid(t, tree)
}

func TestObserver_Fanout(t *testing.T) {
	var a, b Counter
	var sizes []int
	tree := NewTree[int](Options{Observer: Observers{&a, &b, ObserverFunc(func(event Event, size int) {
		if event == EventInsert {
			sizes = append(sizes, size)
		}
	})}})

	_ = tree.Insert(1)
	_ = tree.Insert(2)

	assertCount(t, &a, EventInsert, 2)
	assertCount(t, &b, EventInsert, 2)
	if len(sizes) != 2 || sizes[0] != 1 || sizes[1] != 2 {
		t.Error("expected sizes [1 2] but got", sizes)
	}
}

func TestEvent_String(t *testing.T) {
	for _, e := range Events() {
		if e.String() == "unknown" || e.String() == "" {
			t.Error("expected a name for event", int(e))
		}
	}
	if Event(-1).String() != "unknown" {
		t.Error("expected unknown for an out of range event")
	}
}

func TestObserver_RemoveSiblingRed(t *testing.T) {
	var counter Counter
	tree := NewTree[int](Options{Observer: &counter})
	// 10b(5b, 20r(15b, 25b(_, 30r)))
	for _, k := range []int{10, 5, 20, 15, 25, 30} {
		_ = tree.Insert(k)
	}
	if tree.Root().Right().Color() != Red {
		t.Fatal("expected a red sibling for 5")
	}

	// the red sibling rotates up, then the black nephew 15 takes the recolor
	tree.Remove(5)
	assertCount(t, &counter, EventRemoveSiblingRed, 1)
	assertCount(t, &counter, EventRemoveRecolor, 1)
	assertCount(t, &counter, EventRotateLeft, 1)
	assertValid(t, tree)
	if tree.Root().Key() != 20 {
		t.Error("expected 20 to be promoted to root but got", tree.Root().Key())
	}
}

func TestObserver_RemoveRecolor(t *testing.T) {
	var counter Counter
	tree := NewTree[int](Options{Observer: &counter})
	for _, k := range []int{10, 5, 15, 3} {
		_ = tree.Insert(k)
	}
	tree.Remove(3)

	// 15 is a black leaf whose black sibling has no children
	tree.Remove(15)
	assertCount(t, &counter, EventRemoveRecolor, 1)
	assertCount(t, &counter, EventRemoveSiblingRed, 0)
	assertValid(t, tree)
	if tree.Root().Left().Color() != Red {
		t.Error("expected the sibling 5 to turn red")
	}
}

func TestObserver_RemoveCasesMirrored(t *testing.T) {
	var counter Counter
	tree := NewTree[int](Options{Observer: &counter})
	for _, k := range []int{10, 5, 15, 20} {
		_ = tree.Insert(k)
	}
	// 5 is a black left leaf whose sibling 15 has only a far red child 20
	tree.Remove(5)
	assertCount(t, &counter, EventRemoveFarNephew, 1)
	assertCount(t, &counter, EventRemoveNearNephew, 0)
	assertValid(t, tree)
	if tree.Root().Key() != 15 {
		t.Error("expected 15 to be promoted to root but got", tree.Root().Key())
	}

	tree.Reset()
	for _, k := range []int{10, 5, 15, 12} {
		_ = tree.Insert(k)
	}
	// 12 is the near nephew of 5
	tree.Remove(5)
	assertCount(t, &counter, EventRemoveNearNephew, 1)
	assertCount(t, &counter, EventRemoveFarNephew, 2)
	assertValid(t, tree)
	if tree.Root().Key() != 12 {
		t.Error("expected 12 to be promoted to root but got", tree.Root().Key())
	}
}
