package ring

import (
	"testing"
)

func assertSome[T comparable](t *testing.T, f func() (T, bool), value T) {
	v, ok := f()
	if !ok {
		t.Error("expected items but got nothing")
		return
	}
	if v != value {
		t.Error("expected", value, "but got", v)
		return
	}
}

func assertNone[T any](t *testing.T, f func() (T, bool)) {
	v, ok := f()
	if ok {
		t.Error("expected no items but found", v)
		return
	}
}

func assertLength[T any](t *testing.T, ring *Ring[T], length int) {
	l := ring.Length()
	if length != l {
		t.Error("expected length to be", length, "but got", l)
	}
}

func TestRing_Zero(t *testing.T) {
	r := new(Ring[int])
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)

	assertLength(t, r, 3)

	assertSome(t, r.PopFront, 1)
	assertSome(t, r.PopFront, 2)
	assertSome(t, r.PopFront, 3)
	assertNone(t, r.PopFront)

	assertLength(t, r, 0)
}

// ensure no resizing when we put the exact amount in the ring
func TestRing_Glove(t *testing.T) {
	r := MakeRing[int](4)
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)
	r.PushBack(4)

	assertSome(t, r.PopFront, 1)
	assertSome(t, r.PopFront, 2)
	assertSome(t, r.PopFront, 3)
	assertSome(t, r.PopFront, 4)
	assertNone(t, r.PopFront)

	if len(r.buf) != 4 {
		t.Error("expected capacity to be 4 but got", len(r.buf))
	}
}

// tail wraps around behind head before the ring grows
func TestRing_Wrap(t *testing.T) {
	r := MakeRing[int](4)
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)
	assertSome(t, r.PopFront, 1)
	assertSome(t, r.PopFront, 2)
	r.PushBack(4)
	r.PushBack(5)
	r.PushBack(6)
	r.PushBack(7) // grow while wrapped

	assertLength(t, &r, 5)
	assertSome(t, r.PopFront, 3)
	assertSome(t, r.PopFront, 4)
	assertSome(t, r.PopFront, 5)
	assertSome(t, r.PopFront, 6)
	assertSome(t, r.PopFront, 7)
	assertNone(t, r.PopFront)
}

func BenchmarkFIFO_Ring(b *testing.B) {
	b.ReportAllocs()
	ring := MakeRing[int](16)

	for i := 0; i < b.N; i++ {
		for j := 0; j < 10; j++ {
			ring.PushBack(j)
		}
		for j := 0; j < 10; j++ {
			v, ok := ring.PopFront()
			if !ok || v != j {
				b.Error("expected", j, "but got", v)
			}
		}
	}
}
