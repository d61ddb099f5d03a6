package ring

// Ring is a growable FIFO queue backed by a circular buffer. The zero value
// is an empty ring.
type Ring[T any] struct {
	buf    []T
	head   int
	length int
}

// MakeRing returns an empty ring with room for capacity items before growing.
func MakeRing[T any](capacity int) Ring[T] {
	return Ring[T]{
		buf: make([]T, capacity),
	}
}

func (r *Ring[T]) grow() {
	size := len(r.buf) * 2
	if size == 0 {
		size = 8
	}

	buf := make([]T, size)
	n := copy(buf, r.buf[r.head:])
	copy(buf[n:], r.buf[:r.head])
	r.head = 0
	r.buf = buf
}

func (r *Ring[T]) PushBack(value T) {
	if r.length == len(r.buf) {
		r.grow()
	}
	tail := r.head + r.length
	if tail >= len(r.buf) {
		tail -= len(r.buf)
	}
	r.buf[tail] = value
	r.length++
}

func (r *Ring[T]) PopFront() (T, bool) {
	if r.length == 0 {
		return *new(T), false
	}

	front := r.buf[r.head]
	r.buf[r.head] = *new(T)
	r.length--
	r.head++
	if r.head == len(r.buf) {
		r.head = 0
	}
	return front, true
}

func (r *Ring[T]) Length() int {
	return r.length
}
