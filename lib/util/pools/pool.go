package pools

// Pool is a LIFO free list. The zero value is an empty pool.
type Pool[T any] []T

func (P *Pool[T]) Get() (T, bool) {
	if len(*P) == 0 {
		return *new(T), false
	}
	v := (*P)[len(*P)-1]
	*P = (*P)[:len(*P)-1]
	return v, true
}

func (P *Pool[T]) Put(v T) {
	*P = append(*P, v)
}

func (P *Pool[T]) Len() int {
	return len(*P)
}

// Clear drops every pooled value but keeps the backing array
func (P *Pool[T]) Clear() {
	*P = (*P)[:0]
}
