package pools

import "testing"

func TestPool_GetPut(t *testing.T) {
	var pool Pool[uint32]
	if _, ok := pool.Get(); ok {
		t.Error("expected empty pool")
	}

	pool.Put(1)
	pool.Put(2)
	if pool.Len() != 2 {
		t.Error("expected length to be 2 but got", pool.Len())
	}

	// most recently released first
	v, ok := pool.Get()
	if !ok || v != 2 {
		t.Error("expected 2 but got", v, ok)
	}
	v, ok = pool.Get()
	if !ok || v != 1 {
		t.Error("expected 1 but got", v, ok)
	}
	if _, ok = pool.Get(); ok {
		t.Error("expected empty pool")
	}
}

func TestPool_Clear(t *testing.T) {
	var pool Pool[int]
	pool.Put(1)
	pool.Put(2)
	pool.Clear()
	if pool.Len() != 0 {
		t.Error("expected empty pool after clear")
	}
	if _, ok := pool.Get(); ok {
		t.Error("expected nothing after clear")
	}
}
