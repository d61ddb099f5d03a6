package workload

import "fmt"

type Order string

const (
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
	OrderRandom     Order = "random"
	// OrderRandomRepeat draws every key independently, so keys repeat and
	// some are never drawn. Only valid as an insert order.
	OrderRandomRepeat Order = "random_repeat"
)

func (T Order) Valid() bool {
	switch T {
	case OrderAscending, OrderDescending, OrderRandom, OrderRandomRepeat:
		return true
	default:
		return false
	}
}

type Config struct {
	Name        string `yaml:"name"`
	Keys        int    `yaml:"keys"`
	InsertOrder Order  `yaml:"insert_order"`
	RemoveOrder Order  `yaml:"remove_order"`
	// Lookups is the number of random point lookups between inserting and removing
	Lookups int   `yaml:"lookups"`
	Seed    int64 `yaml:"seed"`
	// VerifyEvery validates the tree after every n-th mutation. 0 validates
	// only at the end of each phase.
	VerifyEvery int `yaml:"verify_every"`
}

func (T *Config) Validate() error {
	if T.Keys <= 0 {
		return fmt.Errorf("workload %q: keys must be positive, got %d", T.Name, T.Keys)
	}
	if T.Lookups < 0 || T.VerifyEvery < 0 {
		return fmt.Errorf("workload %q: lookups and verify_every must not be negative", T.Name)
	}
	if T.InsertOrder == "" {
		T.InsertOrder = OrderAscending
	}
	if T.RemoveOrder == "" {
		T.RemoveOrder = OrderRandom
	}
	if !T.InsertOrder.Valid() {
		return fmt.Errorf("workload %q: unknown insert order %q", T.Name, T.InsertOrder)
	}
	if !T.RemoveOrder.Valid() || T.RemoveOrder == OrderRandomRepeat {
		return fmt.Errorf("workload %q: unknown remove order %q", T.Name, T.RemoveOrder)
	}
	if T.Name == "" {
		T.Name = fmt.Sprintf("%s-%s-%d", T.InsertOrder, T.RemoveOrder, T.Keys)
	}
	return nil
}

// Keys returns 0..n-1 arranged in order, or n draws from 0..n-1 for
// OrderRandomRepeat.
func Keys(order Order, n int, rng interface {
	Perm(int) []int
	Intn(int) int
}) []int {
	switch order {
	case OrderRandomRepeat:
		keys := make([]int, n)
		for i := range keys {
			keys[i] = rng.Intn(n)
		}
		return keys
	case OrderDescending:
		keys := make([]int, n)
		for i := range keys {
			keys[i] = n - 1 - i
		}
		return keys
	case OrderRandom:
		return rng.Perm(n)
	default:
		keys := make([]int, n)
		for i := range keys {
			keys[i] = i
		}
		return keys
	}
}
