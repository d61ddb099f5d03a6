// Package workload drives a tree through insert, lookup and remove phases,
// validating it along the way and recording how long each phase took.
package workload

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"gfx.cafe/gfx/rbtree/lib/instrumentation/prom"
	"gfx.cafe/gfx/rbtree/lib/rbtree"
	"gfx.cafe/gfx/rbtree/lib/util/maths"
)

var tracer = otel.Tracer("rbtree", trace.WithInstrumentationAttributes(
	attribute.String("component", "gfx.cafe/gfx/rbtree/lib/workload"),
))

type Phase struct {
	Name     string
	Ops      int
	Duration time.Duration
}

type Result struct {
	RunID  string
	Name   string
	Phases []Phase
	// MaxHeight is the tallest the tree got during the run
	MaxHeight int
	// HeightBound is 2*log2(n+1) for the largest size reached
	HeightBound float64
	// Duplicates counts inserts rejected because the key was already present
	Duplicates int
	// Misses counts removals of keys that were never inserted
	Misses int
}

func (T *Result) Phase(name string) (Phase, bool) {
	for _, p := range T.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return Phase{}, false
}

type runner struct {
	config Config
	tree   *rbtree.Tree[int]
	rng    *rand.Rand
	log    *zap.Logger
	result Result
	// inserted[k] is set once k is in the tree
	inserted []bool
}

// Run executes the workload described by config. observer may be nil.
func Run(ctx context.Context, config Config, log *zap.Logger, observer rbtree.Observer) (Result, error) {
	if err := config.Validate(); err != nil {
		return Result{}, err
	}

	r := runner{
		config: config,
		tree: rbtree.NewTree[int](rbtree.Options{
			Observer: observer,
			Capacity: config.Keys,
		}),
		rng:      rand.New(rand.NewSource(config.Seed)),
		inserted: make([]bool, config.Keys),
		result: Result{
			RunID:       uuid.NewString(),
			Name:        config.Name,
			HeightBound: 2 * math.Log2(float64(config.Keys+1)),
		},
	}
	r.log = log.With(zap.String("workload", config.Name), zap.String("run", r.result.RunID))

	ctx, span := tracer.Start(ctx, "workload "+config.Name, trace.WithAttributes(
		attribute.String("run", r.result.RunID),
		attribute.Int("keys", config.Keys),
	))
	defer span.End()

	for _, phase := range []struct {
		name string
		fn   func(context.Context) (int, error)
	}{
		{"insert", r.insert},
		{"lookup", r.lookup},
		{"remove", r.remove},
	} {
		if err := r.phase(ctx, phase.name, phase.fn); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return r.result, err
		}
	}

	r.log.Info("workload complete",
		zap.Int("max_height", r.result.MaxHeight),
		zap.Float64("height_bound", r.result.HeightBound),
	)
	return r.result, nil
}

func (T *runner) phase(ctx context.Context, name string, fn func(context.Context) (int, error)) error {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	ops, err := fn(ctx)
	dur := time.Since(start)
	if err != nil {
		return fmt.Errorf("%s phase: %w", name, err)
	}

	T.result.Phases = append(T.result.Phases, Phase{
		Name:     name,
		Ops:      ops,
		Duration: dur,
	})
	span.SetAttributes(attribute.Int("ops", ops))

	labels := prom.WorkloadLabels{Workload: T.config.Name, Phase: name}
	prom.Workload.Duration(labels).Observe(float64(dur) / float64(time.Millisecond))
	prom.Workload.Ops(labels).Add(float64(ops))
	prom.Workload.Runs(labels).Inc()

	T.log.Info("phase complete",
		zap.String("phase", name),
		zap.Int("ops", ops),
		zap.Duration("duration", dur),
		zap.Int("size", T.tree.Size()),
	)
	return nil
}

// step validates the tree after every VerifyEvery-th mutation and checks the
// context every so often.
func (T *runner) step(ctx context.Context, i int) error {
	if i&1023 == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if T.config.VerifyEvery > 0 && (i+1)%T.config.VerifyEvery == 0 {
		return T.verify()
	}
	return nil
}

func (T *runner) verify() error {
	if err := T.tree.Verify(); err != nil {
		return err
	}
	h := T.tree.Height()
	T.result.MaxHeight = maths.Max(T.result.MaxHeight, h)
	if float64(h) > T.result.HeightBound {
		return fmt.Errorf("height %d exceeds bound %.2f", h, T.result.HeightBound)
	}
	return nil
}

func (T *runner) insert(ctx context.Context) (int, error) {
	keys := Keys(T.config.InsertOrder, T.config.Keys, T.rng)
	for i, k := range keys {
		err := T.tree.Insert(k)
		switch {
		case err == nil:
			T.inserted[k] = true
		case errors.Is(err, rbtree.ErrDuplicateKey) && T.inserted[k]:
			T.result.Duplicates++
		default:
			return i, err
		}
		if err = T.step(ctx, i); err != nil {
			return i, err
		}
	}
	if expected := len(keys) - T.result.Duplicates; T.tree.Size() != expected {
		return len(keys), fmt.Errorf("expected %d keys but tree has %d", expected, T.tree.Size())
	}
	if T.result.Duplicates > 0 {
		T.log.Info("duplicate inserts rejected", zap.Int("duplicates", T.result.Duplicates))
	}
	return len(keys), T.verify()
}

func (T *runner) lookup(ctx context.Context) (int, error) {
	for i := 0; i < T.config.Lookups; i++ {
		k := T.rng.Intn(T.config.Keys)
		n, ok := T.tree.Locate(k)
		if ok != T.inserted[k] {
			return i, fmt.Errorf("lookup of key %d: found %t, inserted %t", k, ok, T.inserted[k])
		}
		if ok && n.Key() != k {
			return i, fmt.Errorf("lookup of key %d returned %d", k, n.Key())
		}
		if i&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return i, err
			}
		}
	}
	if T.tree.Contains(T.config.Keys) {
		return T.config.Lookups, fmt.Errorf("lookup of absent key %d hit", T.config.Keys)
	}
	return T.config.Lookups + 1, nil
}

func (T *runner) remove(ctx context.Context) (int, error) {
	keys := Keys(T.config.RemoveOrder, T.config.Keys, T.rng)
	for i, k := range keys {
		removed := T.tree.Remove(k)
		if removed != T.inserted[k] {
			return i, fmt.Errorf("remove of key %d: removed %t, inserted %t", k, removed, T.inserted[k])
		}
		if !removed {
			T.result.Misses++
		}
		T.inserted[k] = false
		if err := T.step(ctx, i); err != nil {
			return i, err
		}
	}
	if T.tree.Size() != 0 || !T.tree.Root().IsNil() {
		return len(keys), fmt.Errorf("expected empty tree but %d keys remain", T.tree.Size())
	}
	return len(keys), T.tree.Verify()
}
