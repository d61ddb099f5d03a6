package rbtreecmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gfx.cafe/gfx/rbtree/lib/workload"
)

func init() {
	RegisterCommand(Command{
		Name:  "bench",
		Short: "Run insert, lookup and remove workloads",
		Long: `
Runs each workload from --config, or a single workload described by flags.
Every workload inserts its keys, looks up random present keys, then removes
every key, validating the tree as it goes.
`,
		Args: cobra.NoArgs,
		CobraFunc: func(cmd *cobra.Command) {
			cmd.Flags().StringP("config", "c", "", "YAML config file with workloads")
			cmd.Flags().String("metrics-listen", "", "address to serve /metrics on")
			cmd.Flags().Bool("structural-logs", false, "log rotations and fixup cases at debug level")
			workloadFlags(cmd, 1000000, workload.OrderAscending, 0)
		},
		Func: cmdBench,
	})
}

func workloadFlags(cmd *cobra.Command, keys int, insertOrder workload.Order, verifyEvery int) {
	cmd.Flags().IntP("keys", "n", keys, "number of keys")
	cmd.Flags().String("insert-order", string(insertOrder), "ascending, descending, random or random_repeat")
	cmd.Flags().String("remove-order", string(workload.OrderRandom), "ascending, descending or random")
	cmd.Flags().Int("lookups", keys, "random lookups between inserting and removing")
	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().Int("verify-every", verifyEvery, "validate the tree after every n mutations, 0 for once per phase")
}

func flagWorkload(flags Flags) workload.Config {
	return workload.Config{
		Keys:        flags.Int("keys"),
		InsertOrder: workload.Order(flags.String("insert-order")),
		RemoveOrder: workload.Order(flags.String("remove-order")),
		Lookups:     flags.Int("lookups"),
		Seed:        flags.Int64("seed"),
		VerifyEvery: flags.Int("verify-every"),
	}
}

func cmdBench(ctx context.Context, _ io.Writer, flags Flags, _ []string) error {
	g, err := loadConfig(flags)
	if err != nil {
		return err
	}
	log, err := newLogger(g.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	stop := serveMetrics(g.Metrics.Listen, log)
	defer stop()

	workloads := g.Workloads
	if len(workloads) == 0 {
		workloads = []workload.Config{flagWorkload(flags)}
	}

	for _, w := range workloads {
		if err = w.Validate(); err != nil {
			return err
		}
		result, err := workload.Run(ctx, w, log, observer(w.Name, log, flags.Bool("structural-logs")))
		if err != nil {
			return fmt.Errorf("workload %s: %w", w.Name, err)
		}
		for _, p := range result.Phases {
			log.Info("bench",
				zap.String("workload", result.Name),
				zap.String("phase", p.Name),
				zap.Int("ops", p.Ops),
				zap.Duration("duration", p.Duration),
				zap.Float64("ns_per_op", float64(p.Duration.Nanoseconds())/float64(max(p.Ops, 1))),
			)
		}
	}
	return nil
}
