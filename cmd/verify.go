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
		Name:  "verify",
		Short: "Stress the tree with random permutations, validating every step",
		Args:  cobra.NoArgs,
		CobraFunc: func(cmd *cobra.Command) {
			cmd.Flags().Int("rounds", 10, "number of rounds, each with its own seed")
			cmd.Flags().Bool("structural-logs", false, "log rotations and fixup cases at debug level")
			workloadFlags(cmd, 2000, workload.OrderRandom, 1)
		},
		Func: cmdVerify,
	})
}

func cmdVerify(ctx context.Context, out io.Writer, flags Flags, _ []string) error {
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

	base := flagWorkload(flags)
	rounds := flags.Int("rounds")
	for i := 0; i < rounds; i++ {
		w := base
		w.Seed = base.Seed + int64(i)
		w.Name = fmt.Sprintf("verify-%d", i)

		result, err := workload.Run(ctx, w, log, observer("verify", log, flags.Bool("structural-logs")))
		if err != nil {
			return fmt.Errorf("round %d (seed %d): %w", i, w.Seed, err)
		}
		log.Info("round passed",
			zap.Int("round", i),
			zap.Int64("seed", w.Seed),
			zap.Int("max_height", result.MaxHeight),
		)
	}
	log.Info("all rounds passed", zap.Int("rounds", rounds), zap.Int("keys", base.Keys))
	_, err = fmt.Fprintf(out, "ok: %d rounds of %d keys\n", rounds, base.Keys)
	return err
}
