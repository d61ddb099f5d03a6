package rbtreecmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"gfx.cafe/gfx/rbtree/lib/rbtree"
)

func init() {
	RegisterCommand(Command{
		Name:  "dump",
		Usage: "KEY...",
		Short: "Insert keys, optionally remove some, and print the tree level by level",
		Long: `
Each node prints as key.color.p:parent where color is r or b. Duplicate keys
are reported and skipped.
`,
		Args: cobra.MinimumNArgs(1),
		CobraFunc: func(cmd *cobra.Command) {
			cmd.Flags().IntSlice("remove", nil, "keys to remove after inserting")
		},
		Func: cmdDump,
	})
}

func cmdDump(_ context.Context, out io.Writer, flags Flags, args []string) error {
	tree := new(rbtree.Tree[int])

	for _, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("key %q: %w", arg, err)
		}
		if err = tree.Insert(k); err != nil {
			if !errors.Is(err, rbtree.ErrDuplicateKey) {
				return err
			}
			_, _ = fmt.Fprintln(out, "skipped:", err)
		}
	}
	for _, k := range flags.IntSlice("remove") {
		if !tree.Remove(k) {
			_, _ = fmt.Fprintln(out, "not present:", k)
		}
	}

	if err := tree.Print(out); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "size: %d height: %d valid: %t\n", tree.Size(), tree.Height(), tree.IsValid())
	return err
}
