package rbtreecmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "rbtree",
	Long: `
	rbtree exercises and inspects the red-black tree engine
`,
	Example: `  $ rbtree dump 10 7 20 5 9 15 25 --remove 7
  $ rbtree bench --keys 1000000 --insert-order random
  $ rbtree verify --keys 5000 --rounds 10
  `,

	// a failed workload is not a usage problem
	SilenceUsage: true,
}

const fullDocsFooter = ``

func init() {
	rootCmd.SetHelpTemplate(rootCmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")
	rootCmd.PersistentFlags().Bool("debug", false, "development logging at debug level")
	rootCmd.PersistentFlags().String("log-level", "", "log level, overrides the config file")
}

func commandToCobra(c Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.Name + " " + c.Usage,
		Short: c.Short,
		Long:  c.Long,
		Args:  c.Args,
	}
	if c.CobraFunc != nil {
		c.CobraFunc(cmd)
	}
	cmd.RunE = WrapCommandFuncForCobra(c.Func)
	return cmd
}

// WrapCommandFuncForCobra wraps a CommandFunc for use
// in a cobra command's RunE field.
func WrapCommandFuncForCobra(f CommandFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return f(cmd.Context(), cmd.OutOrStdout(), Flags{cmd.Flags()}, args)
	}
}
