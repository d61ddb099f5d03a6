package rbtreecmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Command is a subcommand of rbtree.
type Command struct {
	Name  string
	Usage string
	Short string
	Long  string
	Args  cobra.PositionalArgs

	// CobraFunc registers the command's flags
	CobraFunc func(cmd *cobra.Command)
	Func      CommandFunc
}

// CommandFunc runs a command. Reports meant for the user go to out.
type CommandFunc func(ctx context.Context, out io.Writer, flags Flags, args []string) error

// Flags wraps a FlagSet so commands can read values without handling the
// lookup error for flags they registered themselves.
type Flags struct {
	*pflag.FlagSet
}

func (T Flags) String(name string) string {
	v, _ := T.FlagSet.GetString(name)
	return v
}

func (T Flags) Bool(name string) bool {
	v, _ := T.FlagSet.GetBool(name)
	return v
}

func (T Flags) Int(name string) int {
	v, _ := T.FlagSet.GetInt(name)
	return v
}

func (T Flags) Int64(name string) int64 {
	v, _ := T.FlagSet.GetInt64(name)
	return v
}

func (T Flags) IntSlice(name string) []int {
	v, _ := T.FlagSet.GetIntSlice(name)
	return v
}

var commands = make(map[string]Command)

// RegisterCommand adds c to the root command. It panics on a duplicate name.
func RegisterCommand(c Command) {
	if c.Name == "" {
		panic("command name is required")
	}
	if c.Func == nil {
		panic("command function missing")
	}
	if _, exists := commands[c.Name]; exists {
		panic("command already registered: " + c.Name)
	}
	commands[c.Name] = c
	rootCmd.AddCommand(commandToCobra(c))
}

// Main runs the CLI. The caller decides the exit code so its own cleanup
// still runs when a command fails.
func Main() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}
