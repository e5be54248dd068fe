package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"adventofcode2021/internal/app"
	"adventofcode2021/internal/days/all"
	"adventofcode2021/internal/puzzle"
)

var (
	configPath string
	verbose    bool
	appCtx     *app.App
	registry   *puzzle.Registry

	// newApp is replaced in tests.
	newApp = app.New
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2021 solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if appCtx, err = newApp(configPath, verbose); err != nil {
				return err
			}
			registry, err = puzzle.NewRegistry(all.Days()...)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./aoc.yaml if present)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(runCmd(), checkCmd(), listCmd(), watchCmd(), newCmd())
	return root
}

func Execute() error {
	root := newRootCmd()
	if err := runRoot(root); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		return err
	}
	return nil
}

// runRoot executes root and flushes the logger whether or not the command
// succeeded.
func runRoot(root *cobra.Command) error {
	appCtx = nil
	defer func() { appCtx.Close() }()
	return root.Execute()
}

// lookupDay resolves a day argument against the registry.
func lookupDay(arg string) (puzzle.Day, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return puzzle.Day{}, fmt.Errorf("day must be a number, got %q", arg)
	}
	return registry.Lookup(n)
}
