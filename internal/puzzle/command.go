package puzzle

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"adventofcode2021/internal/app"
	"adventofcode2021/internal/input"
	"adventofcode2021/internal/logging"
)

// newApp is replaced in tests.
var newApp = app.New

// Command returns the root command of a standalone day binary.
func Command(d Day) *cobra.Command {
	var (
		inputPath  string
		configPath string
		verbose    bool
		sample     bool
		a          *app.App
	)

	cmd := &cobra.Command{
		Use:           d.Name(),
		Short:         fmt.Sprintf("Solve %s", d),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(configPath, verbose)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.Close()
			ctx := a.Context(cmd.Context())
			if sample {
				if err := Check(ctx, d); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s sample OK\n", d.Name())
				return nil
			}

			if inputPath == "" {
				inputPath = a.Config.InputPath(d.Number)
			}
			res, err := Run(ctx, d, inputPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", fmt.Sprintf("input file (default <inputs>/%s.txt)", d.Name()))
	cmd.Flags().BoolVar(&sample, "sample", false, "solve the embedded sample and compare with its answers")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./aoc.yaml if present)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// Run loads the input at path and solves it.
func Run(ctx context.Context, d Day, path string) (Result, error) {
	log := logging.FromContext(ctx).With(zap.String("day", d.Name()))
	text, err := input.Load(ctx, path)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	res, err := d.Solve(logging.WithLogger(ctx, log), text)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", d.Name(), err)
	}
	log.Debug("Solved", zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// Execute runs the day binary for d.
func Execute(d Day) error {
	cmd := Command(d)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return err
	}
	return nil
}
