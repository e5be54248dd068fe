package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"adventofcode2021/internal/logging"
	"adventofcode2021/internal/puzzle"
)

type checkResult struct {
	day     puzzle.Day
	err     error
	elapsed time.Duration
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [day...]",
		Short: "Verify days against their embedded samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			days := registry.Days()
			if len(args) > 0 {
				days = days[:0:0]
				for _, a := range args {
					d, err := lookupDay(a)
					if err != nil {
						return err
					}
					days = append(days, d)
				}
			}

			cfg := appCtx.Config.Check
			ctx, cancel := context.WithTimeout(appCtx.Context(cmd.Context()), cfg.Timeout)
			defer cancel()

			results := checkDays(ctx, days, cfg.Parallel)

			failed := 0
			out := cmd.OutOrStdout()
			for _, r := range results {
				switch {
				case errors.Is(r.err, puzzle.ErrNoSample):
					fmt.Fprintf(out, "%s skipped (no sample)\n", r.day.Name())
				case r.err != nil:
					failed++
					fmt.Fprintf(out, "%s FAIL: %v\n", r.day.Name(), r.err)
				default:
					fmt.Fprintf(out, "%s ok (%s)\n", r.day.Name(), r.elapsed.Round(time.Microsecond))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d samples failed", failed, len(results))
			}
			return nil
		},
	}
}

// checkDays runs at most parallel sample checks at once. Results keep the
// order of days.
func checkDays(ctx context.Context, days []puzzle.Day, parallel int) []checkResult {
	log := logging.FromContext(ctx)
	results := make([]checkResult, len(days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, d := range days {
		g.Go(func() error {
			start := time.Now()
			err := checkOne(gctx, d)
			results[i] = checkResult{day: d, err: err, elapsed: time.Since(start)}
			log.Debug("Checked sample", zap.String("day", d.Name()), zap.Error(err))
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// checkOne gives up waiting once ctx is done; the solver itself is not
// interrupted.
func checkOne(ctx context.Context, d puzzle.Day) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- puzzle.Check(ctx, d) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", d.Name(), ctx.Err())
	}
}
