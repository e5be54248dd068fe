package commands

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"adventofcode2021/internal/logging"
	"adventofcode2021/internal/puzzle"
)

// settle is how long the input must stay quiet before a re-run; editors
// often write a file in several steps.
const settle = 150 * time.Millisecond

func watchCmd() *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "watch <day>",
		Short: "Re-solve a day whenever its input changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookupDay(args[0])
			if err != nil {
				return err
			}
			path := inputPath
			if path == "" {
				path = appCtx.Config.InputPath(d.Number)
			}
			ctx, stop := signal.NotifyContext(appCtx.Context(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch(ctx, d, path, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file (default <inputs>/dayNN.txt)")
	return cmd
}

// watch solves d once, then again after every change to path, until ctx is
// done. Solve errors are printed, not returned.
func watch(ctx context.Context, d puzzle.Day, path string, out io.Writer) error {
	log := logging.FromContext(ctx)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory: editors replace files by rename, which drops a
	// watch on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	log.Info("Watching input", zap.String("day", d.Name()), zap.String("path", path))

	solve := func() {
		res, err := puzzle.Run(ctx, d, path)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		fmt.Fprintln(out, res)
	}
	solve()

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug("Input changed", zap.Stringer("op", ev.Op))
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))
		case <-timer.C:
			solve()
		}
	}
}
