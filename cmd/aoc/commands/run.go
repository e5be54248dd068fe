package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"adventofcode2021/internal/puzzle"
)

func runCmd() *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Solve a day against its input",
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
			res, err := puzzle.Run(appCtx.Context(cmd.Context()), d, path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file (default <inputs>/dayNN.txt)")
	return cmd
}
