package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"adventofcode2021/internal/scaffold"
)

func newCmd() *cobra.Command {
	var (
		root  string
		title string
	)
	cmd := &cobra.Command{
		Use:   "new <day>",
		Short: "Scaffold a new day",
		Long: `Scaffold a new day: input placeholder, solution stub, test stub and
binary, plus its manifest entry. A day that already has a binary is skipped.

Exit codes: 2 when the day is not a number, 3 when it is outside 1..25.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := scaffold.ParseDay(args[0])
			if err != nil {
				return err
			}
			rep, err := scaffold.Generate(appCtx.Context(cmd.Context()), scaffold.Options{
				Root:     root,
				Manifest: appCtx.Config.Manifest,
				Inputs:   appCtx.Config.Inputs,
				Title:    title,
			}, n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rep.Skipped {
				fmt.Fprintf(out, "day%02d already exists, skipped\n", n)
				return nil
			}
			for _, p := range rep.Created {
				fmt.Fprintf(out, "created %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "workspace root holding go.mod")
	cmd.Flags().StringVar(&title, "title", "", `puzzle title (default "Day N")`)
	return cmd
}
