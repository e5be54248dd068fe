package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"adventofcode2021/internal/input"
	"adventofcode2021/internal/manifest"
)

// inputPattern matches day input files anywhere under the inputs directory.
const inputPattern = "**/day[0-9][0-9].txt"

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List manifest entries and their inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := manifest.Load(appCtx.Config.Manifest)
			if err != nil {
				return err
			}
			fsys := os.DirFS(appCtx.Config.Inputs)
			inputs, err := findInputs(fsys)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DAY\tTITLE\tPACKAGE\tINPUT\tFINGERPRINT")
			listed := make(map[string]bool, len(entries))
			for _, e := range entries {
				name := e.Name() + ".txt"
				listed[name] = true
				status, sum := "missing", "-"
				if p, ok := inputs[name]; ok {
					status = "present"
					if sum, err = fingerprintFile(fsys, p); err != nil {
						return err
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Day, e.Title, e.Package, status, sum)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			var stray []string
			for name, p := range inputs {
				if !listed[name] {
					stray = append(stray, p)
				}
			}
			sort.Strings(stray)
			for _, p := range stray {
				fmt.Fprintf(cmd.OutOrStdout(), "input %s has no manifest entry\n", p)
			}
			return nil
		},
	}
}

// findInputs maps input base names to their path within fsys. A missing
// inputs directory yields no inputs.
func findInputs(fsys fs.FS) (map[string]string, error) {
	matches, err := doublestar.Glob(fsys, inputPattern)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(matches))
	for _, m := range matches {
		out[path.Base(m)] = m
	}
	return out, nil
}

// fingerprintFile fingerprints the decoded contents of name, matching what
// the day binaries log when they load it.
func fingerprintFile(fsys fs.FS, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := input.Decode(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return input.Fingerprint(b), nil
}
