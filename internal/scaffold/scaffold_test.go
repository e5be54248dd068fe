package scaffold

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"adventofcode2021/internal/manifest"
)

func TestParseDay(t *testing.T) {
	cases := []struct {
		arg  string
		want int
		code int
		is   error
	}{
		{arg: "7", want: 7, code: ExitOK},
		{arg: "25", want: 25, code: ExitOK},
		{arg: " 01 ", want: 1, code: ExitOK},
		{arg: "seven", code: ExitNotNumeric, is: ErrNotNumeric},
		{arg: "", code: ExitNotNumeric, is: ErrNotNumeric},
		{arg: "7.5", code: ExitNotNumeric, is: ErrNotNumeric},
		{arg: "0", code: ExitOutOfRange, is: ErrOutOfRange},
		{arg: "26", code: ExitOutOfRange, is: ErrOutOfRange},
		{arg: "-3", code: ExitOutOfRange, is: ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.arg, func(t *testing.T) {
			got, err := ParseDay(tc.arg)
			require.Equal(t, tc.code, ExitCode(err))
			if tc.is != nil {
				require.ErrorIs(t, err, tc.is)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestExitCode_Generic(t *testing.T) {
	require.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
}

// workspace returns a root holding go.mod and an empty manifest.
func workspace(t *testing.T) Options {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/aoc\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "days.hcl"), nil, 0o644))
	return Options{Root: root, Manifest: "days.hcl"}
}

// snapshot reads every file under root.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		out[filepath.ToSlash(rel)] = string(b)
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestGenerate(t *testing.T) {
	opts := workspace(t)
	opts.Title = "The Treachery of Whales"
	ctx := context.Background()

	rep, err := Generate(ctx, opts, 7)
	require.NoError(t, err)
	require.False(t, rep.Skipped)
	require.Equal(t, []string{
		filepath.Join("inputs", "day07.txt"),
		filepath.Join("internal", "days", "day07", "day07.go"),
		filepath.Join("internal", "days", "day07", "day07_test.go"),
		filepath.Join("cmd", "day07", "main.go"),
	}, rep.Created)

	files := snapshot(t, opts.Root)
	require.Empty(t, files["inputs/day07.txt"])
	require.Contains(t, files["cmd/day07/main.go"], `"example.com/aoc/internal/days/day07"`)
	require.Contains(t, files["cmd/day07/main.go"], "puzzle.Execute(day07.Puzzle)")
	require.Contains(t, files["internal/days/day07/day07.go"], "package day07")
	require.Contains(t, files["internal/days/day07/day07.go"], `Title:  "The Treachery of Whales"`)
	require.Contains(t, files["internal/days/all/all.go"], "day07.Puzzle,")

	entries, err := manifest.Load(filepath.Join(opts.Root, "days.hcl"))
	require.NoError(t, err)
	require.Equal(t, []manifest.Entry{manifest.NewEntry(7, "The Treachery of Whales")}, entries)
}

func TestGenerate_Idempotent(t *testing.T) {
	opts := workspace(t)
	ctx := context.Background()

	_, err := Generate(ctx, opts, 3)
	require.NoError(t, err)
	before := snapshot(t, opts.Root)

	rep, err := Generate(ctx, opts, 3)
	require.NoError(t, err)
	require.True(t, rep.Skipped)
	require.Empty(t, rep.Created)

	if diff := cmp.Diff(before, snapshot(t, opts.Root)); diff != "" {
		t.Errorf("second run changed the workspace (-before +after):\n%s", diff)
	}
}

func TestGenerate_KeepsExistingFiles(t *testing.T) {
	opts := workspace(t)
	input := filepath.Join(opts.Root, "inputs", "day12.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(input), 0o755))
	require.NoError(t, os.WriteFile(input, []byte("start-end\n"), 0o644))

	rep, err := Generate(context.Background(), opts, 12)
	require.NoError(t, err)
	require.NotContains(t, rep.Created, filepath.Join("inputs", "day12.txt"))

	b, err := os.ReadFile(input)
	require.NoError(t, err)
	require.Equal(t, "start-end\n", string(b))
}

func TestGenerate_OneManifestBlockPerDay(t *testing.T) {
	opts := workspace(t)
	ctx := context.Background()
	for _, n := range []int{2, 1, 2, 25} {
		_, err := Generate(ctx, opts, n)
		require.NoError(t, err)
	}

	entries, err := manifest.Load(filepath.Join(opts.Root, "days.hcl"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Equal(t, []string{"day01", "day02", "day25"}, names)
	require.Equal(t, "Day 25", entries[2].Title)

	all := snapshot(t, opts.Root)["internal/days/all/all.go"]
	require.Regexp(t, `(?s)day01\.Puzzle,.*day02\.Puzzle,.*day25\.Puzzle,`, all)
}

func TestGenerate_ConfiguredInputs(t *testing.T) {
	opts := workspace(t)
	opts.Inputs = filepath.Join("data", "2021")

	rep, err := Generate(context.Background(), opts, 4)
	require.NoError(t, err)
	require.Contains(t, rep.Created, filepath.Join("data", "2021", "day04.txt"))
	require.FileExists(t, filepath.Join(opts.Root, "data", "2021", "day04.txt"))
	require.NoFileExists(t, filepath.Join(opts.Root, "inputs", "day04.txt"))

	entries, err := manifest.Load(filepath.Join(opts.Root, "days.hcl"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "data/2021/day04.txt", entries[0].Input)
}

func TestGenerate_NoGoMod(t *testing.T) {
	_, err := Generate(context.Background(), Options{Root: t.TempDir(), Manifest: "days.hcl"}, 1)
	require.Error(t, err)
	require.Equal(t, ExitFailure, ExitCode(err))
}

func TestRenderRegistry_MatchesRepository(t *testing.T) {
	opts := Options{Root: filepath.Join("..", ".."), Manifest: "days.hcl"}
	want, err := RenderRegistry(context.Background(), opts)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(opts.Root, RegistryFile))
	require.NoError(t, err)
	require.Equal(t, string(want), string(got), "run `go run ./cmd/aoc new` to refresh %s", RegistryFile)
}

func TestMainTemplate_MatchesRepository(t *testing.T) {
	got, err := render("main.go.tmpl", dayData{Module: "adventofcode2021", Number: 5, Name: "day05"})
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "cmd", "day05", "main.go"))
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))
}
