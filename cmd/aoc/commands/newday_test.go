package commands

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"adventofcode2021/internal/scaffold"
)

var newdayScript = filepath.Join("..", "..", "..", "scripts", "newday.sh")

// newdayWorkspace copies the scaffolding script into a fresh module root.
func newdayWorkspace(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	root := t.TempDir()
	src, err := os.ReadFile(newdayScript)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "scripts", "newday.sh"), src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/aoc\n\ngo 1.24\n"), 0o644))
	return root
}

// newday runs the script and returns its combined output and exit status.
func newday(t *testing.T, root, aocBin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command("sh", append([]string{filepath.Join(root, "scripts", "newday.sh")}, args...)...)
	cmd.Env = append(os.Environ(), "AOC_BIN="+aocBin)
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	require.NoError(t, err, string(out))
	return string(out), scaffold.ExitOK
}

func TestNewdayScript_ExitCodes(t *testing.T) {
	root := newdayWorkspace(t)
	// The argument checks must stop the script before aoc runs; "false"
	// would exit 1.
	cases := []struct {
		args []string
		code int
	}{
		{nil, scaffold.ExitFailure},
		{[]string{"1", "2"}, scaffold.ExitFailure},
		{[]string{"abc"}, scaffold.ExitNotNumeric},
		{[]string{""}, scaffold.ExitNotNumeric},
		{[]string{"7x"}, scaffold.ExitNotNumeric},
		{[]string{"0"}, scaffold.ExitOutOfRange},
		{[]string{"26"}, scaffold.ExitOutOfRange},
		{[]string{"30"}, scaffold.ExitOutOfRange},
		{[]string{"-3"}, scaffold.ExitOutOfRange},
		{[]string{"12345678901234567890"}, scaffold.ExitOutOfRange},
	}
	for _, tc := range cases {
		out, code := newday(t, root, "false", tc.args...)
		require.Equal(t, tc.code, code, "args %q: %s", tc.args, out)
	}

	_, err := os.Stat(filepath.Join(root, "days.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist, "rejected arguments must not touch the workspace")
}

func TestNewdayScript_Generates(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the aoc binary")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go not available")
	}
	root := newdayWorkspace(t)

	bin := filepath.Join(t.TempDir(), "aoc")
	build := exec.Command("go", "build", "-o", bin, "adventofcode2021/cmd/aoc")
	out, err := build.CombinedOutput()
	require.NoError(t, err, string(out))

	out, code := newday(t, root, bin, "07")
	require.Equal(t, scaffold.ExitOK, code, out)
	require.Contains(t, out, "created "+filepath.Join("cmd", "day07", "main.go"))

	mainGo := filepath.Join(root, "cmd", "day07", "main.go")
	before, err := os.ReadFile(mainGo)
	require.NoError(t, err)
	manifest, err := os.ReadFile(filepath.Join(root, "days.hcl"))
	require.NoError(t, err)

	out, code = newday(t, root, bin, "7")
	require.Equal(t, scaffold.ExitOK, code, out)
	require.Contains(t, out, "day07 already exists, skipped")

	after, err := os.ReadFile(mainGo)
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
	manifestAfter, err := os.ReadFile(filepath.Join(root, "days.hcl"))
	require.NoError(t, err)
	require.Equal(t, string(manifest), string(manifestAfter))

	out, code = newday(t, root, bin, "26")
	require.Equal(t, scaffold.ExitOutOfRange, code, out)
}
