package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adventofcode2021/internal/app"
)

func TestLoadConfig_DefaultsWhenAbsent(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, app.DefaultConfig(), cfg)
	require.Equal(t, filepath.Join("inputs", "day07.txt"), cfg.InputPath(7))
}

func TestLoadConfig_ExplicitMissing(t *testing.T) {
	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "aoc.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	err := os.WriteFile(path, []byte("inputs: data\nlog:\n  level: debug\ncheck:\n  timeout: 5s\n"), 0o600)
	require.NoError(t, err)

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "data", cfg.Inputs)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Encoding)
	require.Equal(t, 5*time.Second, cfg.Check.Timeout)
	require.Equal(t, 4, cfg.Check.Parallel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")

	for _, body := range []string{
		"log:\n  level: loud\n",
		"log:\n  encoding: xml\n",
		"check:\n  parallel: 0\n",
		"inputs: [\n",
	} {
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		_, err := app.LoadConfig(path)
		require.Error(t, err, body)
	}
}
