package input_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"adventofcode2021/internal/input"
)

func TestLoad_NormalisesEncoding(t *testing.T) {
	dir := t.TempDir()

	cases := map[string][]byte{
		"plain.txt": []byte("1\n2\n"),
		"bom.txt":   append([]byte{0xEF, 0xBB, 0xBF}, []byte("1\r\n2\r\n")...),
		// "1\n2\n" in UTF-16LE with BOM.
		"utf16.txt": {0xFF, 0xFE, '1', 0, '\n', 0, '2', 0, '\n', 0},
	}

	for name, content := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, content, 0o600))

		got, err := input.Load(context.Background(), path)
		require.NoError(t, err, name)
		require.Equal(t, "1\n2\n", got, name)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := input.Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, input.ErrMissing)
	require.Contains(t, err.Error(), "nope.txt")
}

func TestFingerprint_Stable(t *testing.T) {
	a := input.Fingerprint([]byte("199\n200\n"))
	require.Len(t, a, 20)
	require.Equal(t, a, input.Fingerprint([]byte("199\n200\n")))
	require.NotEqual(t, a, input.Fingerprint([]byte("199\n201\n")))
}
