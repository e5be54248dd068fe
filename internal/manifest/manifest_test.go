package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const twoDays = `
day "02" {
  title   = "Dive!"
  package = "./cmd/day02"
  input   = "inputs/day02.txt"
}

day "01" {
  title   = "Sonar Sweep"
  package = "./cmd/day01"
  input   = "inputs/day01.txt"
}
`

func TestParse_SortsByDay(t *testing.T) {
	got, err := Parse([]byte(twoDays), "days.hcl")
	require.NoError(t, err)

	want := []Entry{NewEntry(1, "Sonar Sweep"), NewEntry(2, "Dive!")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"syntax":    `day "01" {`,
		"missing":   `day "01" { title = "x" }`,
		"label":     strings.Replace(twoDays, `"02"`, `"2"`, 1),
		"range":     strings.Replace(twoDays, `"02"`, `"26"`, 1),
		"duplicate": twoDays + strings.Replace(twoDays, `"02"`, `"03"`, 1),
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), "days.hcl")
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingIsEmpty(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "days.hcl"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "days.hcl")
	require.NoError(t, os.WriteFile(path, []byte(twoDays), 0o644))

	added, err := Append(path, NewEntry(7, "The Treachery of Whales"))
	require.NoError(t, err)
	require.True(t, added)

	again, err := Append(path, NewEntry(7, "Something else"))
	require.NoError(t, err)
	require.False(t, again, "second append must be a no-op")

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, NewEntry(7, "The Treachery of Whales"), got[2])

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "title   = \"Dive!\"", "existing blocks keep their formatting")
}

func TestAppend_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "days.hcl")

	added, err := Append(path, NewEntry(25, "Sea Cucumber"))
	require.NoError(t, err)
	require.True(t, added)

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []Entry{NewEntry(25, "Sea Cucumber")}, got)
}

func TestAppend_RejectsBadLabel(t *testing.T) {
	_, err := Append(filepath.Join(t.TempDir(), "days.hcl"), Entry{Day: "7"})
	require.Error(t, err)
}
