package day14

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	f, err := ParseFormula(sample)
	require.NoError(t, err)
	require.Len(t, f.Rules, 16)

	want := []string{
		"NCNBCHB",
		"NBCCNBBBCBHCB",
		"NBBBCNCCNBBNBNBBCHBHHBCHB",
		"NBBNBNBBCCNBCNCCNBBNBBNBBBNBBNBBCBHCBHHNHCBBCBHCB",
	}
	polymer := f.Template
	for i, w := range want {
		polymer = f.Expand(polymer)
		require.Equal(t, w, polymer, "step %d", i+1)
	}
}

func TestScore(t *testing.T) {
	f, err := ParseFormula(sample)
	require.NoError(t, err)
	require.Equal(t, 1, f.Score(0))
	require.Equal(t, 1588, f.Score(10))
}

func TestParseFormula_Rejects(t *testing.T) {
	_, err := ParseFormula("NNCB\n")
	require.Error(t, err)
	_, err = ParseFormula("NNCB\n\nCHB -> B\n")
	require.Error(t, err)
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}
