package day21

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStart(t *testing.T) {
	s, err := ParseStart(Puzzle.Sample)
	require.NoError(t, err)
	require.Equal(t, Start{4, 8}, s)

	for _, bad := range []string{
		"Player 1 starting position: 4",
		"Player 2 starting position: 4\nPlayer 1 starting position: 8",
		"Player 1 starting position: 0\nPlayer 2 starting position: 8",
	} {
		_, err := ParseStart(bad)
		require.Error(t, err, bad)
	}
}

func TestDirac(t *testing.T) {
	require.Equal(t, [2]int{444356092776315, 341960390180808}, Dirac(Start{4, 8}))
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), Puzzle.Sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}
