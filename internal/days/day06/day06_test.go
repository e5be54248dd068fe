package day06

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchool(t *testing.T) {
	s, err := ParseSchool("3,4,3,1,2")
	require.NoError(t, err)
	for range 18 {
		s.Step()
	}
	require.Equal(t, 26, s.Total())
	for range 80 - 18 {
		s.Step()
	}
	require.Equal(t, 5934, s.Total())
}

func TestParseSchool_Rejects(t *testing.T) {
	_, err := ParseSchool("3,9")
	require.Error(t, err)
	_, err = ParseSchool("3,x")
	require.Error(t, err)
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), Puzzle.Sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}
