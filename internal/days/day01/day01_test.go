package day01

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncreases(t *testing.T) {
	depths := []int{199, 200, 208, 210, 200, 207, 240, 269, 260, 263}
	require.Equal(t, 7, Increases(depths, 1))
	require.Equal(t, 5, Increases(depths, 3))
	require.Equal(t, 0, Increases(nil, 1))
	require.Equal(t, 0, Increases([]int{5}, 3))
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}

func TestSolve_BadLine(t *testing.T) {
	_, err := Solve(context.Background(), "199\nabc\n")
	require.Error(t, err)
}
