package day09

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"adventofcode2021/internal/parse"
)

func heightmap(t *testing.T) Heightmap {
	t.Helper()
	grid, err := parse.DigitGrid(sample)
	require.NoError(t, err)
	return Heightmap(grid)
}

func TestLowPoints(t *testing.T) {
	h := heightmap(t)
	var values []int
	for _, p := range h.LowPoints() {
		values = append(values, h[p.Y][p.X])
	}
	require.Equal(t, []int{1, 0, 5, 5}, values)
	require.Equal(t, 15, h.RiskSum())
}

func TestBasinSizes(t *testing.T) {
	require.Equal(t, []int{3, 9, 14, 9}, heightmap(t).BasinSizes())
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}
