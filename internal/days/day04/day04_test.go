package day04

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGame(t *testing.T) {
	g, err := ParseGame(sample)
	require.NoError(t, err)
	require.Len(t, g.Draws, 27)
	require.Equal(t, []int{7, 4, 9}, g.Draws[:3])
	require.Equal(t, []int{3, 26, 1}, g.Draws[24:])
	require.Len(t, g.Boards, 3)
}

func TestPlay(t *testing.T) {
	g, err := ParseGame(sample)
	require.NoError(t, err)

	wins := g.Play()
	require.Equal(t, []int{2, 0, 1}, []int{wins[0].Board, wins[1].Board, wins[2].Board})
	require.Equal(t, Win{Board: 2, Draw: 24, Score: 4512}, wins[0])
	require.Equal(t, 13, wins[2].Draw)
	require.Equal(t, 148, g.Boards[1].UnmarkedSum())
}

func TestParseGame_BadBoard(t *testing.T) {
	_, err := ParseGame("1,2\n\n1 2 3\n")
	require.Error(t, err)
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}
