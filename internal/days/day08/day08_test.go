package day08

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"adventofcode2021/internal/parse"
)

func TestDecode_Single(t *testing.T) {
	d, err := ParseDisplay("acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf")
	require.NoError(t, err)
	v, err := d.Decode()
	require.NoError(t, err)
	require.Equal(t, 5353, v)
}

func TestDecode_Sample(t *testing.T) {
	want := []int{8394, 9781, 1197, 9361, 4873, 8418, 4548, 1625, 8717, 4315}
	displays, err := parse.Each(sample, ParseDisplay)
	require.NoError(t, err)
	require.Len(t, displays, len(want))
	for i, d := range displays {
		v, err := d.Decode()
		require.NoError(t, err)
		require.Equal(t, want[i], v, "display %d", i)
	}
}

func TestDecode_Unresolvable(t *testing.T) {
	d, err := ParseDisplay("ab ab ab ab ab ab ab ab ab ab | ab ab ab ab")
	require.NoError(t, err)
	_, err = d.Decode()
	require.Error(t, err)
}

func TestParseDisplay_Rejects(t *testing.T) {
	for _, bad := range []string{"ab cd", "ab | cd", "xz be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd | a b c d"} {
		_, err := ParseDisplay(bad)
		require.Error(t, err, bad)
	}
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}
