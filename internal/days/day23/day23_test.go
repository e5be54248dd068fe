package day23

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBurrow(t *testing.T) {
	b, err := ParseBurrow(Puzzle.Sample)
	require.NoError(t, err)
	require.Equal(t, []string{"BCBD", "ADCA"}, b.Rows)

	require.Equal(t, []string{"BCBD", "DCBA", "DBAC", "ADCA"}, b.Unfold(Folded).Rows)
}

func TestParseBurrow_Rejects(t *testing.T) {
	for _, bad := range []string{
		"#############\n#.....A.....#\n###B#C#B#D###\n",
		"#############\n#...........#\n###B#C#B#E###\n",
		"#############\n#...........#\n###B#C#B#D###\n  #B#D#C#A#\n",
		"#############\n#...........#\n",
	} {
		_, err := ParseBurrow(bad)
		require.Error(t, err, bad)
	}
}

func TestOrganize(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"sorted", []string{"ABCD", "ABCD"}, 0},
		// A steps aside right of room B (2), B crosses over (4 at 10),
		// then A walks back to room A (4).
		{"swap top", []string{"BACD", "ABCD"}, 2 + 40 + 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Organize(context.Background(), Burrow{Rows: tc.rows})
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), Puzzle.Sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}
