package day12

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const medium = `
dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sa
kj-HN
kj-dc
`

const big = `
fs-end
he-DX
fs-he
start-DX
pj-DX
end-zg
zg-sl
zg-pj
pj-he
RW-he
fs-DX
pj-RW
zg-RW
start-pj
he-WI
zg-he
pj-fs
start-RW
`

func TestPaths(t *testing.T) {
	cases := []struct {
		name          string
		in            string
		once, revisit int
	}{
		{"small", sample, 10, 36},
		{"medium", medium, 19, 103},
		{"big", big, 226, 3509},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			caves, err := ParseCaves(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.once, caves.Paths(false))
			require.Equal(t, tc.revisit, caves.Paths(true))
		})
	}
}

func TestParseCaves_Rejects(t *testing.T) {
	for _, bad := range []string{"start-A\nA-B\nA-end\n", "start-a\n", "start\n"} {
		_, err := ParseCaves(bad)
		require.Error(t, err, bad)
	}
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}
