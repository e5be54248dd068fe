package day18

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"adventofcode2021/internal/parse"
)

func mustParse(t *testing.T, s string) Number {
	t.Helper()
	n, err := ParseNumber(s)
	require.NoError(t, err, s)
	return n
}

func requireNumber(t *testing.T, want string, got Number) {
	t.Helper()
	if diff := cmp.Diff(mustParse(t, want), got); diff != "" {
		t.Fatalf("number mismatch for %s (-want +got):\n%s", want, diff)
	}
}

func TestParseNumber(t *testing.T) {
	require.Equal(t, Number{{1, 1}, {2, 1}}, mustParse(t, "[1,2]"))
	require.Equal(t, Number{{1, 1}, {2, 2}, {3, 2}}, mustParse(t, "[1,[2,3]]"))

	for _, bad := range []string{"1", "[1,2", "[1;2]", "[1,2]]", "[[1,2],x]"} {
		_, err := ParseNumber(bad)
		require.Error(t, err, bad)
	}
}

func TestExplode(t *testing.T) {
	cases := map[string]string{
		"[[[[[9,8],1],2],3],4]":                 "[[[[0,9],2],3],4]",
		"[7,[6,[5,[4,[3,2]]]]]":                 "[7,[6,[5,[7,0]]]]",
		"[[6,[5,[4,[3,2]]]],1]":                 "[[6,[5,[7,0]]],3]",
		"[[3,[2,[1,[7,3]]]],[6,[5,[4,[3,2]]]]]": "[[3,[2,[8,0]]],[9,[5,[4,[3,2]]]]]",
		"[[3,[2,[8,0]]],[9,[5,[4,[3,2]]]]]":     "[[3,[2,[8,0]]],[9,[5,[7,0]]]]",
	}
	for in, want := range cases {
		got, ok := mustParse(t, in).explode()
		require.True(t, ok, in)
		requireNumber(t, want, got)
	}
}

func TestAdd(t *testing.T) {
	got := Add(mustParse(t, "[[[[4,3],4],4],[7,[[8,4],9]]]"), mustParse(t, "[1,1]"))
	requireNumber(t, "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]", got)
}

func TestSum(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"[1,1]\n[2,2]\n[3,3]\n[4,4]", "[[[[1,1],[2,2]],[3,3]],[4,4]]"},
		{"[1,1]\n[2,2]\n[3,3]\n[4,4]\n[5,5]", "[[[[3,0],[5,3]],[4,4]],[5,5]]"},
		{"[1,1]\n[2,2]\n[3,3]\n[4,4]\n[5,5]\n[6,6]", "[[[[5,0],[7,4]],[5,5]],[6,6]]"},
		{sample, "[[[[6,6],[7,6]],[[7,7],[7,0]]],[[[7,7],[7,7]],[[7,8],[9,9]]]]"},
	}
	for _, tc := range cases {
		ns, err := parse.Each(tc.in, ParseNumber)
		require.NoError(t, err)
		requireNumber(t, tc.want, Sum(ns))
	}
}

func TestMagnitude(t *testing.T) {
	cases := map[string]int{
		"[[1,2],[[3,4],5]]":                                     143,
		"[[[[0,7],4],[[7,8],[6,0]]],[8,1]]":                     1384,
		"[[[[1,1],[2,2]],[3,3]],[4,4]]":                         445,
		"[[[[3,0],[5,3]],[4,4]],[5,5]]":                         791,
		"[[[[5,0],[7,4]],[5,5]],[6,6]]":                         1137,
		"[[[[8,7],[7,7]],[[8,6],[7,7]]],[[[0,7],[6,6]],[8,7]]]": 3488,
		"[9,1]": 29,
	}
	for in, want := range cases {
		require.Equal(t, want, mustParse(t, in).Magnitude(), in)
	}
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}

func TestLargestPair_Sample(t *testing.T) {
	a := mustParse(t, "[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]")
	b := mustParse(t, "[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]")
	got := Add(a, b)
	requireNumber(t, "[[[[7,8],[6,6]],[[6,0],[7,7]]],[[[7,8],[8,8]],[[7,9],[0,6]]]]", got)
	require.Equal(t, 3993, got.Magnitude())

	ns, err := parse.Each(sample, ParseNumber)
	require.NoError(t, err)
	require.Len(t, ns, 10)
	require.Equal(t, 3993, LargestPair(ns))
	require.Equal(t, 4140, Sum(ns).Magnitude())
}
