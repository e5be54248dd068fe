package parse_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"adventofcode2021/internal/parse"
)

func TestLines(t *testing.T) {
	got := parse.Lines("\n   199\n  200 \n\n 208\n   ")
	if diff := cmp.Diff([]string{"199", "200", "208"}, got); diff != "" {
		t.Fatalf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestEach_ReportsLine(t *testing.T) {
	_, err := parse.Each("1\n2\nx\n", strconv.Atoi)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 3")
}

func TestInts(t *testing.T) {
	got, err := parse.Ints(" 3,4,3,1,2\n", ",")
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 3, 1, 2}, got)

	got, err = parse.Ints(" 22 13  17 11  0", " ")
	require.NoError(t, err)
	require.Equal(t, []int{22, 13, 17, 11, 0}, got)

	_, err = parse.Ints("1,a", ",")
	require.Error(t, err)
}

func TestBlocks(t *testing.T) {
	got := parse.Blocks("\na\nb\n\n\n c \n")
	if diff := cmp.Diff([][]string{{"a", "b"}, {"c"}}, got); diff != "" {
		t.Fatalf("Blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestDigitGrid(t *testing.T) {
	got, err := parse.DigitGrid("219\n398\n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{2, 1, 9}, {3, 9, 8}}, got)

	_, err = parse.DigitGrid("21\n398\n")
	require.Error(t, err)

	_, err = parse.DigitGrid("2a\n")
	require.Error(t, err)
}
