package day19

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotations(t *testing.T) {
	require.Len(t, Rotations, 24)

	v := Vec{X: 1, Y: 2, Z: 3}
	seen := make(map[Vec]bool)
	for _, r := range Rotations {
		seen[r.Apply(v)] = true
	}
	require.Len(t, seen, 24, "rotations must be distinct")
}

func TestAssemble(t *testing.T) {
	scanners, err := ParseScanners(Puzzle.Sample)
	require.NoError(t, err)
	require.Len(t, scanners, 5)

	m, err := Assemble(context.Background(), scanners)
	require.NoError(t, err)
	require.Equal(t, Vec{X: 68, Y: -1246, Z: -43}, m.Scanners[1])
	require.Equal(t, Vec{X: 1105, Y: -1205, Z: 1229}, m.Scanners[2])
	require.Equal(t, Vec{X: -92, Y: -2380, Z: -20}, m.Scanners[3])
	require.Equal(t, Vec{X: -20, Y: -1133, Z: 1061}, m.Scanners[4])
}

func TestAssemble_Disjoint(t *testing.T) {
	scanners := []Scanner{
		{ID: 0, Beacons: []Vec{{X: 1, Y: 2, Z: 3}}},
		{ID: 1, Beacons: []Vec{{X: 4, Y: 5, Z: 6}}},
	}
	_, err := Assemble(context.Background(), scanners)
	require.Error(t, err)
}

func TestParseScanners_Rejects(t *testing.T) {
	_, err := ParseScanners("--- scanner 0 ---\n1,2\n")
	require.Error(t, err)
	_, err = ParseScanners("nope\n1,2,3\n")
	require.Error(t, err)
}

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(context.Background(), Puzzle.Sample)
	require.NoError(t, err)
	require.Equal(t, Puzzle.Want, res)
}
