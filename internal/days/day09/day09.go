// Package day09 solves "Smoke Basin".
package day09

import (
	"context"
	"errors"
	"slices"

	"adventofcode2021/internal/geom"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 9,
	Title:  "Smoke Basin",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 15, Part2: 1134},
}

const sample = `
2199943210
3987894921
9856789892
8767896789
9899965678
`

type Point = geom.Pt[int]

// Heightmap is indexed [y][x].
type Heightmap [][]int

func (h Heightmap) get(p Point) (int, bool) {
	if p.Y < 0 || p.Y >= len(h) || p.X < 0 || p.X >= len(h[p.Y]) {
		return 0, false
	}
	return h[p.Y][p.X], true
}

// LowPoints returns every point lower than all its orthogonal neighbours,
// in row-major order.
func (h Heightmap) LowPoints() []Point {
	var out []Point
	for y, row := range h {
		for x, v := range row {
			p := Point{X: x, Y: y}
			low := true
			for _, n := range p.Neighbors4() {
				if nv, ok := h.get(n); ok && nv <= v {
					low = false
					break
				}
			}
			if low {
				out = append(out, p)
			}
		}
	}
	return out
}

func (h Heightmap) RiskSum() int {
	sum := 0
	for _, p := range h.LowPoints() {
		v, _ := h.get(p)
		sum += v + 1
	}
	return sum
}

// BasinSizes flood-fills from each low point; height 9 bounds basins.
func (h Heightmap) BasinSizes() []int {
	var sizes []int
	seen := make(map[Point]bool)
	for _, low := range h.LowPoints() {
		size := 0
		stack := []Point{low}
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			v, ok := h.get(p)
			if !ok || v == 9 || seen[p] {
				continue
			}
			seen[p] = true
			size++
			for _, n := range p.Neighbors4() {
				stack = append(stack, n)
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	grid, err := parse.DigitGrid(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	h := Heightmap(grid)
	sizes := h.BasinSizes()
	if len(sizes) < 3 {
		return puzzle.Result{}, errors.New("fewer than three basins")
	}
	slices.Sort(sizes)
	n := len(sizes)
	return puzzle.Result{
		Part1: h.RiskSum(),
		Part2: sizes[n-1] * sizes[n-2] * sizes[n-3],
	}, nil
}
