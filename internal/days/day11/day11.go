// Package day11 solves "Dumbo Octopus".
package day11

import (
	"context"
	"errors"
	"strings"

	"adventofcode2021/internal/geom"
	"adventofcode2021/internal/parse"
	"adventofcode2021/internal/puzzle"
)

var Puzzle = puzzle.Day{
	Number: 11,
	Title:  "Dumbo Octopus",
	Solve:  Solve,
	Sample: sample,
	Want:   puzzle.Result{Part1: 1656, Part2: 195},
}

const sample = `
5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

type Point = geom.Pt[int]

// Grid holds energy levels indexed [y][x].
type Grid [][]int

func ParseGrid(in string) (Grid, error) {
	g, err := parse.DigitGrid(in)
	if err != nil {
		return nil, err
	}
	if len(g) == 0 {
		return nil, errors.New("empty grid")
	}
	return Grid(g), nil
}

func (g Grid) in(p Point) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// Step raises every level, cascades flashes to all eight neighbours, resets
// flashed octopuses to zero and returns how many flashed.
func (g Grid) Step() int {
	var ready []Point
	for y, row := range g {
		for x := range row {
			row[x]++
			if row[x] > 9 {
				ready = append(ready, Point{X: x, Y: y})
			}
		}
	}

	flashed := make(map[Point]bool)
	for len(ready) > 0 {
		p := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		if flashed[p] {
			continue
		}
		flashed[p] = true
		for _, n := range p.Neighbors8() {
			if !g.in(n) {
				continue
			}
			g[n.Y][n.X]++
			if g[n.Y][n.X] > 9 && !flashed[n] {
				ready = append(ready, n)
			}
		}
	}

	for p := range flashed {
		g[p.Y][p.X] = 0
	}
	return len(flashed)
}

func (g Grid) size() int { return len(g) * len(g[0]) }

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			sb.WriteByte(byte('0' + v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func Solve(ctx context.Context, in string) (puzzle.Result, error) {
	g, err := ParseGrid(in)
	if err != nil {
		return puzzle.Result{}, err
	}
	flashes := 0
	step := 0
	synced := 0
	for step < 100 || synced == 0 {
		step++
		n := g.Step()
		if step <= 100 {
			flashes += n
		}
		if n == g.size() && synced == 0 {
			synced = step
		}
	}
	return puzzle.Result{Part1: flashes, Part2: synced}, nil
}
